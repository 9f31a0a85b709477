package imaging

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// Thumbnail scales an avatar image down to fit maxSize, keeping aspect ratio.
// Images already small enough come back re-encoded but unscaled.
func Thumbnail(data []byte, maxSize uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	thumb := resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InitialAvatar renders a fallback avatar PNG: the first letter of the name
// on a color picked deterministically from the name itself.
func InitialAvatar(name string, size int) ([]byte, error) {
	initial := "?"
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		r, _ := utf8.DecodeRuneInString(trimmed)
		initial = strings.ToUpper(string(r))
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(backgroundFor(trimmed))
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Fill()

	dc.SetColor(color.White)
	dc.DrawStringAnchored(initial, float64(size)/2, float64(size)/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var palette = []color.RGBA{
	{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF},
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
	{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
	{R: 0x26, G: 0xA6, B: 0x9A, A: 0xFF},
}

func backgroundFor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}
