package qrcode

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Content       string
	Label         string // optional caption under the code
	Size          int
	Background    color.Color
	Foreground    color.Color
	RecoveryLevel int
	QuietZone     int // size of quiet zone around QR code
}

// Default is the share-code style used for post deep links.
var Default = Config{
	Size:          512,
	Background:    color.RGBA{R: 245, G: 245, B: 245, A: 255},
	Foreground:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
	RecoveryLevel: int(qrcode.Medium),
	QuietZone:     24,
}

// Generate renders the QR code with its label strip and returns it as PNG
// bytes.
func (c *Config) Generate() ([]byte, error) {
	qr, err := qrcode.New(c.Content, qrcode.RecoveryLevel(c.RecoveryLevel))
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true

	labelStrip := 0
	if c.Label != "" {
		labelStrip = c.Size / 8
	}

	totalWidth := c.Size + 2*c.QuietZone
	totalHeight := totalWidth + labelStrip

	dc := gg.NewContext(totalWidth, totalHeight)
	dc.SetColor(c.Background)
	dc.Clear()

	qrImage := qr.Image(c.Size)
	dc.DrawImage(qrImage, c.QuietZone, c.QuietZone)

	if c.Label != "" {
		dc.SetColor(c.Foreground)
		dc.DrawStringAnchored(c.Label, float64(totalWidth)/2, float64(totalWidth)+float64(labelStrip)/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
