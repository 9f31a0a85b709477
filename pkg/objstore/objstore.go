// Package objstore talks to the hosted object-storage API (Supabase storage
// compatible) over plain HTTP. Objects are addressed by bucket and path.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	bucket  string
	http    *http.Client
}

func New(baseURL, apiKey, bucket string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores data under a generated path `{unix-ms}.{ext}` with content
// type `image/{ext}` and returns the path.
func (c *Client) Upload(ctx context.Context, data []byte, ext string) (string, error) {
	path := fmt.Sprintf("%d.%s", time.Now().UnixMilli(), ext)

	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", fmt.Sprintf("image/%s", ext))

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("upload %s: status %d: %s", path, res.StatusCode, body)
	}
	return path, nil
}

// Download fetches an object by path.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("download %s: status %d: %s", path, res.StatusCode, body)
	}
	return io.ReadAll(res.Body)
}
