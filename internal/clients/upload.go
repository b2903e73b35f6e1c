package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/YaminiCharan14/linen/internal/rejection"
)

// UploadClient pushes rejection images to the file service one at a time
// and returns the stored URL. It satisfies rejection.Uploader.
type UploadClient struct {
	*Client
}

func NewUploadClient(baseURL string, headers func() http.Header) *UploadClient {
	return &UploadClient{Client: New(baseURL, headers)}
}

var _ rejection.Uploader = (*UploadClient)(nil)

func (c *UploadClient) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images", &body)
	if err != nil {
		return "", err
	}
	if c.headers != nil {
		for key, values := range c.headers() {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return result.URL, nil
}
