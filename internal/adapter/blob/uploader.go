package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pressroom/pressroom/internal/ports"
)

// HTTPUploader pushes image bytes to a Cloudinary-style unsigned upload
// endpoint and returns the public URL of the stored blob.
type HTTPUploader struct {
	uploadURL    string
	uploadPreset string
	client       *http.Client
}

// NewHTTPUploader creates an uploader for the given endpoint and preset.
func NewHTTPUploader(uploadURL, uploadPreset string) *HTTPUploader {
	return &HTTPUploader{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ ports.BlobStore = (*HTTPUploader)(nil)

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file as multipart form data. On any failure the caller
// must not write a partial image reference; the error aborts the article
// write that requested the upload.
func (u *HTTPUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if u.uploadURL == "" {
		return "", fmt.Errorf("upload endpoint is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write upload form: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to write upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, payload)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return parsed.SecureURL, nil
}
