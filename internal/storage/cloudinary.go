package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// CloudinaryUploader posts unsigned multipart uploads to the hosted
// image CDN. The preset and cloud name are fixed per deployment.
type CloudinaryUploader struct {
	baseURL   string
	cloudName string
	preset    string
	client    *http.Client
	now       func() time.Time
}

func NewCloudinary(baseURL, cloudName, preset string) *CloudinaryUploader {
	return &CloudinaryUploader{
		baseURL:   baseURL,
		cloudName: cloudName,
		preset:    preset,
		client:    &http.Client{Timeout: 30 * time.Second},
		now:       time.Now,
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, filename, baseFolder string) (string, error) {
	folder := Folder(baseFolder, u.now())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	fields := map[string]string{
		"upload_preset": u.preset,
		"cloud_name":    u.cloudName,
		"folder":        folder,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUpload, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", ErrUpload, resp.StatusCode)
	}

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("%w: response missing secure_url", ErrUpload)
	}
	return parsed.SecureURL, nil
}
