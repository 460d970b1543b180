package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"reloop-backend/domain"
	"reloop-backend/internal/utils"
)

type (
	// ClassifierClient talks to the external item scanner service.
	ClassifierClient interface {
		Classify(ctx context.Context, image *multipart.FileHeader) (*domain.ClassifierResponse, error)
	}

	classifierClient struct {
		baseURL string
		client  *http.Client
	}
)

func NewClassifierClient() ClassifierClient {
	return &classifierClient{
		baseURL: utils.GetConfig("SCANNER_URL"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *classifierClient) Classify(ctx context.Context, image *multipart.FileHeader) (*domain.ClassifierResponse, error) {
	src, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.ErrScanServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scanner returned status %d: %w", resp.StatusCode, domain.ErrScanServiceUnavailable)
	}

	var result domain.ClassifierResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, domain.ErrScanRejected
	}
	return &result, nil
}
