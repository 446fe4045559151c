// Package relay physically transfers staged binaries to the signed
// object-storage target issued by the back office.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"wholesale_portal_backend/internal/commerce"
)

const transferTimeout = 30 * time.Second

// Relay performs the direct multipart POST to a staged upload target.
// Constructed once in main; safe for concurrent use.
type Relay struct {
	httpClient *http.Client
}

// New creates a relay with its own HTTP client.
func New() *Relay {
	return &Relay{
		httpClient: &http.Client{Timeout: transferTimeout},
	}
}

// Transfer builds a multipart body from the target's parameters — each
// appended in the exact order supplied, because the storage signature covers
// the header bytes — with the raw file as the final field, and POSTs it to
// the target URL. Any failure is final: the target is single-use and the
// caller must not proceed to file creation.
func (r *Relay) Transfer(ctx context.Context, target *commerce.StagedUploadTarget, filename, contentType string, fileBytes []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, param := range target.Parameters {
		if err := writer.WriteField(param.Name, param.Value); err != nil {
			return fmt.Errorf("relay: write field %s: %w", param.Name, err)
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("relay: create file part: %w", err)
	}
	if _, err := part.Write(fileBytes); err != nil {
		return fmt.Errorf("relay: write file bytes: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("relay: finalize body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, &body)
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("relay: target responded %d: %s", resp.StatusCode, raw)
	}

	return nil
}
