package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// PDFClient talks to the hosted HTML-to-PDF conversion service. The service
// accepts a JSON body with the HTML document and responds with the PDF bytes.
type PDFClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

type PDFClientDependencies struct {
	Endpoint string
	APIKey   string
}

func NewPDFClient(deps PDFClientDependencies) *PDFClient {
	return &PDFClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   deps.Endpoint,
		apiKey:     deps.APIKey,
	}
}

type convertRequest struct {
	HTML string `json:"html"`
}

func (c *PDFClient) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	payload, err := json.Marshal(convertRequest{HTML: html})
	if err != nil {
		return nil, fmt.Errorf("failed to encode convert request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build convert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: pdf service returned %d: %s", domain.ErrBackendUnavailable, resp.StatusCode, body)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf response: %w", err)
	}

	return pdf, nil
}
