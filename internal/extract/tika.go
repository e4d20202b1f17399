package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTikaTimeout = 60 * time.Second
	maxTikaErrorBody   = 512
)

// TikaClient sends images to an Apache Tika server for OCR.
type TikaClient struct {
	ServerURL string
	Client    *http.Client
	language  string
}

// TikaOption configures a TikaClient.
type TikaOption func(*TikaClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) TikaOption {
	return func(t *TikaClient) {
		if timeout > 0 {
			t.Client.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) TikaOption {
	return func(t *TikaClient) {
		if client != nil {
			t.Client = client
		}
	}
}

// WithOCRLanguage sets the Tesseract language hint, e.g. "eng".
func WithOCRLanguage(lang string) TikaOption {
	return func(t *TikaClient) {
		t.language = lang
	}
}

// NewTikaClient returns a client for the Tika server at serverURL.
func NewTikaClient(serverURL string, opts ...TikaOption) *TikaClient {
	t := &TikaClient{
		ServerURL: strings.TrimRight(serverURL, "/"),
		Client:    &http.Client{Timeout: defaultTikaTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Recognize PUTs the image to /tika and returns the plain text response.
func (t *TikaClient) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.ServerURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build tika request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if mimeType != "" {
		req.Header.Set("Content-Type", mimeType)
	}
	if t.language != "" {
		req.Header.Set("X-Tika-OCRLanguage", t.language)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tika request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read tika response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := string(body)
		if len(snippet) > maxTikaErrorBody {
			snippet = snippet[:maxTikaErrorBody]
		}
		return "", fmt.Errorf("tika returned status %d: %s", resp.StatusCode, snippet)
	}
	return string(body), nil
}
