package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"text-translator/internal/config"
	internalhttp "text-translator/internal/http"
	"text-translator/internal/logger"
	"text-translator/models"
)

// BackendClient talks to the translation backend over JSON/HTTP.
// It implements translation.Translator and tts.Synthesizer.
type BackendClient struct {
	baseURL *url.URL
	client  *http.Client
	log     *logger.Logger
}

// NewBackendClient creates a client for the backend at baseURL.
// A nil httpClient selects the shared pooled client.
func NewBackendClient(baseURL string, httpClient *http.Client, log *logger.Logger) (*BackendClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse backend url %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("backend url %q is not absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = internalhttp.NewDefaultClient()
	}
	if log == nil {
		log = logger.Default()
	}
	return &BackendClient{baseURL: u, client: httpClient, log: log}, nil
}

// BaseURL returns the backend origin, used to resolve relative audio references.
func (c *BackendClient) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Translate posts req to /translate.
func (c *BackendClient) Translate(ctx context.Context, req models.TranslateRequest) (models.TranslateResponse, error) {
	var resp models.TranslateResponse
	if err := c.postJSON(ctx, config.TranslatePath, req, &resp); err != nil {
		return resp, err
	}

	_, failed, err := resp.Result()
	return resp, resultError(config.TranslatePath, resp.Error, failed, err)
}

// Synthesize posts req to /text_to_speech.
func (c *BackendClient) Synthesize(ctx context.Context, req models.SpeakRequest) (models.SpeakResponse, error) {
	var resp models.SpeakResponse
	if err := c.postJSON(ctx, config.TextToSpeechPath, req, &resp); err != nil {
		return resp, err
	}

	_, failed, err := resp.Result()
	return resp, resultError(config.TextToSpeechPath, resp.Error, failed, err)
}

// postJSON sends body and decodes the reply into out. The reply is decoded
// whatever the status code, since the backend reports failures as JSON with
// 4xx/5xx statuses. Every failure is returned as *TransportError.
func (c *BackendClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Endpoint: path, Err: errors.Wrap(err, "marshal request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Endpoint: path, Err: errors.Wrap(err, "create request")}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("POST %s (%d bytes)", path, len(payload))

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Endpoint: path, Err: errors.Wrap(err, "request failed")}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxResponseBytes))
	if err != nil {
		return &TransportError{Endpoint: path, Err: errors.Wrap(err, "read response")}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{
			Endpoint: path,
			Err:      errors.Wrapf(err, "decode response (status %d): %s", resp.StatusCode, snippet(data)),
		}
	}
	return nil
}

func (c *BackendClient) endpoint(path string) string {
	return c.baseURL.String() + path
}

// snippet shortens a response body for error messages.
func snippet(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
