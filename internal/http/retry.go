package http

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/pkg/errors"

	"text-translator/internal/config"
)

// RetryConfig configures retry behavior for idempotent requests.
type RetryConfig struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	BackoffFactor   float64
	RetryableStatus []int // HTTP status codes that should trigger a retry
}

// DefaultRetryConfig returns the retry configuration used for audio downloads.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   config.DownloadMaxAttempts,
		InitialDelay:  config.DownloadRetryDelay,
		BackoffFactor: 2.0,
		RetryableStatus: []int{
			http.StatusTooManyRequests,     // 429
			http.StatusInternalServerError, // 500
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout,      // 504
		},
	}
}

// GetWithRetry fetches url with exponential backoff. Only the last response
// is returned; earlier retryable responses are closed. A retryable status on
// the final attempt is returned as a response, not an error.
func GetWithRetry(ctx context.Context, client *http.Client, url string, cfg RetryConfig) (*http.Response, error) {
	var lastErr error
	delay := cfg.InitialDelay
	attempts := max(cfg.MaxAttempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.Wrap(err, "create request")
		}

		resp, err := client.Do(req)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
		case attempt < attempts && slices.Contains(cfg.RetryableStatus, resp.StatusCode):
			resp.Body.Close()
			lastErr = errors.Errorf("HTTP %d", resp.StatusCode)
		default:
			return resp, nil
		}

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		}
	}

	return nil, errors.Wrapf(lastErr, "failed after %d attempts", attempts)
}
