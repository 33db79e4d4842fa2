package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond
	return cfg
}

func TestGetWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
		wantHits   int32
	}{
		{"first attempt succeeds", []int{200}, 200, 1},
		{"retries 503", []int{503, 200}, 200, 2},
		{"retries 429 and 502", []int{429, 502, 200}, 200, 3},
		{"404 is final", []int{404, 200}, 404, 1},
		{"last retryable status is returned", []int{500, 500, 500, 200}, 500, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := int(hits.Add(1)) - 1
				w.WriteHeader(tt.statuses[min(n, len(tt.statuses)-1)])
				io.WriteString(w, "body")
			}))
			defer srv.Close()

			resp, err := GetWithRetry(context.Background(), srv.Client(), srv.URL, fastRetry())
			if err != nil {
				t.Fatalf("GetWithRetry() error: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if hits.Load() != tt.wantHits {
				t.Errorf("requests = %d, want %d", hits.Load(), tt.wantHits)
			}
		})
	}
}

func TestGetWithRetry_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := GetWithRetry(context.Background(), http.DefaultClient, url, fastRetry()); err == nil {
		t.Fatal("expected error for a closed server")
	}
}

func TestGetWithRetry_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GetWithRetry(ctx, srv.Client(), srv.URL, fastRetry())
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
