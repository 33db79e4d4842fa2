package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"

	"text-translator/internal/logger"
	"text-translator/models"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *BackendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewBackendClient(srv.URL, srv.Client(), logger.New(logger.LevelError, io.Discard))
	if err != nil {
		t.Fatalf("NewBackendClient() error: %v", err)
	}
	return c
}

func TestNewBackendClient(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:5000", false},
		{"http://localhost:5000/", false},
		{"https://translate.example.com/api", false},
		{"localhost:5000", true},
		{"/relative", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		_, err := NewBackendClient(tt.url, nil, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewBackendClient(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestBackendClient_BaseURLTrimmed(t *testing.T) {
	c, err := NewBackendClient("http://localhost:5000/", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.endpoint("/translate"); got != "http://localhost:5000/translate" {
		t.Errorf("endpoint = %q, want http://localhost:5000/translate", got)
	}
}

func TestBackendClient_TranslateRequest(t *testing.T) {
	var body map[string]string
	var contentType, method, path string
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"translation":"Bonjour","source_lang":"en","target_lang":"fr"}`)
	})

	resp, err := c.Translate(context.Background(), models.TranslateRequest{Text: "Hello", SourceLang: "auto", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}

	if method != http.MethodPost || path != "/translate" {
		t.Errorf("request = %s %s, want POST /translate", method, path)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if body["text"] != "Hello" || body["source_lang"] != "auto" || body["target_lang"] != "fr" {
		t.Errorf("body = %v", body)
	}
	if resp.Translation == nil || *resp.Translation != "Bonjour" {
		t.Errorf("Translation = %v, want Bonjour", resp.Translation)
	}
	if resp.SourceLang != "en" {
		t.Errorf("SourceLang = %q, want 'en'", resp.SourceLang)
	}
}

func TestBackendClient_TranslateErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantApp   bool
		wantTrans bool
	}{
		{"error with 400", http.StatusBadRequest, `{"error":"Bad language code"}`, true, false},
		{"error with 200", http.StatusOK, `{"error":"Bad language code"}`, true, false},
		{"html error page", http.StatusInternalServerError, `<html>oops</html>`, false, true},
		{"unexpected schema", http.StatusOK, `{"result":"Bonjour"}`, false, true},
		{"empty body", http.StatusOK, ``, false, true},
		{"empty error falls through", http.StatusOK, `{"error":"","translation":"ok"}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.Translate(context.Background(), models.TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "xx"})

			var appErr *ApplicationError
			var transErr *TransportError
			if got := errors.As(err, &appErr); got != tt.wantApp {
				t.Errorf("ApplicationError = %v, want %v (err %v)", got, tt.wantApp, err)
			}
			if got := errors.As(err, &transErr); got != tt.wantTrans {
				t.Errorf("TransportError = %v, want %v (err %v)", got, tt.wantTrans, err)
			}
			if tt.wantApp && appErr.Message != "Bad language code" {
				t.Errorf("Message = %q, want 'Bad language code'", appErr.Message)
			}
		})
	}
}

func TestBackendClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := NewBackendClient(addr, nil, logger.New(logger.LevelError, io.Discard))
	if err != nil {
		t.Fatalf("NewBackendClient() error: %v", err)
	}

	_, err = c.Synthesize(context.Background(), models.SpeakRequest{Translation: "Bonjour", TargetLang: "fr"})
	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if transErr.Endpoint != "/text_to_speech" {
		t.Errorf("Endpoint = %q, want /text_to_speech", transErr.Endpoint)
	}
}

func TestBackendClient_Synthesize(t *testing.T) {
	var body map[string]string
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text_to_speech" {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"audio_file":"translation.mp3"}`)
	})

	resp, err := c.Synthesize(context.Background(), models.SpeakRequest{Translation: "Bonjour", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if resp.AudioFile == nil || *resp.AudioFile != "translation.mp3" {
		t.Errorf("AudioFile = %v, want translation.mp3", resp.AudioFile)
	}
	if body["translation"] != "Bonjour" || body["target_lang"] != "fr" {
		t.Errorf("body = %v", body)
	}
	if _, ok := body["text"]; ok {
		t.Error("speak request should not carry a text field")
	}
}

func TestBackendClient_Cancelled(t *testing.T) {
	block := make(chan struct{})
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Translate(ctx, models.TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "fr"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
