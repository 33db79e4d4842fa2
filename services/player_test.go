package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"text-translator/internal/logger"
)

func newTestPlayer(t *testing.T, base string) (*ExecPlayer, *[]string) {
	t.Helper()
	var baseURL *url.URL
	if base != "" {
		u, err := url.Parse(base)
		if err != nil {
			t.Fatalf("parse base: %v", err)
		}
		baseURL = u
	}
	p := NewExecPlayer(baseURL, http.DefaultClient, t.TempDir(), "", logger.New(logger.LevelError, io.Discard))
	p.retry.InitialDelay = time.Millisecond
	var played []string
	p.run = func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			played = append(played, "missing:"+path)
			return nil
		}
		played = append(played, string(data))
		return nil
	}
	return p, &played
}

func TestExecPlayer_Resolve(t *testing.T) {
	p, _ := newTestPlayer(t, "http://localhost:5000")

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"http://cdn.example.com/a.mp3", "http://cdn.example.com/a.mp3", false},
		{"https://cdn.example.com/a.mp3", "https://cdn.example.com/a.mp3", false},
		{"static/audio/out.mp3", "http://localhost:5000/static/audio/out.mp3", false},
		{"/static/out.mp3", "/static/out.mp3", false},
		{"file:///tmp/out.mp3", "/tmp/out.mp3", false},
		{"  ", "", true},
		{"ftp://host/a.mp3", "", true},
	}

	for _, tt := range tests {
		got, err := p.Resolve(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("Resolve(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestExecPlayer_Resolve_BasePathPrefix(t *testing.T) {
	tests := []struct {
		base string
		ref  string
		want string
	}{
		{"http://host:5000/api", "translation.mp3", "http://host:5000/api/translation.mp3"},
		{"http://host:5000/api/", "translation.mp3", "http://host:5000/api/translation.mp3"},
		{"http://host:5000/api", "audio/out.mp3", "http://host:5000/api/audio/out.mp3"},
		{"http://host:5000", "translation.mp3", "http://host:5000/translation.mp3"},
	}

	for _, tt := range tests {
		p, _ := newTestPlayer(t, tt.base)
		got, err := p.Resolve(tt.ref)
		if err != nil {
			t.Errorf("Resolve(%q) with base %q error: %v", tt.ref, tt.base, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) with base %q = %q, want %q", tt.ref, tt.base, got, tt.want)
		}
	}
}

func TestExecPlayer_Resolve_NoBase(t *testing.T) {
	p, _ := newTestPlayer(t, "")
	got, err := p.Resolve("out.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "out.mp3" {
		t.Errorf("Resolve() = %q, want 'out.mp3'", got)
	}
}

func TestExecPlayer_PlayRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/out.mp3" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "ID3-audio")
	}))
	defer srv.Close()

	p, played := newTestPlayer(t, srv.URL)
	if err := p.Play(context.Background(), "audio/out.mp3"); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if len(*played) != 1 || (*played)[0] != "ID3-audio" {
		t.Errorf("played = %v, want [ID3-audio]", *played)
	}

	entries, err := os.ReadDir(p.cacheDir)
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d files after playback, want 0", len(entries))
	}
}

func TestExecPlayer_PlayRemote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	p, played := newTestPlayer(t, srv.URL)
	err := p.Play(context.Background(), srv.URL+"/missing.mp3")
	if err == nil {
		t.Fatal("expected error for 404 audio")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("error = %q, want it to mention status 404", err)
	}
	if len(*played) != 0 {
		t.Errorf("played = %v, want nothing", *played)
	}
}

func TestExecPlayer_PlayRemote_RetriesUnavailable(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, "late-audio")
	}))
	defer srv.Close()

	p, played := newTestPlayer(t, srv.URL)
	if err := p.Play(context.Background(), "translation.mp3"); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("requests = %d, want 2", hits.Load())
	}
	if len(*played) != 1 || (*played)[0] != "late-audio" {
		t.Errorf("played = %v, want [late-audio]", *played)
	}
}

func TestExecPlayer_PlayLocal(t *testing.T) {
	p, played := newTestPlayer(t, "http://localhost:5000")
	path := filepath.Join(t.TempDir(), "local.mp3")
	if err := os.WriteFile(path, []byte("local-audio"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := p.Play(context.Background(), path); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if len(*played) != 1 || (*played)[0] != "local-audio" {
		t.Errorf("played = %v, want [local-audio]", *played)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("local file should not be removed: %v", err)
	}
}

func TestExecPlayer_CustomCommand(t *testing.T) {
	p := NewExecPlayer(nil, http.DefaultClient, t.TempDir(), "mpv --no-video", nil)
	cmd, err := p.playerCommand(context.Background(), "/tmp/a.mp3")
	if err != nil {
		t.Fatalf("playerCommand() error: %v", err)
	}
	want := []string{"mpv", "--no-video", "/tmp/a.mp3"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}
