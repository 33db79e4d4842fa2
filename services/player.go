package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"text-translator/internal/config"
	internalhttp "text-translator/internal/http"
	"text-translator/internal/logger"
)

// ExecPlayer plays audio references by running a local player process.
// Remote references are downloaded to the cache directory first.
type ExecPlayer struct {
	baseURL  *url.URL
	client   *http.Client
	cacheDir string
	command  []string
	retry    internalhttp.RetryConfig
	log      *logger.Logger

	// run plays a local file; replaced in tests
	run func(ctx context.Context, path string) error
}

// NewExecPlayer creates a player. Relative references are resolved against
// baseURL. command overrides the platform player, e.g. "ffplay -nodisp -autoexit".
func NewExecPlayer(baseURL *url.URL, client *http.Client, cacheDir, command string, log *logger.Logger) *ExecPlayer {
	if log == nil {
		log = logger.Default()
	}
	p := &ExecPlayer{
		baseURL:  baseURL,
		client:   client,
		cacheDir: cacheDir,
		command:  strings.Fields(command),
		retry:    internalhttp.DefaultRetryConfig(),
		log:      log,
	}
	p.run = p.runCommand
	return p
}

// Resolve turns a backend audio reference into an absolute URL or a local path.
func (p *ExecPlayer) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty audio reference")
	}
	if filepath.IsAbs(ref) {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", errors.Wrapf(err, "parse audio reference %q", ref)
	}
	switch u.Scheme {
	case "http", "https":
		return u.String(), nil
	case "file":
		return u.Path, nil
	case "":
		if p.baseURL == nil {
			return ref, nil
		}
		return dirURL(p.baseURL).ResolveReference(u).String(), nil
	default:
		return "", errors.Errorf("unsupported audio reference scheme %q", u.Scheme)
	}
}

// Play resolves ref, fetches it if remote, and blocks until playback ends.
func (p *ExecPlayer) Play(ctx context.Context, ref string) error {
	loc, err := p.Resolve(ref)
	if err != nil {
		return err
	}

	local := loc
	if isRemote(loc) {
		local, err = p.download(ctx, loc)
		if err != nil {
			return err
		}
		defer os.Remove(local)
	}

	p.log.Debug("Playing %s", local)
	return p.run(ctx, local)
}

func (p *ExecPlayer) download(ctx context.Context, loc string) (string, error) {
	resp, err := internalhttp.GetWithRetry(ctx, p.client, loc, p.retry)
	if err != nil {
		return "", errors.Wrapf(err, "fetch audio %s", loc)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", errors.Errorf("fetch audio %s: status %d", loc, resp.StatusCode)
	}

	if err := os.MkdirAll(p.cacheDir, 0755); err != nil {
		return "", errors.Wrap(err, "create audio cache dir")
	}

	ext := path.Ext(resp.Request.URL.Path)
	if ext == "" {
		ext = ".mp3"
	}
	f, err := os.CreateTemp(p.cacheDir, config.AudioDownloadName+"-*"+ext)
	if err != nil {
		return "", errors.Wrap(err, "create audio file")
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "write audio file")
	}
	return f.Name(), nil
}

func (p *ExecPlayer) runCommand(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, config.ExecTimeoutPlayer)
	defer cancel()

	cmd, err := p.playerCommand(ctx, path)
	if err != nil {
		return err
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "%s: %s", cmd.Path, strings.TrimSpace(string(output)))
	}
	return nil
}

func (p *ExecPlayer) playerCommand(ctx context.Context, path string) (*exec.Cmd, error) {
	if len(p.command) > 0 {
		args := append(append([]string{}, p.command[1:]...), path)
		return exec.CommandContext(ctx, p.command[0], args...), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "afplay", path), nil
	case "linux":
		// paplay cannot decode mp3, so prefer a full media player when present
		for _, candidate := range [][]string{
			{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
			{"mpg123", "-q"},
			{"paplay"},
		} {
			if _, err := exec.LookPath(candidate[0]); err == nil {
				args := append(append([]string{}, candidate[1:]...), path)
				return exec.CommandContext(ctx, candidate[0], args...), nil
			}
		}
		return nil, errors.New("no audio player found (install ffmpeg or mpg123, or set audio_player)")
	case "windows":
		script := fmt.Sprintf(
			"Add-Type -AssemblyName presentationCore; $p = New-Object System.Windows.Media.MediaPlayer; "+
				"$p.Open([uri]'%s'); $p.Play(); Start-Sleep -Milliseconds 500; "+
				"while ($p.NaturalDuration.HasTimeSpan -and $p.Position -lt $p.NaturalDuration.TimeSpan) { Start-Sleep -Milliseconds 200 }",
			strings.ReplaceAll(path, "'", "''"))
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-c", script), nil
	default:
		return nil, errors.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// dirURL returns a copy of u whose path ends in a slash, so relative
// references stay under a backend mounted at a path prefix.
func dirURL(u *url.URL) *url.URL {
	dir := *u
	if !strings.HasSuffix(dir.Path, "/") {
		dir.Path += "/"
		if dir.RawPath != "" {
			dir.RawPath += "/"
		}
	}
	return &dir
}

func isRemote(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}
