package models

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"text-translator/internal/config"
	"text-translator/internal/text"
)

// Config holds application settings.
// Values are layered: defaults, config file, .env, TRANSLATOR_* environment, flags.
type Config struct {
	// Backend serving /translate and /text_to_speech
	BackendURL string `json:"backend_url" mapstructure:"backend_url"`

	// Initial selector values
	DefaultSourceLang string `json:"default_source_lang" mapstructure:"default_source_lang"`
	DefaultTargetLang string `json:"default_target_lang" mapstructure:"default_target_lang"`

	// Overall HTTP timeout; 0 waits indefinitely
	RequestTimeout time.Duration `json:"request_timeout" mapstructure:"request_timeout"`

	// Command used to play synthesized audio, e.g. "ffplay -nodisp -autoexit".
	// Empty selects the platform default (afplay, ffplay/mpg123/paplay, PowerShell).
	AudioPlayer string `json:"audio_player" mapstructure:"audio_player"`

	// Where downloaded audio is stored before playback
	CacheDir string `json:"cache_dir" mapstructure:"cache_dir"`

	LogLevel string `json:"log_level" mapstructure:"log_level"`

	// Run the terminal frontend instead of the desktop window
	TUI bool `json:"tui" mapstructure:"tui"`
}

// flagKeys maps config keys to their command-line flag names.
var flagKeys = map[string]string{
	"backend_url":         "backend",
	"default_source_lang": "source",
	"default_target_lang": "target",
	"request_timeout":     "timeout",
	"audio_player":        "audio-player",
	"cache_dir":           "cache-dir",
	"log_level":           "log-level",
	"tui":                 "tui",
}

func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return &Config{
		BackendURL:        config.DefaultBackendURL,
		DefaultSourceLang: config.DefaultSourceLang,
		DefaultTargetLang: config.DefaultTargetLang,
		RequestTimeout:    config.HTTPTimeout,
		AudioPlayer:       "",
		CacheDir:          filepath.Join(cacheDir, config.AudioCacheDirName),
		LogLevel:          config.DefaultLogLevel,
		TUI:               false,
	}
}

// DefaultConfigPath returns ~/.config/text-translator/config.json.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", config.AppName, config.ConfigFileName)
}

// RegisterFlags adds the command-line flags understood by LoadConfig.
func RegisterFlags(flags *pflag.FlagSet) {
	d := DefaultConfig()
	flags.String("config", DefaultConfigPath(), "path to the JSON config file")
	flags.String("backend", d.BackendURL, "translation backend base URL")
	flags.String("source", d.DefaultSourceLang, "initial source language code or name")
	flags.String("target", d.DefaultTargetLang, "initial target language code or name")
	flags.Duration("timeout", d.RequestTimeout, "HTTP request timeout (0 waits indefinitely)")
	flags.String("audio-player", d.AudioPlayer, "command used to play synthesized audio")
	flags.String("cache-dir", d.CacheDir, "directory for downloaded audio")
	flags.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	flags.Bool("tui", d.TUI, "run the terminal interface instead of the desktop window")
}

// LoadConfig reads the configuration. flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	path := DefaultConfigPath()
	if flags != nil {
		if p, err := flags.GetString("config"); err == nil && p != "" {
			path = p
		}
	}
	return loadConfig(path, config.DotEnvFile, flags)
}

func loadConfig(path, dotenvPath string, flags *pflag.FlagSet) (*Config, error) {
	// .env never overrides variables already set in the environment
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "load %s", dotenvPath)
	}

	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("backend_url", d.BackendURL)
	v.SetDefault("default_source_lang", d.DefaultSourceLang)
	v.SetDefault("default_target_lang", d.DefaultTargetLang)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("audio_player", d.AudioPlayer)
	v.SetDefault("cache_dir", d.CacheDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("tui", d.TUI)

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.DefaultSourceLang = languageCode(cfg.DefaultSourceLang)
	cfg.DefaultTargetLang = languageCode(cfg.DefaultTargetLang)
	return cfg, nil
}

// languageCode accepts a language name such as "French" in place of its code.
func languageCode(s string) string {
	if l, ok := text.FindByName(s); ok {
		return l.Code
	}
	return s
}

// Validate checks the values the frontends depend on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return errors.Wrapf(err, "backend url %q", c.BackendURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("backend url %q must be an absolute http(s) URL", c.BackendURL)
	}
	if !text.IsValidSourceLanguage(c.DefaultSourceLang) {
		return errors.Errorf("unknown source language %q", c.DefaultSourceLang)
	}
	if !text.IsValidTargetLanguage(c.DefaultTargetLang) {
		return errors.Errorf("unknown target language %q", c.DefaultTargetLang)
	}
	if c.RequestTimeout < 0 {
		return errors.Errorf("request timeout must not be negative, got %v", c.RequestTimeout)
	}
	return nil
}
