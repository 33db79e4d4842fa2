// Package config provides centralized configuration and constants for the text-translator application.
package config

import "time"

// Backend defaults
const (
	DefaultBackendURL = "http://localhost:5000"

	TranslatePath    = "/translate"
	TextToSpeechPath = "/text_to_speech"
)

// Default languages
const (
	DefaultSourceLang = "auto"
	DefaultTargetLang = "en"
)

// HTTP client settings.
// A zero timeout means the client waits for the backend indefinitely.
const (
	HTTPTimeout             = 0
	HTTPMaxIdleConns        = 10
	HTTPMaxIdleConnsPerHost = 10
	HTTPIdleConnTimeout     = 90 * time.Second
)

// MaxResponseBytes caps how much of a backend response body is read.
const MaxResponseBytes = 10 << 20

// Audio playback
const (
	AudioCacheDirName = "text-translator"
	AudioDownloadName = "speech"
	ExecTimeoutPlayer = 5 * time.Minute

	DownloadMaxAttempts = 3
	DownloadRetryDelay  = 250 * time.Millisecond
)

// Config file locations
const (
	AppName        = "text-translator"
	AppTitle       = "Text Translator"
	ConfigFileName = "config.json"
	EnvPrefix      = "TRANSLATOR"
	DotEnvFile     = ".env"
)

// Log levels understood by the logger
const (
	DefaultLogLevel = "info"
)

// Window defaults
const (
	WindowWidth  = 900
	WindowHeight = 600
)
