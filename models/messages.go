package models

import "github.com/pkg/errors"

// ErrUnexpectedSchema is returned by the Result methods when a backend
// response carries neither its success field nor an error message.
var ErrUnexpectedSchema = errors.New("response has neither result nor error")

// TranslateRequest is the body of POST /translate.
// Text is passed through as typed, including when empty.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslateResponse is the body returned by POST /translate.
// Exactly one of Translation or Error is expected; the backend may also
// echo the detected source language and the target language.
type TranslateResponse struct {
	Translation *string `json:"translation,omitempty"`
	Error       string  `json:"error,omitempty"`
	SourceLang  string  `json:"source_lang,omitempty"`
	TargetLang  string  `json:"target_lang,omitempty"`
}

// Result classifies the response. A non-empty error message wins over a
// translation. The returned bool is true when the backend reported failure.
func (r TranslateResponse) Result() (translation string, failed bool, err error) {
	if r.Error != "" {
		return "", true, nil
	}
	if r.Translation == nil {
		return "", false, ErrUnexpectedSchema
	}
	return *r.Translation, false, nil
}

// SpeakRequest is the body of POST /text_to_speech.
type SpeakRequest struct {
	Translation string `json:"translation"`
	TargetLang  string `json:"target_lang"`
}

// SpeakResponse is the body returned by POST /text_to_speech.
// AudioFile is a URL or a path playable by an audio player.
type SpeakResponse struct {
	AudioFile *string `json:"audio_file,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Result classifies the response the same way TranslateResponse.Result does.
func (r SpeakResponse) Result() (audioFile string, failed bool, err error) {
	if r.Error != "" {
		return "", true, nil
	}
	if r.AudioFile == nil {
		return "", false, ErrUnexpectedSchema
	}
	return *r.AudioFile, false, nil
}
