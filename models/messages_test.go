package models

import (
	"encoding/json"
	"testing"
)

func TestTranslateRequest_WireFormat(t *testing.T) {
	req := TranslateRequest{Text: "Hello", SourceLang: "auto", TargetLang: "af"}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"text":"Hello","source_lang":"auto","target_lang":"af"}`
	if string(data) != want {
		t.Errorf("body = %s, want %s", data, want)
	}
}

func TestTranslateRequest_EmptyTextKept(t *testing.T) {
	data, _ := json.Marshal(TranslateRequest{SourceLang: "auto", TargetLang: "en"})
	want := `{"text":"","source_lang":"auto","target_lang":"en"}`
	if string(data) != want {
		t.Errorf("body = %s, want %s", data, want)
	}
}

func TestSpeakRequest_WireFormat(t *testing.T) {
	data, _ := json.Marshal(SpeakRequest{Translation: "Hallo", TargetLang: "af"})
	want := `{"translation":"Hallo","target_lang":"af"}`
	if string(data) != want {
		t.Errorf("body = %s, want %s", data, want)
	}
}

func TestTranslateResponse_Result(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		want       string
		wantFailed bool
		wantErr    bool
	}{
		{"success", `{"translation":"Bonjour"}`, "Bonjour", false, false},
		{"success keeps whitespace", `{"translation":"  Bonjour\n"}`, "  Bonjour\n", false, false},
		{"empty translation", `{"translation":""}`, "", false, false},
		{"with detected language", `{"translation":"Hallo","source_lang":"en","target_lang":"af"}`, "Hallo", false, false},
		{"failure", `{"error":"Bad language code"}`, "", true, false},
		{"error wins", `{"translation":"x","error":"boom"}`, "", true, false},
		{"empty error falls through", `{"translation":"x","error":""}`, "x", false, false},
		{"unexpected schema", `{"text":"Hello"}`, "", false, true},
		{"empty object", `{}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp TranslateResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			got, failed, err := resp.Result()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Result() error = %v, wantErr %v", err, tt.wantErr)
			}
			if failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", failed, tt.wantFailed)
			}
			if got != tt.want {
				t.Errorf("translation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpeakResponse_Result(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		want       string
		wantFailed bool
		wantErr    bool
	}{
		{"success", `{"audio_file":"http://host/a.mp3"}`, "http://host/a.mp3", false, false},
		{"relative path", `{"audio_file":"translation.mp3"}`, "translation.mp3", false, false},
		{"failure", `{"error":"Invalid input"}`, "", true, false},
		{"unexpected schema", `{"translation":"x"}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp SpeakResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			got, failed, err := resp.Result()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Result() error = %v, wantErr %v", err, tt.wantErr)
			}
			if failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", failed, tt.wantFailed)
			}
			if got != tt.want {
				t.Errorf("audio = %q, want %q", got, tt.want)
			}
		})
	}
}
