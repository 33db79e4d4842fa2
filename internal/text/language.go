// Package text holds the language option table shared by both selectors.
package text

import "strings"

// AutoDetect is the source language code asking the backend to detect the language.
const AutoDetect = "auto"

// Language is a selectable language option.
type Language struct {
	Code string
	Name string
}

// languages is the fixed option table in display order.
// The first entry is the auto-detect pseudo language.
var languages = []Language{
	{Code: AutoDetect, Name: "Auto"},
	{Code: "af", Name: "Afrikaans"},
	{Code: "sq", Name: "Albanian"},
	{Code: "am", Name: "Amharic"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hy", Name: "Armenian"},
	{Code: "az", Name: "Azerbaijani"},
	{Code: "eu", Name: "Basque"},
	{Code: "be", Name: "Belarusian"},
	{Code: "bn", Name: "Bengali"},
	{Code: "bs", Name: "Bosnian"},
	{Code: "bg", Name: "Bulgarian"},
	{Code: "ca", Name: "Catalan"},
	{Code: "ceb", Name: "Cebuano"},
	{Code: "ny", Name: "Chichewa"},
	{Code: "zh-cn", Name: "Chinese (Simplified)"},
	{Code: "zh-tw", Name: "Chinese (Traditional)"},
	{Code: "co", Name: "Corsican"},
	{Code: "hr", Name: "Croatian"},
	{Code: "cs", Name: "Czech"},
	{Code: "da", Name: "Danish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "en", Name: "English"},
	{Code: "eo", Name: "Esperanto"},
	{Code: "et", Name: "Estonian"},
	{Code: "tl", Name: "Filipino"},
	{Code: "fi", Name: "Finnish"},
	{Code: "fr", Name: "French"},
	{Code: "fy", Name: "Frisian"},
	{Code: "gl", Name: "Galician"},
	{Code: "ka", Name: "Georgian"},
	{Code: "de", Name: "German"},
	{Code: "el", Name: "Greek"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "ht", Name: "Haitian Creole"},
	{Code: "ha", Name: "Hausa"},
	{Code: "haw", Name: "Hawaiian"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
	{Code: "hmn", Name: "Hmong"},
	{Code: "hu", Name: "Hungarian"},
	{Code: "is", Name: "Icelandic"},
	{Code: "ig", Name: "Igbo"},
	{Code: "id", Name: "Indonesian"},
	{Code: "ga", Name: "Irish"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "jw", Name: "Javanese"},
	{Code: "kn", Name: "Kannada"},
	{Code: "kk", Name: "Kazakh"},
	{Code: "km", Name: "Khmer"},
	{Code: "ko", Name: "Korean"},
	{Code: "ku", Name: "Kurdish (Kurmanji)"},
	{Code: "ky", Name: "Kyrgyz"},
	{Code: "lo", Name: "Lao"},
	{Code: "la", Name: "Latin"},
	{Code: "lv", Name: "Latvian"},
	{Code: "lt", Name: "Lithuanian"},
	{Code: "lb", Name: "Luxembourgish"},
	{Code: "mk", Name: "Macedonian"},
	{Code: "mg", Name: "Malagasy"},
	{Code: "ms", Name: "Malay"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "mt", Name: "Maltese"},
	{Code: "mi", Name: "Maori"},
	{Code: "mr", Name: "Marathi"},
	{Code: "mn", Name: "Mongolian"},
	{Code: "my", Name: "Myanmar (Burmese)"},
	{Code: "ne", Name: "Nepali"},
	{Code: "no", Name: "Norwegian"},
	{Code: "or", Name: "Odia"},
	{Code: "ps", Name: "Pashto"},
	{Code: "fa", Name: "Persian"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "ro", Name: "Romanian"},
	{Code: "ru", Name: "Russian"},
	{Code: "sm", Name: "Samoan"},
	{Code: "gd", Name: "Scots Gaelic"},
	{Code: "sr", Name: "Serbian"},
	{Code: "st", Name: "Sesotho"},
	{Code: "sn", Name: "Shona"},
	{Code: "sd", Name: "Sindhi"},
	{Code: "si", Name: "Sinhala"},
	{Code: "sk", Name: "Slovak"},
	{Code: "sl", Name: "Slovenian"},
	{Code: "so", Name: "Somali"},
	{Code: "es", Name: "Spanish"},
	{Code: "su", Name: "Sundanese"},
	{Code: "sw", Name: "Swahili"},
	{Code: "sv", Name: "Swedish"},
	{Code: "tg", Name: "Tajik"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
	{Code: "th", Name: "Thai"},
	{Code: "tr", Name: "Turkish"},
	{Code: "uk", Name: "Ukrainian"},
	{Code: "ur", Name: "Urdu"},
	{Code: "ug", Name: "Uyghur"},
	{Code: "uz", Name: "Uzbek"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "cy", Name: "Welsh"},
	{Code: "xh", Name: "Xhosa"},
	{Code: "yi", Name: "Yiddish"},
	{Code: "yo", Name: "Yoruba"},
	{Code: "zu", Name: "Zulu"},
}

// Languages returns a copy of the option table in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// SelectorOptions builds the source and target selector lists from options.
// Both lists keep the input order; the target list omits the auto-detect entry.
// The returned slices never share backing storage with each other or with options.
func SelectorOptions(options []Language) (source, target []Language) {
	source = make([]Language, 0, len(options))
	target = make([]Language, 0, len(options))
	for _, opt := range options {
		source = append(source, opt)
		if opt.Code != AutoDetect {
			target = append(target, opt)
		}
	}
	return source, target
}

// GetLanguageName returns the human-readable name for a language code.
// If the code is not found, it returns the code itself.
func GetLanguageName(code string) string {
	for _, l := range languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// FindByName returns the language whose name matches name case-insensitively.
func FindByName(name string) (Language, bool) {
	for _, l := range languages {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Language{}, false
}

// IsValidSourceLanguage checks if a language code is a valid source language.
func IsValidSourceLanguage(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// IsValidTargetLanguage checks if a language code is a valid target language.
func IsValidTargetLanguage(code string) bool {
	return code != AutoDetect && IsValidSourceLanguage(code)
}
