package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"text-translator/internal/text"
)

// LanguageSelector is a labelled dropdown of languages. Options are added
// one at a time with AppendOption; the selection is reported as a code.
type LanguageSelector struct {
	widget.BaseWidget

	Label     string
	OnChanged func(code string)

	languages []text.Language
	selected  string

	label   *widget.Label
	dropper *widget.Select
}

// NewLanguageSelector creates an empty selector.
func NewLanguageSelector(label string, onChanged func(code string)) *LanguageSelector {
	s := &LanguageSelector{
		Label:     label,
		OnChanged: onChanged,
	}
	s.label = widget.NewLabel(label)
	s.dropper = widget.NewSelect(nil, s.onSelect)
	s.dropper.PlaceHolder = "Select language"
	s.ExtendBaseWidget(s)
	return s
}

// AppendOption adds lang at the end of the list. The first option becomes
// the selection when nothing is selected yet.
func (s *LanguageSelector) AppendOption(lang text.Language) {
	s.languages = append(s.languages, lang)
	s.dropper.Options = append(s.dropper.Options, lang.Name)
	if s.selected == "" {
		s.SetSelected(lang.Code)
		return
	}
	s.dropper.Refresh()
}

// Options returns a copy of the languages in display order.
func (s *LanguageSelector) Options() []text.Language {
	out := make([]text.Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// SetSelected selects the language with code. Unknown codes are ignored.
func (s *LanguageSelector) SetSelected(code string) {
	for _, lang := range s.languages {
		if lang.Code == code {
			s.selected = code
			s.dropper.SetSelected(lang.Name)
			return
		}
	}
}

// Selected returns the selected language code, or "" when the list is empty.
func (s *LanguageSelector) Selected() string {
	return s.selected
}

func (s *LanguageSelector) onSelect(name string) {
	for _, lang := range s.languages {
		if lang.Name == name {
			changed := lang.Code != s.selected
			s.selected = lang.Code
			if changed && s.OnChanged != nil {
				s.OnChanged(lang.Code)
			}
			return
		}
	}
}

// CreateRenderer implements fyne.Widget
func (s *LanguageSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, s.label, nil, s.dropper))
}
