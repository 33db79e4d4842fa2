// Package tui is the terminal frontend. It drives the same controller as the
// desktop window, with a textarea for input and cycling language selectors.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"text-translator/internal/config"
	"text-translator/internal/text"
	"text-translator/models"
	"text-translator/services"
)

// Messages delivered by the Bridge.
type (
	outputMsg string
	alertMsg  string
	statusMsg models.Action
)

// actionDoneMsg is returned by the command that waits for a request.
type actionDoneMsg struct {
	action *models.Action
}

type focusArea int

const (
	focusInput focusArea = iota
	focusSource
	focusTarget
	focusCount
)

// languageList collects options from the controller.
type languageList struct {
	langs []text.Language
}

func (l *languageList) AppendOption(lang text.Language) {
	l.langs = append(l.langs, lang)
}

func (l *languageList) index(code string) int {
	for i, lang := range l.langs {
		if lang.Code == code {
			return i
		}
	}
	return 0
}

// Model is the bubbletea model of the translator.
type Model struct {
	ctx        context.Context
	controller *services.Controller

	input  textarea.Model
	output string

	source    *languageList
	target    *languageList
	sourceIdx int
	targetIdx int

	focus  focusArea
	alert  string
	status models.Action

	keys  keyMap
	help  help.Model
	width int
}

var _ services.Form = Model{}

// New builds the model, filling the selectors through the controller and
// applying the configured defaults.
func New(ctx context.Context, cfg *models.Config, c *services.Controller) Model {
	input := textarea.New()
	input.Placeholder = "Enter text to translate"
	input.ShowLineNumbers = false
	input.SetHeight(5)
	input.Focus()

	m := Model{
		ctx:        ctx,
		controller: c,
		input:      input,
		source:     &languageList{},
		target:     &languageList{},
		status:     models.Action{Status: models.StatusIdle},
		keys:       defaultKeyMap(),
		help:       help.New(),
	}

	c.PopulateLanguageOptions(text.Languages(), m.source, m.target)
	m.sourceIdx = m.source.index(cfg.DefaultSourceLang)
	m.targetIdx = m.target.index(cfg.DefaultTargetLang)
	return m
}

// InputText implements services.Form
func (m Model) InputText() string { return m.input.Value() }

// OutputText implements services.Form
func (m Model) OutputText() string { return m.output }

// SourceLang implements services.Form
func (m Model) SourceLang() string { return codeAt(m.source, m.sourceIdx) }

// TargetLang implements services.Form
func (m Model) TargetLang() string { return codeAt(m.target, m.targetIdx) }

func codeAt(l *languageList, i int) string {
	if i < 0 || i >= len(l.langs) {
		return ""
	}
	return l.langs[i].Code
}

func nameAt(l *languageList, i int) string {
	if i < 0 || i >= len(l.langs) {
		return ""
	}
	return l.langs[i].Name
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case outputMsg:
		m.output = string(msg)
		return m, nil

	case alertMsg:
		m.alert = string(msg)
		return m, nil

	case statusMsg:
		m.status = models.Action(msg)
		return m, nil

	case actionDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// an open alert takes all keys until dismissed
	if m.alert != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alert = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Translate):
		return m, waitFor(m.controller.Translate(m.ctx, m))
	case key.Matches(msg, m.keys.Speak):
		return m, waitFor(m.controller.Speak(m.ctx, m))
	case key.Matches(msg, m.keys.SpeakInput):
		_ = m.controller.SpeakInput()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m.cycleFocus(), nil
	}

	switch m.focus {
	case focusSource:
		m.sourceIdx = m.step(msg, m.sourceIdx, len(m.source.langs))
		return m, nil
	case focusTarget:
		m.targetIdx = m.step(msg, m.targetIdx, len(m.target.langs))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) cycleFocus() Model {
	m.focus = (m.focus + 1) % focusCount
	if m.focus == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// step moves a selector index with wrap-around.
func (m Model) step(msg tea.KeyMsg, idx, n int) int {
	if n == 0 {
		return 0
	}
	switch {
	case key.Matches(msg, m.keys.Prev):
		return (idx - 1 + n) % n
	case key.Matches(msg, m.keys.Next):
		return (idx + 1) % n
	}
	return idx
}

// waitFor turns a pending request into a command that completes with it.
func waitFor(done <-chan *models.Action) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: <-done}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(config.AppTitle))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("From "),
		m.selectorView(focusSource, nameAt(m.source, m.sourceIdx)),
		labelStyle.Render("   To "),
		m.selectorView(focusTarget, nameAt(m.target, m.targetIdx)),
	))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	output := m.output
	if output == "" {
		output = labelStyle.Render("Translation")
	}
	pane := paneStyle
	if m.width > 0 {
		pane = pane.Width(max(m.width-4, 20))
	}
	b.WriteString(pane.Render(output))
	b.WriteString("\n")

	b.WriteString(statusStyle(m.status.Status).Render(m.status.StatusIcon() + " " + m.status.StatusText()))
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) selectorView(area focusArea, name string) string {
	label := "‹ " + name + " ›"
	if m.focus == area {
		return focusedSelectorStyle.Render(label)
	}
	return selectorStyle.Render(label)
}
