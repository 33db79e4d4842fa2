package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"text-translator/internal/config"
	"text-translator/internal/text"
	"text-translator/models"
	"text-translator/services"
	"text-translator/ui/layouts"
	appTheme "text-translator/ui/theme"
	"text-translator/ui/widgets"
)

// MainUI is the translator window. It is the Form and Display the
// controller works against.
type MainUI struct {
	window     fyne.Window
	config     *models.Config
	controller *services.Controller
	ctx        context.Context

	// UI Components
	input        *widget.Entry
	output       *widget.Entry
	inputHeader  *widgets.PaneHeader
	outputHeader *widgets.PaneHeader
	source       *widgets.LanguageSelector
	target       *widgets.LanguageSelector
	actions      *widgets.ActionBar
}

var (
	_ services.Form    = (*MainUI)(nil)
	_ services.Display = (*MainUI)(nil)
)

// NewMainUI creates the window content. Call Bind before showing it.
func NewMainUI(w fyne.Window, cfg *models.Config) *MainUI {
	ui := &MainUI{
		window: w,
		config: cfg,
		ctx:    context.Background(),
	}

	ui.input = widget.NewMultiLineEntry()
	ui.input.SetPlaceHolder("Enter text to translate")
	ui.input.Wrapping = fyne.TextWrapWord
	ui.inputHeader = widgets.NewPaneHeader("Text")
	ui.input.OnChanged = ui.inputHeader.SetText

	ui.output = widget.NewMultiLineEntry()
	ui.output.SetPlaceHolder("Translation")
	ui.output.Wrapping = fyne.TextWrapWord
	ui.outputHeader = widgets.NewPaneHeader("Translation")
	ui.output.OnChanged = ui.outputHeader.SetText

	ui.source = widgets.NewLanguageSelector("From", nil)
	ui.target = widgets.NewLanguageSelector("To", nil)

	ui.actions = widgets.NewActionBar()
	ui.actions.OnTranslate = ui.onTranslate
	ui.actions.OnSpeak = ui.onSpeak
	ui.actions.OnSpeakInput = ui.onSpeakInput

	return ui
}

// Bind attaches the controller, fills the language selectors and applies
// the configured default selections. ctx cancels in-flight requests.
func (ui *MainUI) Bind(ctx context.Context, c *services.Controller) {
	ui.ctx = ctx
	ui.controller = c

	c.PopulateLanguageOptions(text.Languages(), ui.source, ui.target)
	ui.source.SetSelected(ui.config.DefaultSourceLang)
	ui.target.SetSelected(ui.config.DefaultTargetLang)

	c.OnStateChange(func(a models.Action) {
		fyne.Do(func() {
			ui.actions.SetStatus(a)
		})
	})
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	selectors := container.NewGridWithColumns(2, ui.source, ui.target)

	inputPane := container.NewBorder(ui.inputHeader, nil, nil, nil, ui.input)
	outputPane := container.NewBorder(ui.outputHeader, nil, nil, nil, ui.output)
	panes := container.NewHSplit(inputPane, outputPane)
	panes.SetOffset(0.5)

	content := container.NewBorder(
		container.NewPadded(selectors),
		nil, nil, nil,
		container.NewStack(
			widgets.NewCard(appTheme.ColorNameSurface, 8),
			container.NewPadded(panes),
		),
	)

	barHeight := fyne.CurrentApp().Settings().Theme().Size(appTheme.SizeNameActionBarHeight)
	return container.New(layouts.NewBottomBar(barHeight), container.NewPadded(content), ui.actions)
}

// InputText implements services.Form
func (ui *MainUI) InputText() string { return ui.input.Text }

// OutputText implements services.Form
func (ui *MainUI) OutputText() string { return ui.output.Text }

// SourceLang implements services.Form
func (ui *MainUI) SourceLang() string { return ui.source.Selected() }

// TargetLang implements services.Form
func (ui *MainUI) TargetLang() string { return ui.target.Selected() }

// SetOutputText implements services.Display. Safe from any goroutine.
func (ui *MainUI) SetOutputText(s string) {
	fyne.Do(func() {
		ui.output.SetText(s)
	})
}

// Alert implements services.Display. Safe from any goroutine.
func (ui *MainUI) Alert(message string) {
	fyne.Do(func() {
		dialog.ShowInformation(config.AppTitle, message, ui.window)
	})
}

func (ui *MainUI) onTranslate() {
	ui.translate()
}

func (ui *MainUI) onSpeak() {
	ui.speak()
}

func (ui *MainUI) onSpeakInput() {
	// stub control; the controller logs the call
	_ = ui.controller.SpeakInput()
}

func (ui *MainUI) translate() <-chan *models.Action {
	return ui.controller.Translate(ui.ctx, ui)
}

func (ui *MainUI) speak() <-chan *models.Action {
	return ui.controller.Speak(ui.ctx, ui)
}
