package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"text-translator/models"
	appTheme "text-translator/ui/theme"
)

// ActionBar is the bottom bar holding the action buttons and the status of
// the most recent action.
type ActionBar struct {
	widget.BaseWidget

	OnTranslate  func()
	OnSpeak      func()
	OnSpeakInput func()

	translateBtn  *ActionButton
	speakBtn      *ActionButton
	speakInputBtn *ActionButton
	status        *StatusBadge
}

// NewActionBar creates the action bar.
func NewActionBar() *ActionBar {
	c := &ActionBar{}

	c.translateBtn = NewActionButton("Translate", theme.MailForwardIcon(), func() {
		if c.OnTranslate != nil {
			c.OnTranslate()
		}
	})
	c.speakBtn = NewActionButton("Speak Translation", theme.MediaPlayIcon(), func() {
		if c.OnSpeak != nil {
			c.OnSpeak()
		}
	})
	c.speakInputBtn = NewActionButton("Speak Input", theme.MediaRecordIcon(), func() {
		if c.OnSpeakInput != nil {
			c.OnSpeakInput()
		}
	})
	c.speakInputBtn.Muted = true
	c.status = NewStatusBadge()

	c.ExtendBaseWidget(c)
	return c
}

// SetStatus shows the state of action a.
func (c *ActionBar) SetStatus(a models.Action) {
	c.status.SetAction(a)
}

// Status returns the badge showing the last action.
func (c *ActionBar) Status() *StatusBadge {
	return c.status
}

// TranslateButton, SpeakButton and SpeakInputButton expose the buttons for tests.
func (c *ActionBar) TranslateButton() *ActionButton  { return c.translateBtn }
func (c *ActionBar) SpeakButton() *ActionButton      { return c.speakBtn }
func (c *ActionBar) SpeakInputButton() *ActionButton { return c.speakInputBtn }

// CreateRenderer implements fyne.Widget
func (c *ActionBar) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(
		c.status,
		layout.NewSpacer(),
		c.speakInputBtn,
		c.speakBtn,
		c.translateBtn,
	)
	return widget.NewSimpleRenderer(container.NewStack(
		NewSurface(appTheme.ColorNameActionBar),
		container.NewPadded(content),
	))
}
