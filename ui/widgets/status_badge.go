package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"text-translator/models"
	appTheme "text-translator/ui/theme"
)

// StatusBadge displays the state of the last action with a colored dot.
type StatusBadge struct {
	widget.BaseWidget

	action models.Action
}

// NewStatusBadge creates a badge in the idle state.
func NewStatusBadge() *StatusBadge {
	b := &StatusBadge{action: models.Action{Status: models.StatusIdle}}
	b.ExtendBaseWidget(b)
	return b
}

// SetAction updates the badge to show a.
func (b *StatusBadge) SetAction(a models.Action) {
	b.action = a
	b.Refresh()
}

// Text returns the label currently shown.
func (b *StatusBadge) Text() string {
	return b.action.StatusText()
}

// CreateRenderer implements fyne.Widget
func (b *StatusBadge) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Transparent)
	label := canvas.NewText("", color.White)
	label.TextSize = 12

	r := &statusBadgeRenderer{dot: dot, label: label, widget: b}
	r.Refresh()
	return r
}

type statusBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *StatusBadge
}

const statusDotSize = float32(8)

func (r *statusBadgeRenderer) Destroy() {}

func (r *statusBadgeRenderer) Layout(size fyne.Size) {
	r.dot.Resize(fyne.NewSize(statusDotSize, statusDotSize))
	r.dot.Move(fyne.NewPos(4, (size.Height-statusDotSize)/2))

	labelSize := r.label.MinSize()
	r.label.Resize(labelSize)
	r.label.Move(fyne.NewPos(statusDotSize+10, (size.Height-labelSize.Height)/2))
}

func (r *statusBadgeRenderer) MinSize() fyne.Size {
	labelSize := r.label.MinSize()
	return fyne.NewSize(statusDotSize+10+labelSize.Width+4, max(16, labelSize.Height))
}

func (r *statusBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *statusBadgeRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.dot.FillColor = th.Color(StatusColor(r.widget.action.Status), variant)
	r.dot.Refresh()

	r.label.Text = r.widget.action.StatusText()
	r.label.Color = th.Color(theme.ColorNameForeground, variant)
	r.label.Refresh()
}

// StatusColor returns the theme color name for an action status.
func StatusColor(status models.ActionStatus) fyne.ThemeColorName {
	switch status {
	case models.StatusPending:
		return appTheme.ColorNameStatusPending
	case models.StatusRendered:
		return appTheme.ColorNameStatusRendered
	case models.StatusAlertShown:
		return appTheme.ColorNameStatusAlert
	case models.StatusDiscarded:
		return appTheme.ColorNameStatusDiscarded
	default:
		return appTheme.ColorNameStatusIdle
	}
}
