package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "text-translator/ui/theme"
)

// ActionButton is a filled button for the window's main actions.
// A muted button uses the surface color instead of the primary one.
type ActionButton struct {
	widget.BaseWidget

	Text     string
	Icon     fyne.Resource
	Muted    bool
	OnTapped func()

	hovered bool
	pressed bool
}

// NewActionButton creates a primary action button.
func NewActionButton(text string, icon fyne.Resource, onTapped func()) *ActionButton {
	b := &ActionButton{
		Text:     text,
		Icon:     icon,
		OnTapped: onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped handles tap events
func (b *ActionButton) Tapped(_ *fyne.PointEvent) {
	if b.OnTapped == nil {
		return
	}
	b.OnTapped()
}

func (b *ActionButton) MouseIn(_ *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *ActionButton) MouseOut() {
	b.hovered = false
	b.pressed = false
	b.Refresh()
}

func (b *ActionButton) MouseMoved(_ *desktop.MouseEvent) {}

func (b *ActionButton) MouseDown(_ *desktop.MouseEvent) {
	b.pressed = true
	b.Refresh()
}

func (b *ActionButton) MouseUp(_ *desktop.MouseEvent) {
	b.pressed = false
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *ActionButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = 8

	label := canvas.NewText(b.Text, color.White)
	label.TextStyle = fyne.TextStyle{Bold: true}

	var icon *canvas.Image
	if b.Icon != nil {
		icon = canvas.NewImageFromResource(b.Icon)
		icon.FillMode = canvas.ImageFillContain
	}

	r := &actionButtonRenderer{bg: bg, label: label, icon: icon, widget: b}
	r.Refresh()
	return r
}

type actionButtonRenderer struct {
	bg     *canvas.Rectangle
	label  *canvas.Text
	icon   *canvas.Image
	widget *ActionButton
}

const (
	actionIconSize = float32(18)
	actionGap      = float32(8)
)

func (r *actionButtonRenderer) Destroy() {}

func (r *actionButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	labelSize := r.label.MinSize()
	contentWidth := labelSize.Width
	if r.icon != nil {
		contentWidth += actionIconSize + actionGap
	}
	x := max((size.Width-contentWidth)/2, 0)

	if r.icon != nil {
		r.icon.Resize(fyne.NewSize(actionIconSize, actionIconSize))
		r.icon.Move(fyne.NewPos(x, (size.Height-actionIconSize)/2))
		x += actionIconSize + actionGap
	}
	r.label.Resize(labelSize)
	r.label.Move(fyne.NewPos(x, (size.Height-labelSize.Height)/2))
}

func (r *actionButtonRenderer) MinSize() fyne.Size {
	labelSize := r.label.MinSize()
	width := labelSize.Width + 32
	if r.icon != nil {
		width += actionIconSize + actionGap
	}
	return fyne.NewSize(width, max(labelSize.Height+16, 36))
}

func (r *actionButtonRenderer) Objects() []fyne.CanvasObject {
	if r.icon != nil {
		return []fyne.CanvasObject{r.bg, r.icon, r.label}
	}
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *actionButtonRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	base := th.Color(theme.ColorNamePrimary, variant)
	if r.widget.Muted {
		base = th.Color(appTheme.ColorNameSurfaceVariant, variant)
	}

	switch {
	case r.widget.pressed:
		r.bg.FillColor = th.Color(theme.ColorNamePressed, variant)
		r.label.Color = th.Color(theme.ColorNameForeground, variant)
	case r.widget.hovered:
		if nrgba, ok := base.(color.NRGBA); ok {
			r.bg.FillColor = appTheme.Lighten(nrgba, 20)
		} else {
			r.bg.FillColor = base
		}
		r.label.Color = th.Color(theme.ColorNameForeground, variant)
	default:
		r.bg.FillColor = base
		r.label.Color = th.Color(theme.ColorNameForeground, variant)
	}

	r.label.Text = r.widget.Text
	if r.icon != nil && r.widget.Icon != nil {
		r.icon.Resource = r.widget.Icon
		r.icon.Refresh()
	}
	r.bg.Refresh()
	r.label.Refresh()
}
