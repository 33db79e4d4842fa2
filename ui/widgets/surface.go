package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Surface is a background rectangle that follows a theme color, so it
// repaints when the theme changes.
type Surface struct {
	widget.BaseWidget

	ColorName    fyne.ThemeColorName
	CornerRadius float32
}

// NewSurface creates a square-cornered surface.
func NewSurface(colorName fyne.ThemeColorName) *Surface {
	s := &Surface{ColorName: colorName}
	s.ExtendBaseWidget(s)
	return s
}

// NewCard creates a surface with rounded corners.
func NewCard(colorName fyne.ThemeColorName, radius float32) *Surface {
	s := &Surface{ColorName: colorName, CornerRadius: radius}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	r := &surfaceRenderer{rect: canvas.NewRectangle(nil), widget: s}
	r.Refresh()
	return r
}

type surfaceRenderer struct {
	rect   *canvas.Rectangle
	widget *Surface
}

func (r *surfaceRenderer) Destroy() {}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

func (r *surfaceRenderer) Refresh() {
	settings := fyne.CurrentApp().Settings()
	r.rect.FillColor = settings.Theme().Color(r.widget.ColorName, settings.ThemeVariant())
	r.rect.CornerRadius = r.widget.CornerRadius
	r.rect.Refresh()
}
