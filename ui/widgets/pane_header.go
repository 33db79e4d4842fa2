package widgets

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "text-translator/ui/theme"
)

// PaneHeader titles a text pane and shows its character count on the right.
type PaneHeader struct {
	widget.BaseWidget

	Title string
	count int
}

// NewPaneHeader creates a header with a zero count.
func NewPaneHeader(title string) *PaneHeader {
	h := &PaneHeader{Title: title}
	h.ExtendBaseWidget(h)
	return h
}

// SetText updates the count from the pane content.
func (h *PaneHeader) SetText(s string) {
	h.count = utf8.RuneCountInString(s)
	h.Refresh()
}

// Caption returns the count caption, e.g. "12 chars".
func (h *PaneHeader) Caption() string {
	if h.count == 1 {
		return "1 char"
	}
	return fmt.Sprintf("%d chars", h.count)
}

// CreateRenderer implements fyne.Widget
func (h *PaneHeader) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(h.Title, color.White)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 16

	caption := canvas.NewText("", color.Gray{Y: 150})
	caption.TextSize = 12

	r := &paneHeaderRenderer{title: title, caption: caption, widget: h}
	r.Refresh()
	return r
}

type paneHeaderRenderer struct {
	title   *canvas.Text
	caption *canvas.Text
	widget  *PaneHeader
}

const paneHeaderPadding = float32(6)

func (r *paneHeaderRenderer) Destroy() {}

func (r *paneHeaderRenderer) Layout(size fyne.Size) {
	titleSize := r.title.MinSize()
	r.title.Resize(titleSize)
	r.title.Move(fyne.NewPos(paneHeaderPadding, (size.Height-titleSize.Height)/2))

	captionSize := r.caption.MinSize()
	r.caption.Resize(captionSize)
	r.caption.Move(fyne.NewPos(size.Width-captionSize.Width-paneHeaderPadding, (size.Height-captionSize.Height)/2))
}

func (r *paneHeaderRenderer) MinSize() fyne.Size {
	titleSize := r.title.MinSize()
	captionSize := r.caption.MinSize()
	return fyne.NewSize(
		titleSize.Width+captionSize.Width+paneHeaderPadding*4,
		max(titleSize.Height, captionSize.Height)+paneHeaderPadding*2,
	)
}

func (r *paneHeaderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.title, r.caption}
}

func (r *paneHeaderRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.title.Text = r.widget.Title
	r.title.Color = th.Color(theme.ColorNameForeground, variant)
	r.title.Refresh()

	r.caption.Text = r.widget.Caption()
	r.caption.Color = th.Color(appTheme.ColorNameTextSecondary, variant)
	r.caption.Refresh()
}
