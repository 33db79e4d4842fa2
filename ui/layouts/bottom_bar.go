package layouts

import (
	"fyne.io/fyne/v2"
)

// BottomBar lays out a content area above a bar. The bar gets at least
// Height and grows to its own minimum height; content takes the rest.
type BottomBar struct {
	Height float32
}

// NewBottomBar creates a layout with a bar of the given height.
func NewBottomBar(height float32) *BottomBar {
	return &BottomBar{Height: height}
}

func (l *BottomBar) barHeight(bar fyne.CanvasObject) float32 {
	return fyne.Max(l.Height, bar.MinSize().Height)
}

// Layout arranges: [0] = content, [1] = bar
func (l *BottomBar) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	content, bar := objects[0], objects[1]

	barHeight := l.barHeight(bar)
	contentHeight := fyne.Max(size.Height-barHeight, 0)

	content.Resize(fyne.NewSize(size.Width, contentHeight))
	content.Move(fyne.NewPos(0, 0))

	bar.Resize(fyne.NewSize(size.Width, barHeight))
	bar.Move(fyne.NewPos(0, contentHeight))
}

// MinSize returns the minimum size
func (l *BottomBar) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, l.Height)
	}
	content, bar := objects[0], objects[1]

	contentMin := content.MinSize()
	barMin := bar.MinSize()
	return fyne.NewSize(
		fyne.Max(contentMin.Width, barMin.Width),
		contentMin.Height+l.barHeight(bar),
	)
}
