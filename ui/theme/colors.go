package theme

import "image/color"

// Dark palette with a blue accent
var (
	ColorBackground     = color.NRGBA{R: 18, G: 20, B: 24, A: 255} // #121418
	ColorSurface        = color.NRGBA{R: 28, G: 31, B: 36, A: 255} // #1C1F24
	ColorSurfaceVariant = color.NRGBA{R: 38, G: 42, B: 48, A: 255} // #262A30
	ColorOverlay        = color.NRGBA{R: 48, G: 52, B: 60, A: 255} // #30343C
	ColorActionBar      = color.NRGBA{R: 22, G: 24, B: 28, A: 255} // #16181C

	ColorPrimary   = color.NRGBA{R: 59, G: 130, B: 246, A: 255} // #3B82F6
	ColorSecondary = color.NRGBA{R: 96, G: 165, B: 250, A: 255} // #60A5FA

	ColorTextPrimary   = color.NRGBA{R: 240, G: 242, B: 245, A: 255} // #F0F2F5
	ColorTextSecondary = color.NRGBA{R: 156, G: 163, B: 175, A: 255} // #9CA3AF
	ColorTextDisabled  = color.NRGBA{R: 90, G: 96, B: 106, A: 255}   // #5A606A

	// Action status
	ColorIdle      = color.NRGBA{R: 117, G: 117, B: 117, A: 255} // #757575
	ColorPending   = color.NRGBA{R: 33, G: 150, B: 243, A: 255}  // #2196F3
	ColorRendered  = color.NRGBA{R: 76, G: 175, B: 80, A: 255}   // #4CAF50
	ColorAlert     = color.NRGBA{R: 244, G: 67, B: 54, A: 255}   // #F44336
	ColorDiscarded = color.NRGBA{R: 255, G: 193, B: 7, A: 255}   // #FFC107

	ColorDivider    = color.NRGBA{R: 50, G: 54, B: 62, A: 255}
	ColorInputBg    = color.NRGBA{R: 32, G: 35, B: 40, A: 255}
	ColorHover      = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	ColorPressed    = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	ColorDisabledBg = color.NRGBA{R: 38, G: 40, B: 44, A: 255}
)

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}

// Lighten moves c towards white by amount, saturating at 255.
func Lighten(c color.NRGBA, amount uint8) color.NRGBA {
	add := func(v uint8) uint8 {
		return uint8(min(255, int(v)+int(amount)))
	}
	return color.NRGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
