package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom theme color names
const (
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNameActionBar      fyne.ThemeColorName = "actionBar"
	ColorNameTextSecondary  fyne.ThemeColorName = "textSecondary"

	// Action status colors
	ColorNameStatusIdle      fyne.ThemeColorName = "statusIdle"
	ColorNameStatusPending   fyne.ThemeColorName = "statusPending"
	ColorNameStatusRendered  fyne.ThemeColorName = "statusRendered"
	ColorNameStatusAlert     fyne.ThemeColorName = "statusAlert"
	ColorNameStatusDiscarded fyne.ThemeColorName = "statusDiscarded"
)

// Custom size names
const (
	SizeNameActionBarHeight fyne.ThemeSizeName = "actionBarHeight"
	SizeNameCardRadius      fyne.ThemeSizeName = "cardRadius"
)

// TranslatorTheme is the dark theme of the translator window.
type TranslatorTheme struct{}

var _ fyne.Theme = (*TranslatorTheme)(nil)

// Color returns the color for the specified name
func (t *TranslatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorTextPrimary
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return ColorPrimary
	case theme.ColorNameHyperlink:
		return ColorSecondary

	case theme.ColorNameInputBackground:
		return ColorInputBg
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorDivider
	case theme.ColorNamePlaceHolder:
		return ColorTextSecondary
	case theme.ColorNameFocus:
		return WithAlpha(ColorPrimary, 180)
	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed

	case theme.ColorNameDisabled:
		return ColorTextDisabled
	case theme.ColorNameDisabledButton:
		return ColorDisabledBg

	case theme.ColorNameError:
		return ColorAlert
	case theme.ColorNameSuccess:
		return ColorRendered
	case theme.ColorNameWarning:
		return ColorDiscarded

	case theme.ColorNameOverlayBackground:
		return ColorOverlay
	case theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return ColorSurface

	case ColorNameSurface:
		return ColorSurface
	case ColorNameSurfaceVariant:
		return ColorSurfaceVariant
	case ColorNameActionBar:
		return ColorActionBar
	case ColorNameTextSecondary:
		return ColorTextSecondary

	case ColorNameStatusIdle:
		return ColorIdle
	case ColorNameStatusPending:
		return ColorPending
	case ColorNameStatusRendered:
		return ColorRendered
	case ColorNameStatusAlert:
		return ColorAlert
	case ColorNameStatusDiscarded:
		return ColorDiscarded

	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *TranslatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *TranslatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name
func (t *TranslatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 6

	case SizeNameActionBarHeight:
		return 72
	case SizeNameCardRadius:
		return 8

	default:
		return theme.DefaultTheme().Size(name)
	}
}
