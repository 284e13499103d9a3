package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is a warm-palette theme sized for the recipe card grid. Fonts,
// icons and unlisted sizes come from the embedded default theme.
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for the key-set notice
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255} // Red for errors and saved hearts
	case theme.ColorNameWarning:
		return color.RGBA{R: 245, G: 158, B: 11, A: 255} // Amber for the API key card
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return color.RGBA{R: 234, G: 88, B: 12, A: 255} // Orange for primary actions
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 194, G: 65, B: 12, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 20, B: 18, A: 255} // Warm dark gray
		}
		return color.RGBA{R: 255, G: 251, B: 245, A: 255} // Cream
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return t.Theme.Color(name, variant)
}

// Size returns theme sizes tuned for dense recipe cards
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInnerPadding:
		return 6 // card buttons
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 17 // detail title
	case theme.SizeNameCaptionText:
		return 11 // diet badges
	case theme.SizeNameInputRadius:
		return 8 // card corners
	case theme.SizeNameSelectionRadius:
		return 4
	case theme.SizeNameScrollBar:
		return 10
	}

	return t.Theme.Size(name)
}
