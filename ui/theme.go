package ui

import (
	"image/color"

	"CoCTimers/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme is the dark theme used by the application.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color always resolves against the dark variant, with the window
// background and boosted-timer highlight overridden.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return timer.BackgroundColor
	case theme.ColorNameSuccess:
		return timer.BoostedColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}
