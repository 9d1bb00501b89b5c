package commands

import "github.com/bethropolis/stepsort/internal/theme"

// ThemeAPI is the slice of plugin.API the theme commands need.
type ThemeAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
}
