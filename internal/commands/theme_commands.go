package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/plugin"
)

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api plugin.API, themeAPI ThemeAPI) {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			themeAPI.SetStatusMessage("Current theme: %s", themeAPI.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Theme names may contain spaces
		if themeName == "next" {
			themeName = NextTheme(themeAPI)
		}
		if err := themeAPI.SetTheme(themeName); err != nil {
			themeList := strings.Join(themeAPI.ListThemes(), ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeAPI.GetTheme().Name)
		return nil
	}

	themeListCmdFunc := func(args []string) error {
		themeAPI.SetStatusMessage("Available themes: %s", strings.Join(themeAPI.ListThemes(), ", "))
		return nil
	}

	if err := api.RegisterCommand("theme", themeCmdFunc); err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
	if err := api.RegisterCommand("themes", themeListCmdFunc); err != nil {
		logger.Warnf("Failed to register ':themes' command: %v", err)
	}
}

// NextTheme returns the theme after the active one, wrapping around.
func NextTheme(themeAPI ThemeAPI) string {
	names := themeAPI.ListThemes()
	if len(names) == 0 {
		return ""
	}
	current := themeAPI.GetTheme().Name
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
