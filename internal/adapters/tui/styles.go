package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hambart471/caltrack/internal/config"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles bundles the lipgloss styles derived from the resolved theme.
type styles struct {
	title    lipgloss.Style
	accent   lipgloss.Style
	selected lipgloss.Style
	calories lipgloss.Style
	carbs    lipgloss.Style
	protein  lipgloss.Style
	fat      lipgloss.Style
	over     lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle)),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent)),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color(theme.ColorSelected)),
		calories: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorCalories)),
		carbs:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorCarbs)),
		protein:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorProtein)),
		fat:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorFat)),
		over:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorOver)),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp)),
	}
}
