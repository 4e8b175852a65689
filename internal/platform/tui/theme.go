package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/looper/internal/core"
)

// Theme contains the configurable visual styles of the TUI.
type Theme struct {
	Name string

	// Palette maps screen cell colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// HUD styles
	HUDControls lipgloss.Style

	// Menu and level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Scoreboard styles
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Border        lipgloss.Color
}

func defaultPalette() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Palette: defaultPalette(),

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableHeader:   lipgloss.NewStyle().Bold(true),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Border:        lipgloss.Color("240"),
	}
}

// NeonTheme returns a high-saturation theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette[core.ColorNetwork] = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	theme.Palette[core.ColorClosed] = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.Palette[core.ColorCursor] = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true)
	theme.Palette[core.ColorSolved] = lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme. Solved boards stay
// distinguishable through bold text.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	for c := range theme.Palette {
		theme.Palette[c] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	}
	theme.Palette[core.ColorIdle] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Palette[core.ColorCursor] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Reverse(true)
	theme.Palette[core.ColorSolved] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

// ThemeNames lists the themes accepted by ThemeByName.
func ThemeNames() []string {
	return []string{"default", "neon", "mono"}
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
}

// Global theme (can be changed at startup)
var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
