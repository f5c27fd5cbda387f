package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for one maze skin. Surfaces read the
// role colors; the pipeline itself only ever deals in Pixel roles.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Margin     lipgloss.Color
	Wall       lipgloss.Color
	Path       lipgloss.Color
	Entry      lipgloss.Color
	Exit       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeGreen = Theme{
		Name:       "green",
		Background: lipgloss.Color("#001100"),
		Margin:     lipgloss.Color("#005500"),
		Wall:       lipgloss.Color("#00cc00"),
		Path:       lipgloss.Color("#ff4444"),
		Entry:      lipgloss.Color("#00ff88"),
		Exit:       lipgloss.Color("#ff88ff"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemePink = Theme{
		Name:       "pink",
		Background: lipgloss.Color("#1a0011"),
		Margin:     lipgloss.Color("#660044"),
		Wall:       lipgloss.Color("#ff66cc"),
		Path:       lipgloss.Color("#ffff00"),
		Entry:      lipgloss.Color("#00ffcc"),
		Exit:       lipgloss.Color("#ff2266"),
		Text:       lipgloss.Color("#ffccee"),
		Muted:      lipgloss.Color("#884466"),
	}

	ThemeRainbow = Theme{
		Name:       "rainbow",
		Background: lipgloss.Color("#0a0a0a"),
		Margin:     lipgloss.Color("#8800ff"),
		Wall:       lipgloss.Color("#00aaff"),
		Path:       lipgloss.Color("#ff0000"),
		Entry:      lipgloss.Color("#00ff00"),
		Exit:       lipgloss.Color("#ffaa00"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Background: lipgloss.Color("#000000"),
		Margin:     lipgloss.Color("#444444"),
		Wall:       lipgloss.Color("#cccccc"),
		Path:       lipgloss.Color("#ffffff"),
		Entry:      lipgloss.Color("#aaaaaa"),
		Exit:       lipgloss.Color("#888888"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#555555"),
	}

	// All available themes, in cycle order.
	Themes = []Theme{
		ThemeGreen,
		ThemePink,
		ThemeRainbow,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme following name in the cycle.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns the list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color resolves a pixel role to the theme's concrete color.
func (t Theme) Color(p Pixel) lipgloss.Color {
	switch p {
	case PixelMargin:
		return t.Margin
	case PixelWall:
		return t.Wall
	case PixelPath:
		return t.Path
	case PixelEntry:
		return t.Entry
	case PixelExit:
		return t.Exit
	default:
		return t.Background
	}
}
