package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mazeviz/internal/render"
)

const (
	DefaultTheme           = "green"
	DefaultTickMillis      = 10
	DefaultThickness       = 4
	DefaultTileSize        = 32
	DefaultTUITileSize     = 8
	DefaultMargin          = 2
	DefaultFPS             = 60
	DefaultPortalInner     = 7
	DefaultPortalOuter     = 10
	DefaultPortalClearance = 12
)

// Config holds the viewer settings. GUI sizes are in window pixels,
// TUI sizes in Braille sub-pixels.
type Config struct {
	Theme           string `yaml:"theme"`
	TickMillis      int    `yaml:"tick_ms"`
	Thickness       int    `yaml:"thickness"`
	TileSize        int    `yaml:"tile_size"`
	TUITileSize     int    `yaml:"tui_tile_size"`
	Margin          int    `yaml:"margin"`
	FPS             int    `yaml:"fps"`
	PortalInner     int    `yaml:"portal_inner"`
	PortalOuter     int    `yaml:"portal_outer"`
	PortalClearance int    `yaml:"portal_clearance"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:           DefaultTheme,
		TickMillis:      DefaultTickMillis,
		Thickness:       DefaultThickness,
		TileSize:        DefaultTileSize,
		TUITileSize:     DefaultTUITileSize,
		Margin:          DefaultMargin,
		FPS:             DefaultFPS,
		PortalInner:     DefaultPortalInner,
		PortalOuter:     DefaultPortalOuter,
		PortalClearance: DefaultPortalClearance,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TickInterval returns the minimum spacing between animation steps.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Layout builds the GUI pixel layout from the config.
func (c *Config) Layout() render.Layout {
	return render.Layout{
		Margin:          c.Margin,
		TileSize:        c.TileSize,
		Thickness:       c.Thickness,
		PortalInner:     c.PortalInner,
		PortalOuter:     c.PortalOuter,
		PortalClearance: c.PortalClearance,
	}
}

// TUILayout builds the terminal sub-pixel layout. Portal geometry is
// scaled down with the tile size so the rings still fit inside a cell.
func (c *Config) TUILayout() render.Layout {
	scale := c.TileSize / c.TUITileSize
	if scale < 1 {
		scale = 1
	}
	return render.Layout{
		Margin:          c.Margin,
		TileSize:        c.TUITileSize,
		Thickness:       1,
		PortalInner:     maxInt(1, c.PortalInner/scale),
		PortalOuter:     maxInt(2, c.PortalOuter/scale),
		PortalClearance: maxInt(2, c.PortalClearance/scale),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
