package config

// Presets are named tuning bundles for the animation and line style.
var Presets = map[string]*Config{
	"smooth": {
		Theme: "green", TickMillis: 10, Thickness: 4,
		TileSize: 32, TUITileSize: 8, Margin: 2, FPS: 60,
		PortalInner: 7, PortalOuter: 10, PortalClearance: 12,
	},
	"fast": {
		Theme: "green", TickMillis: 2, Thickness: 4,
		TileSize: 32, TUITileSize: 8, Margin: 2, FPS: 120,
		PortalInner: 7, PortalOuter: 10, PortalClearance: 12,
	},
	"slow": {
		Theme: "green", TickMillis: 50, Thickness: 4,
		TileSize: 32, TUITileSize: 8, Margin: 2, FPS: 30,
		PortalInner: 7, PortalOuter: 10, PortalClearance: 12,
	},
	"fine": {
		Theme: "mono", TickMillis: 10, Thickness: 1,
		TileSize: 32, TUITileSize: 8, Margin: 2, FPS: 60,
		PortalInner: 7, PortalOuter: 10, PortalClearance: 12,
	},
	"chunky": {
		Theme: "rainbow", TickMillis: 20, Thickness: 6,
		TileSize: 48, TUITileSize: 12, Margin: 4, FPS: 60,
		PortalInner: 10, PortalOuter: 14, PortalClearance: 16,
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns all preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
