package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultConfig returns the built-in presets used when no YAML is available.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: "classic",
		Presets: []Preset{
			{ID: "classic", Title: "Classic 4x4", Size: 4, MaxTiles: 4},
			{ID: "wide", Title: "Wide 5x5", Size: 5, MaxTiles: 4},
			{ID: "long", Title: "Long run 6x6", Size: 6, MaxTiles: 5},
			{ID: "mini", Title: "Mini 3x3", Size: 3, MaxTiles: 3},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTilesYAML
}
