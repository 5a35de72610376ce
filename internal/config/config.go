// Package config provides YAML-based board preset loading for tui-tiles.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/selection"
)

// Config is the top-level configuration file.
type Config struct {
	DefaultPreset string   `yaml:"default_preset"`
	Presets       []Preset `yaml:"presets"`
}

// Preset is a named board configuration.
type Preset struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Size     int    `yaml:"size"`
	MaxTiles int    `yaml:"max_tiles"`
}

// Board converts the preset into an engine configuration.
func (p Preset) Board() selection.Config {
	return selection.Config{Size: p.Size, MaxTiles: p.MaxTiles}
}

// Overrides holds command-line values that replace preset fields.
// Zero values leave the preset untouched.
type Overrides struct {
	Size     int
	MaxTiles int
}

// Validate checks preset ids and board dimensions.
func (c Config) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("config: no presets defined")
	}

	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("config: preset #%d has no id", i+1)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if err := p.Board().Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	if c.DefaultPreset != "" && !seen[c.DefaultPreset] {
		return fmt.Errorf("config: default preset %q is not defined", c.DefaultPreset)
	}
	return nil
}

// Preset returns the preset with the given id. An empty id selects the
// default preset, or the first one if no default is set.
func (c Config) Preset(id string) (Preset, error) {
	if id == "" {
		id = c.DefaultPreset
	}
	if id == "" && len(c.Presets) > 0 {
		return c.Presets[0], nil
	}

	for _, p := range c.Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: unknown preset %q", id)
}

// Resolve picks a preset and applies overrides, returning a validated
// engine configuration.
func (c Config) Resolve(id string, o Overrides) (Preset, error) {
	p, err := c.Preset(id)
	if err != nil {
		return Preset{}, err
	}

	if o.Size != 0 {
		p.Size = o.Size
	}
	if o.MaxTiles != 0 {
		p.MaxTiles = o.MaxTiles
	}

	if err := p.Board().Validate(); err != nil {
		return Preset{}, fmt.Errorf("config: preset %q: %w", p.ID, err)
	}
	return p, nil
}
