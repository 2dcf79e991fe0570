package config

import (
	"errors"
	"fmt"
	"sort"
)

// Preset names. Each is a demo variant expressed as configuration over the same landscape core.
const (
	PresetLandscape = "landscape"
	PresetClassic   = "classic"
	PresetSandbox   = "sandbox"
)

// ErrUnknownPreset is returned by ApplyPreset for names not in the preset table.
var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func(*Config){
	// 70x50 world of 4-unit cubes, orbiting camera over the character.
	PresetLandscape: func(c *Config) {},

	// The large 300x300 world the first iterations rendered, viewed from high above.
	PresetClassic: func(c *Config) {
		c.Landscape.Width = 300
		c.Landscape.Depth = 300
		c.Landscape.CubeSize = 100
		c.Landscape.HeightScale = 0.2
		c.Camera.Position = [3]float32{0, 3000, 0}
		c.Camera.Target = [3]float32{0, 0, 0}
		c.Camera.Far = 20000
		c.Camera.Contain = false
		c.Lighting.DirectionalPosition = [3]float32{1, 1, 0.5}
		c.Scene.Background = 0xbfd1e5
		c.Scene.Celestials = false
	},

	// Landscape plus the spinning cube row, seen from a first-person rig.
	PresetSandbox: func(c *Config) {
		c.Camera.Rig = RigFirstPerson
		c.Camera.Position = [3]float32{0, 30, 40}
		c.Scene.SpinningCubes = true
	},
}

// ApplyPreset applies the named preset on top of cfg. Call it on a fresh Default()
// so a preset never inherits another preset's overrides.
func ApplyPreset(cfg *Config, name string) error {
	apply, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	cfg.Preset = name
	apply(cfg)
	return nil
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
