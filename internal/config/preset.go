package config

import (
	"fmt"
	"strings"
)

// Preset is a named rule variant. Scores are kept per preset.
type Preset string

const (
	// PresetClassic keeps the plain rules: only standing still kills,
	// and the speed has no floor.
	PresetClassic Preset = "classic"
	// PresetStrict adds full-body self collision.
	PresetStrict Preset = "strict"
	// PresetSteady floors the speed so the interval stays playable.
	PresetSteady Preset = "steady"
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetClassic, PresetStrict, PresetSteady}

// ParsePreset validates a preset name. An empty name means classic.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetClassic, nil
	}
	p := Preset(strings.ToLower(name))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want classic, strict or steady)", name)
}

// ApplyPreset modifies the config based on a rule preset.
func ApplyPreset(cfg *SnakeConfig, preset Preset) {
	switch preset {
	case PresetStrict:
		cfg.Rules.FullBodyCollision = true
	case PresetSteady:
		// Ten times the decrement keeps the interval at 1000/15ms or more
		// with the default speed settings.
		cfg.Speed.Floor = cfg.Speed.Decrement * 10
	}
}
