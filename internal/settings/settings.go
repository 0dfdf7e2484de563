// Package settings loads seed generation run configuration from YAML,
// following the convention of galaxies-burn-rate and dungo (not the
// teacher repository) of driving generator configuration from a plain YAML document
// rather than flags alone.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldSettings is one world's entry in the settings document.
type WorldSettings struct {
	Player string `yaml:"player"`
	Spawn  string `yaml:"spawn"` // "" or "default" means DefaultSpawn
}

// Settings is the run-wide configuration recognized by the seed generation
// core (spec section 6): world count, player names, goal modes, and
// per-world spawn.
type Settings struct {
	Seed       int64           `yaml:"seed"`
	Worlds     []WorldSettings `yaml:"worlds"`
	GoalModes  []string        `yaml:"goalmodes"`
	Pathsets   []string        `yaml:"pathsets"`
	CustomNames map[string]string `yaml:"customNames"`
}

// Load reads and parses a settings document from path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if len(s.Worlds) == 0 {
		return nil, fmt.Errorf("settings file %s: at least one world is required", path)
	}
	return &s, nil
}

// HasGoalMode reports whether name appears in GoalModes, case-sensitively
// (the core only ever checks for "Relics", spec section 6).
func (s *Settings) HasGoalMode(name string) bool {
	for _, g := range s.GoalModes {
		if g == name {
			return true
		}
	}
	return false
}

// HasCustomSpawn reports whether a world's spawn setting names something
// other than the default.
func (w WorldSettings) HasCustomSpawn() bool {
	return w.Spawn != "" && w.Spawn != "default"
}
