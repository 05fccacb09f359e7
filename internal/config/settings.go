// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"ribbon-defense/internal/defs"

	"gopkg.in/yaml.v3"
)

// Settings — параметры запуска, читаются из YAML.
// Поля, отсутствующие в файле, сохраняют значения DefaultSettings.
type Settings struct {
	Difficulty        string `yaml:"difficulty"`
	Waypoints         int    `yaml:"waypoints"`
	Seed              int64  `yaml:"seed"` // 0 — от текущего времени
	KeepTowersOnReset bool   `yaml:"keep_towers_on_reset"`
	Escalation        bool   `yaml:"escalation"`
	DifficultyFile    string `yaml:"difficulty_file"`
	LogFile           string `yaml:"log_file"`
	DebugAddr         string `yaml:"debug_addr"`
	Sound             bool   `yaml:"sound"`
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty: defs.DefaultDifficulty,
		Waypoints:  DefaultWaypoints,
	}
}

// LoadSettings reads settings from a YAML file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s, nil
}

// Validate checks the fields that do not depend on the difficulty table.
func (s Settings) Validate() error {
	if s.Waypoints < 0 {
		return fmt.Errorf("waypoints must not be negative, got %d", s.Waypoints)
	}
	if s.Difficulty == "" {
		return fmt.Errorf("difficulty must be set")
	}
	return nil
}
