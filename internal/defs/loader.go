// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDifficultyTable reads a YAML difficulty table. Levels and fields
// missing from the file keep their built-in values; unknown level names
// are rejected.
func LoadDifficultyTable(path string) (DifficultyTable, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file: %w", err)
	}
	return ParseDifficultyTable(file)
}

// ParseDifficultyTable decodes a YAML document of the form
//
//	Medium:
//	  initial_spawn_rate: 2
//	  initial_enemy_speed: 5
//	  ...
func ParseDifficultyTable(data []byte) (DifficultyTable, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal difficulty table: %w", err)
	}

	table := DefaultDifficulties.Clone()
	for name, node := range raw {
		cfg, ok := table[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
		}
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode difficulty %s: %w", name, err)
		}
		if err := validateDifficulty(name, cfg); err != nil {
			return nil, err
		}
		table[name] = cfg
	}
	return table, nil
}

func validateDifficulty(name string, cfg DifficultyConfig) error {
	switch {
	case cfg.SpawnInterval <= 0:
		return fmt.Errorf("difficulty %s: initial_spawn_rate must be positive", name)
	case cfg.EnemySpeed <= 0:
		return fmt.Errorf("difficulty %s: initial_enemy_speed must be positive", name)
	case cfg.ScoreThreshold < 0:
		return fmt.Errorf("difficulty %s: score_threshold must not be negative", name)
	case cfg.SpawnRateDecreasePct < 0 || cfg.SpawnRateDecreasePct >= 1:
		return fmt.Errorf("difficulty %s: spawn_rate_decrease_percentage must be in [0,1)", name)
	case cfg.EnemySpeedIncreasePct < 0:
		return fmt.Errorf("difficulty %s: enemy_speed_increase_percentage must not be negative", name)
	}
	return nil
}
