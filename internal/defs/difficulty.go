// internal/defs/difficulty.go
package defs

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned for a difficulty name missing from the table.
// It is a configuration error, never a runtime condition.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

const (
	Easy   = "Easy"
	Medium = "Medium"
	Hard   = "Hard"
	Spicy  = "Spicy"
	Hell   = "Hell"

	DefaultDifficulty = Medium
)

// DifficultyLevels lists the levels in slider order, 1 = Easy … 5 = Hell.
var DifficultyLevels = []string{Easy, Medium, Hard, Spicy, Hell}

// DifficultyConfig — параметры одного уровня сложности.
type DifficultyConfig struct {
	SpawnInterval         float64 `yaml:"initial_spawn_rate"`  // секунды между появлениями врагов
	EnemySpeed            float64 `yaml:"initial_enemy_speed"` // пикселей за тик
	ScoreThreshold        int     `yaml:"score_threshold"`
	SpawnRateDecreasePct  float64 `yaml:"spawn_rate_decrease_percentage"`
	EnemySpeedIncreasePct float64 `yaml:"enemy_speed_increase_percentage"`
}

// DifficultyTable maps a level name to its parameters.
type DifficultyTable map[string]DifficultyConfig

// DefaultDifficulties is the built-in table.
var DefaultDifficulties = DifficultyTable{
	Easy:   {SpawnInterval: 3, EnemySpeed: 3, ScoreThreshold: 15, SpawnRateDecreasePct: 0.3, EnemySpeedIncreasePct: 0.3},
	Medium: {SpawnInterval: 2, EnemySpeed: 5, ScoreThreshold: 10, SpawnRateDecreasePct: 0.4, EnemySpeedIncreasePct: 0.4},
	Hard:   {SpawnInterval: 1, EnemySpeed: 8, ScoreThreshold: 5, SpawnRateDecreasePct: 0.5, EnemySpeedIncreasePct: 0.5},
	Spicy:  {SpawnInterval: 0.8, EnemySpeed: 10, ScoreThreshold: 3, SpawnRateDecreasePct: 0.6, EnemySpeedIncreasePct: 0.6},
	Hell:   {SpawnInterval: 0.5, EnemySpeed: 12, ScoreThreshold: 1, SpawnRateDecreasePct: 0.7, EnemySpeedIncreasePct: 0.7},
}

// Lookup returns the parameters for name.
func (t DifficultyTable) Lookup(name string) (DifficultyConfig, error) {
	cfg, ok := t[name]
	if !ok {
		return DifficultyConfig{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return cfg, nil
}

// Clone returns a copy that can be modified without touching t.
func (t DifficultyTable) Clone() DifficultyTable {
	out := make(DifficultyTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// LevelForSlider maps a slider position (1..5) to a level name.
// Out-of-range values are clamped.
func LevelForSlider(value int) string {
	if value < 1 {
		value = 1
	}
	if value > len(DifficultyLevels) {
		value = len(DifficultyLevels)
	}
	return DifficultyLevels[value-1]
}

// SliderForLevel is the inverse of LevelForSlider. Unknown names map to 0.
func SliderForLevel(name string) int {
	for i, l := range DifficultyLevels {
		if l == name {
			return i + 1
		}
	}
	return 0
}
