// internal/defs/towers.go
package defs

import "fmt"

// TowerType — вариант башни.
type TowerType string

const (
	TowerLight TowerType = "Light"
	TowerHeavy TowerType = "Heavy"
)

// TowerDefinition holds the fixed stats of a tower variant.
type TowerDefinition struct {
	Type     TowerType `yaml:"type"`
	Range    float64   `yaml:"range"`
	FireRate float64   `yaml:"fire_rate"` // seconds between shots
	Damage   int       `yaml:"damage"`
	Cost     int       `yaml:"cost"`
}

// TowerLibrary maps every tower variant to its stats.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerLight: {Type: TowerLight, Range: 150, FireRate: 1.0, Damage: 25, Cost: 0},
	TowerHeavy: {Type: TowerHeavy, Range: 200, FireRate: 1.5, Damage: 30, Cost: 10},
}

// Tower returns the definition for t.
func Tower(t TowerType) (TowerDefinition, error) {
	def, ok := TowerLibrary[t]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("unknown tower type %q", t)
	}
	return def, nil
}
