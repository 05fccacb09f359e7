// component/tower.go
package component

import (
	"math"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/types"
)

// NeverFired is the LastShotTime of a tower that has not shot yet,
// so its first shot is never held back by the cooldown.
var NeverFired = math.Inf(-1)

type Tower struct {
	ID           types.EntityID
	Type         defs.TowerType
	Position     Position
	Range        float64
	FireRate     float64 // минимальный интервал между выстрелами, в секундах
	Damage       int
	Cost         int
	LastShotTime float64
}

// NewTower creates a tower from its definition at pos.
func NewTower(id types.EntityID, def defs.TowerDefinition, pos Position) *Tower {
	return &Tower{
		ID:           id,
		Type:         def.Type,
		Position:     pos,
		Range:        def.Range,
		FireRate:     def.FireRate,
		Damage:       def.Damage,
		Cost:         def.Cost,
		LastShotTime: NeverFired,
	}
}
