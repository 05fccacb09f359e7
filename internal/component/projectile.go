// internal/component/projectile.go
package component

import "ribbon-defense/internal/types"

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	ID       types.EntityID
	TowerID  types.EntityID
	Position Position
	Target   types.Handle // не владеющая ссылка на врага
	Speed    float64
	Damage   int
	Active   bool
}
