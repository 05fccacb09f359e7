package component

import "ribbon-defense/pkg/waypath"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Health      int
	Speed       float64 // пикселей за тик
	Position    Position
	Path        waypath.Path // общий для всех врагов, только чтение
	TargetIndex int          // индекс следующей точки пути, начинается с 1
	Leaked      bool         // дошёл до базы и уже нанёс урон
}

// Dead reports whether the enemy is due for removal on the next sweep.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}
