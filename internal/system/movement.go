// internal/system/movement.go
package system

import (
	"log"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/types"
)

// MovementSystem ведёт врагов по точкам пути.
type MovementSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewMovementSystem(ecs *entity.ECS, logger *log.Logger) *MovementSystem {
	return &MovementSystem{ecs: ecs, logger: discardIfNil(logger)}
}

// Update moves every live enemy one tick. Dead enemies are skipped: they
// are waiting for the sweep and must not walk into the base.
func (s *MovementSystem) Update(q *event.Queue) {
	s.ecs.Enemies.Each(func(h types.Handle, e *component.Enemy) {
		if e.Dead() {
			return
		}
		s.Move(h, e, q)
	})
}

// Move advances e by up to e.Speed towards its next waypoint.
func (s *MovementSystem) Move(h types.Handle, e *component.Enemy, q *event.Queue) {
	if e.TargetIndex >= len(e.Path) {
		s.leak(h, e, q)
		return
	}

	target := e.Path[e.TargetIndex]
	dist := e.Position.Dist(target)
	if dist <= e.Speed {
		e.Position = target
		e.TargetIndex++
		if e.TargetIndex >= len(e.Path) {
			s.leak(h, e, q)
		}
		return
	}
	e.Position = e.Position.StepTowards(target, e.Speed)
}

// leak marks an enemy that reached the end of the path. Health drops to
// zero right away, so the base is hit at most once per enemy.
func (s *MovementSystem) leak(h types.Handle, e *component.Enemy, q *event.Queue) {
	if e.Leaked {
		return
	}
	e.Leaked = true
	e.Health = 0
	q.Push(event.EnemyLeaked, event.EnemyData{
		Handle: h,
		X:      e.Position.X,
		Y:      e.Position.Y,
		Damage: config.LeakDamage,
	})
	s.logger.Printf("Enemy reached the base at (%.0f, %.0f)", e.Position.X, e.Position.Y)
}
