package system

import (
	"log"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/utils"
)

// BaseSystem применяет урон к базе.
type BaseSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewBaseSystem(ecs *entity.ECS, logger *log.Logger) *BaseSystem {
	return &BaseSystem{ecs: ecs, logger: discardIfNil(logger)}
}

// TakeDamage clamps the base health to [0, MaxHealth] and reports the new
// value. BaseDepleted is pushed only on the hit that takes health to zero.
// Negative amounts count as zero: the base is never healed, so zero health
// stays final for the episode.
func (s *BaseSystem) TakeDamage(amount int, q *event.Queue) {
	if amount < 0 {
		amount = 0
	}
	base := s.ecs.Base
	wasAlive := base.Health > 0

	base.Health = utils.ClampInt(base.Health-amount, 0, base.MaxHealth)

	data := event.BaseData{Amount: amount, Health: base.Health, MaxHealth: base.MaxHealth}
	q.Push(event.BaseDamaged, data)
	if wasAlive && base.Health == 0 {
		s.logger.Println("Base health has reached zero. Game over.")
		q.Push(event.BaseDepleted, data)
	}
}

// Depleted reports whether the base has no health left.
func (s *BaseSystem) Depleted() bool {
	return s.ecs.Base.Health <= 0
}
