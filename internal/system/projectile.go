// internal/system/projectile.go
package system

import (
	"log"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewProjectileSystem(ecs *entity.ECS, logger *log.Logger) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, logger: discardIfNil(logger)}
}

// Update moves every projectile, then drops the inactive ones.
func (s *ProjectileSystem) Update(q *event.Queue) {
	for _, proj := range s.ecs.Projectiles {
		s.Move(proj, q)
	}
	s.Sweep()
}

// Move homes proj onto the current position of its target. A target that
// is gone or already dead deactivates the projectile without damage.
func (s *ProjectileSystem) Move(proj *component.Projectile, q *event.Queue) {
	if !proj.Active {
		return
	}
	target, ok := s.ecs.Enemies.Get(proj.Target)
	if !ok || target.Dead() {
		proj.Active = false
		q.Push(event.ProjectileExpired, s.shotData(proj))
		return
	}

	dist := proj.Position.Dist(target.Position)
	if dist <= proj.Speed {
		proj.Position = target.Position
		s.hitTarget(proj, target, q)
		return
	}
	proj.Position = proj.Position.StepTowards(target.Position, proj.Speed)
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy, q *event.Queue) {
	if !proj.Active {
		return
	}
	proj.Active = false
	q.Push(event.ProjectileHit, s.shotData(proj))
	ApplyDamage(target, proj.Target, proj.Damage, q)
}

// Sweep removes inactive projectiles, keeping the order of the rest.
func (s *ProjectileSystem) Sweep() {
	kept := s.ecs.Projectiles[:0]
	for _, proj := range s.ecs.Projectiles {
		if proj.Active {
			kept = append(kept, proj)
		}
	}
	for i := len(kept); i < len(s.ecs.Projectiles); i++ {
		s.ecs.Projectiles[i] = nil
	}
	s.ecs.Projectiles = kept
}

func (s *ProjectileSystem) shotData(proj *component.Projectile) event.ShotData {
	return event.ShotData{
		TowerID:      proj.TowerID,
		ProjectileID: proj.ID,
		Target:       proj.Target,
		Damage:       proj.Damage,
	}
}
