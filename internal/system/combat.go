package system

import (
	"log"
	"math"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewCombatSystem(ecs *entity.ECS, logger *log.Logger) *CombatSystem {
	return &CombatSystem{ecs: ecs, logger: discardIfNil(logger)}
}

// Update lets every tower try to fire, in placement order. Damage is
// carried by projectiles, so one tower's shot never removes a target
// from another tower during the same tick.
func (s *CombatSystem) Update(currentTime float64, q *event.Queue) {
	for _, tower := range s.ecs.Towers {
		s.Shoot(tower, currentTime, q)
	}
}

// DetectEnemies returns every live enemy within the tower's range and the
// closest one. On equal distance the enemy met first wins.
func DetectEnemies(tower *component.Tower, enemies *entity.Arena[component.Enemy]) (inRange []types.Handle, closest types.Handle, found bool) {
	minDistance := math.Inf(1)
	enemies.Each(func(h types.Handle, e *component.Enemy) {
		if e.Dead() {
			return
		}
		distance := tower.Position.Dist(e.Position)
		if distance > tower.Range {
			return
		}
		inRange = append(inRange, h)
		if distance < minDistance {
			minDistance = distance
			closest = h
			found = true
		}
	})
	return inRange, closest, found
}

// Shoot fires one projectile at the closest enemy in range once the
// cooldown has elapsed. With no target the cooldown is left untouched,
// so the tower fires as soon as an enemy walks in.
func (s *CombatSystem) Shoot(tower *component.Tower, currentTime float64, q *event.Queue) bool {
	if currentTime-tower.LastShotTime < tower.FireRate {
		return false
	}
	_, target, found := DetectEnemies(tower, s.ecs.Enemies)
	if !found {
		return false
	}

	proj := s.createProjectile(tower, target)
	tower.LastShotTime = currentTime
	q.Push(event.ShotFired, event.ShotData{
		TowerID:      tower.ID,
		ProjectileID: proj.ID,
		Target:       target,
		Damage:       proj.Damage,
	})
	return true
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target types.Handle) *component.Projectile {
	proj := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		TowerID:  tower.ID,
		Position: tower.Position,
		Target:   target,
		Speed:    config.ProjectileSpeed,
		Damage:   tower.Damage,
		Active:   true,
	}
	s.ecs.Projectiles = append(s.ecs.Projectiles, proj)
	return proj
}
