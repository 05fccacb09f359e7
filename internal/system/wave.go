// internal/system/wave.go
package system

import (
	"log"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
)

// SpawnSystem выпускает врагов в начало пути и убирает погибших.
type SpawnSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewSpawnSystem(ecs *entity.ECS, logger *log.Logger) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, logger: discardIfNil(logger)}
}

// Spawn admits one enemy if the spawn interval has elapsed since the last one.
func (s *SpawnSystem) Spawn(currentTime float64, q *event.Queue) bool {
	sp := s.ecs.Spawner
	if currentTime-sp.LastSpawnTime < sp.SpawnInterval {
		return false
	}

	start := s.ecs.Path.Start()
	if !config.PlayableArea.Contains(start) {
		s.logger.Printf("Enemy spawn position (%.0f, %.0f) is outside the playable area", start.X, start.Y)
		return false
	}

	enemy := &component.Enemy{
		Health:      sp.EnemyHealth,
		Speed:       sp.EnemySpeed,
		Position:    start,
		Path:        s.ecs.Path,
		TargetIndex: 1,
	}
	h := s.ecs.Enemies.Insert(enemy)
	sp.LastSpawnTime = currentTime
	q.Push(event.EnemySpawned, event.EnemyData{Handle: h, X: start.X, Y: start.Y})
	return true
}

// Sweep removes every enemy with health <= 0. It is the only place
// enemies leave the registry; their handles go stale here.
func (s *SpawnSystem) Sweep() int {
	removed := s.ecs.Enemies.Sweep(func(e *component.Enemy) bool { return e.Dead() })
	return len(removed)
}
