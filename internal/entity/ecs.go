// internal/entity/ecs.go
package entity

import (
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/types"
	"ribbon-defense/pkg/waypath"
)

// ECS — мир одного эпизода. Порядок итерации детерминирован:
// враги — в порядке появления, башни — в порядке постройки,
// снаряды — в порядке выстрелов.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Path        waypath.Path
	Enemies     *Arena[component.Enemy]
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Base        *component.Base
	Spawner     *component.Spawner
	GameState   *component.GameState
}

func NewECS(path waypath.Path) *ECS {
	ecs := &ECS{
		NextID:  1,
		Path:    path,
		Enemies: NewArena[component.Enemy](),
		GameState: &component.GameState{
			Phase:         component.PlayingPhase,
			SelectedTower: defs.TowerLight,
			Difficulty:    defs.DefaultDifficulty,
		},
	}
	ecs.ResetEpisode(path)
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ResetEpisode recreates the spawner, projectiles, enemies and base for
// path. Towers are left alone; the caller decides whether to keep them.
func (ecs *ECS) ResetEpisode(path waypath.Path) {
	ecs.GameTime = 0
	ecs.Path = path
	ecs.Enemies.Clear()
	ecs.Projectiles = nil
	ecs.Spawner = &component.Spawner{
		SpawnInterval: defs.DefaultDifficulties[defs.DefaultDifficulty].SpawnInterval,
		LastSpawnTime: component.NeverSpawned,
		EnemyHealth:   config.EnemyHealth,
		EnemySpeed:    config.EnemySpeed,
	}
	ecs.Base = &component.Base{
		Health:    config.BaseMaxHealth,
		MaxHealth: config.BaseMaxHealth,
		Position:  path.End(),
	}
}

// ClearTowers removes every placed tower.
func (ecs *ECS) ClearTowers() {
	ecs.Towers = nil
}

// CountTowers returns how many towers of type t are placed.
func (ecs *ECS) CountTowers(t defs.TowerType) int {
	n := 0
	for _, tower := range ecs.Towers {
		if tower.Type == t {
			n++
		}
	}
	return n
}
