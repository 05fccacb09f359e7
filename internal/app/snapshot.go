// internal/app/snapshot.go
package app

import (
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/types"
	"sync/atomic"
)

type TowerView struct {
	ID    types.EntityID `json:"id"`
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Range float64        `json:"range"`
}

type EnemyView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
}

type ProjectileView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BaseView struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
}

type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot — копия состояния после тика, только для чтения.
// Рендереры и отладочный сервер работают со снимком, а не с миром.
type Snapshot struct {
	EpisodeID      string           `json:"episode_id"`
	Time           float64          `json:"time"`
	Score          int              `json:"score"`
	GameOver       bool             `json:"game_over"`
	Difficulty     string           `json:"difficulty"`
	SelectedTower  string           `json:"selected_tower"`
	HeavyAvailable int              `json:"heavy_available"`
	LightTowers    int              `json:"light_towers"`
	HeavyTowers    int              `json:"heavy_towers"`
	Path           []PointView      `json:"path"`
	Towers         []TowerView      `json:"towers"`
	Enemies        []EnemyView      `json:"enemies"`
	Projectiles    []ProjectileView `json:"projectiles"`
	Base           BaseView         `json:"base"`
}

// Snapshot copies the current world. Dead enemies and inactive projectiles
// are left out.
func (g *Game) Snapshot() *Snapshot {
	ecs := g.ECS
	state := ecs.GameState
	heavy, _ := defs.Tower(defs.TowerHeavy)

	s := &Snapshot{
		EpisodeID:     g.EpisodeID.String(),
		Time:          ecs.GameTime,
		Score:         state.Score,
		GameOver:      state.Phase == component.GameOverPhase,
		Difficulty:    state.Difficulty,
		SelectedTower: string(state.SelectedTower),
		LightTowers:   ecs.CountTowers(defs.TowerLight),
		HeavyTowers:   ecs.CountTowers(defs.TowerHeavy),
		Path:          make([]PointView, 0, len(ecs.Path)),
		Towers:        make([]TowerView, 0, len(ecs.Towers)),
		Enemies:       make([]EnemyView, 0, ecs.Enemies.Len()),
		Projectiles:   make([]ProjectileView, 0, len(ecs.Projectiles)),
		Base: BaseView{
			X:         ecs.Base.Position.X,
			Y:         ecs.Base.Position.Y,
			Health:    ecs.Base.Health,
			MaxHealth: ecs.Base.MaxHealth,
		},
	}
	if heavy.Cost > 0 {
		s.HeavyAvailable = state.Score / heavy.Cost
	}
	for _, p := range ecs.Path {
		s.Path = append(s.Path, PointView{X: p.X, Y: p.Y})
	}
	for _, t := range ecs.Towers {
		s.Towers = append(s.Towers, TowerView{ID: t.ID, Type: string(t.Type), X: t.Position.X, Y: t.Position.Y, Range: t.Range})
	}
	ecs.Enemies.Each(func(_ types.Handle, e *component.Enemy) {
		if e.Dead() {
			return
		}
		s.Enemies = append(s.Enemies, EnemyView{X: e.Position.X, Y: e.Position.Y, Health: e.Health})
	})
	for _, p := range ecs.Projectiles {
		if p.Active {
			s.Projectiles = append(s.Projectiles, ProjectileView{X: p.Position.X, Y: p.Position.Y})
		}
	}
	return s
}

// SnapshotStore hands the latest snapshot from the tick loop to readers
// in other goroutines.
type SnapshotStore struct {
	latest atomic.Pointer[Snapshot]
}

func (s *SnapshotStore) Publish(snap *Snapshot) {
	s.latest.Store(snap)
}

// Latest returns the last published snapshot or nil.
func (s *SnapshotStore) Latest() *Snapshot {
	return s.latest.Load()
}

// HeavyNotice returns the ribbon notice for the number of heavy towers
// the score can buy, or "" when none.
func (s *Snapshot) HeavyNotice() string {
	switch {
	case s.HeavyAvailable >= 2:
		return "2 Heavy Towers Available!"
	case s.HeavyAvailable == 1:
		return "Heavy Tower Available!"
	}
	return ""
}
