package system

import (
	"log"
	"math"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/types"
)

// DifficultyParams — параметры, которые применяются к генератору и врагам.
type DifficultyParams struct {
	SpawnInterval float64
	EnemySpeed    float64
}

// ScaledParams returns the parameters of cfg at the given score. Without
// escalation these are the table values. With escalation every
// ScoreThreshold points shortens the spawn interval and speeds enemies up,
// compounding, bounded by MinSpawnInterval and MaxEnemySpeed.
func ScaledParams(cfg defs.DifficultyConfig, score int, escalation bool) DifficultyParams {
	p := DifficultyParams{SpawnInterval: cfg.SpawnInterval, EnemySpeed: cfg.EnemySpeed}
	if !escalation || cfg.ScoreThreshold <= 0 || score < cfg.ScoreThreshold {
		return p
	}
	steps := float64(score / cfg.ScoreThreshold)
	p.SpawnInterval = math.Max(config.MinSpawnInterval, p.SpawnInterval*math.Pow(1-cfg.SpawnRateDecreasePct, steps))
	p.EnemySpeed = math.Min(config.MaxEnemySpeed, p.EnemySpeed*math.Pow(1+cfg.EnemySpeedIncreasePct, steps))
	return p
}

// DifficultySystem переводит название уровня в параметры симуляции.
type DifficultySystem struct {
	ecs        *entity.ECS
	table      defs.DifficultyTable
	escalation bool
	logger     *log.Logger
}

func NewDifficultySystem(ecs *entity.ECS, table defs.DifficultyTable, escalation bool, logger *log.Logger) *DifficultySystem {
	if table == nil {
		table = defs.DefaultDifficulties
	}
	return &DifficultySystem{ecs: ecs, table: table, escalation: escalation, logger: discardIfNil(logger)}
}

// Apply looks level up and writes its parameters into the spawner and every
// enemy. An unknown level returns an error and changes nothing.
func (s *DifficultySystem) Apply(level string, q *event.Queue) (DifficultyParams, error) {
	cfg, err := s.table.Lookup(level)
	if err != nil {
		return DifficultyParams{}, err
	}

	state := s.ecs.GameState
	params := ScaledParams(cfg, state.Score, s.escalation)
	if state.Difficulty != level {
		s.logger.Printf("Difficulty changed from %s to %s", state.Difficulty, level)
		q.Push(event.DifficultyChanged, event.DifficultyData{
			From:          state.Difficulty,
			To:            level,
			SpawnInterval: params.SpawnInterval,
			EnemySpeed:    params.EnemySpeed,
		})
		state.Difficulty = level
	}

	s.ecs.Spawner.SpawnInterval = params.SpawnInterval
	s.ecs.Spawner.EnemySpeed = params.EnemySpeed
	s.ecs.Enemies.Each(func(_ types.Handle, e *component.Enemy) {
		e.Speed = params.EnemySpeed
	})
	return params, nil
}

// Validate reports whether level exists in the table.
func (s *DifficultySystem) Validate(level string) error {
	_, err := s.table.Lookup(level)
	return err
}
