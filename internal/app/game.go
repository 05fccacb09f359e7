// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/entity"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/logging"
	"ribbon-defense/internal/system"
	"ribbon-defense/pkg/waypath"

	"github.com/google/uuid"
)

var (
	ErrGameOver          = errors.New("game is over")
	ErrOutOfBounds       = errors.New("position is outside the playable area")
	ErrInsufficientScore = errors.New("not enough score")
)

// Options configures a new Game. Zero values fall back to defaults.
type Options struct {
	Settings     config.Settings
	Difficulties defs.DifficultyTable
	Logger       *log.Logger
	Dispatcher   *event.Dispatcher
}

// Game — ядро симуляции одного окна: владеет миром, системами, счётом и
// сложностью. Все мутации происходят в Update и в обработчиках ввода
// между тиками, из одного потока.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Settings         config.Settings
	EpisodeID        uuid.UUID
	MovementSystem   *system.MovementSystem
	SpawnSystem      *system.SpawnSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	BaseSystem       *system.BaseSystem
	DifficultySystem *system.DifficultySystem

	difficulties defs.DifficultyTable
	baseLogger   *log.Logger
	logger       *log.Logger
	events       event.Queue
}

// NewGame initializes a new game instance on path.
func NewGame(path waypath.Path, opts Options) (*Game, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("path needs at least 2 waypoints, got %d", len(path))
	}
	settings := opts.Settings
	if settings.Difficulty == "" {
		settings.Difficulty = defs.DefaultDifficulty
	}
	table := opts.Difficulties
	if table == nil {
		table = defs.DefaultDifficulties
	}
	if _, err := table.Lookup(settings.Difficulty); err != nil {
		return nil, err
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	baseLogger := opts.Logger
	if baseLogger == nil {
		baseLogger, _ = logging.New(logging.Options{})
	}

	g := &Game{
		ECS:             entity.NewECS(path),
		EventDispatcher: dispatcher,
		Settings:        settings,
		difficulties:    table,
		baseLogger:      baseLogger,
	}
	g.ECS.GameState.Difficulty = settings.Difficulty
	g.startEpisode()
	g.logger.Printf("GameState initialized: %d waypoints, difficulty %s", len(path), settings.Difficulty)
	return g, nil
}

func (g *Game) startEpisode() {
	g.EpisodeID = uuid.New()
	g.logger = logging.ForEpisode(g.baseLogger, g.EpisodeID)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.logger)
	g.SpawnSystem = system.NewSpawnSystem(g.ECS, g.logger)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.logger)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.logger)
	g.BaseSystem = system.NewBaseSystem(g.ECS, g.logger)
	g.DifficultySystem = system.NewDifficultySystem(g.ECS, g.difficulties, g.Settings.Escalation, g.logger)
	g.events.Reset()
}

// Update advances the world by one tick at currentTime (seconds, monotonic)
// using the difficulty named level. Order within a tick is fixed: difficulty,
// spawn, enemy movement and sweep, tower fire, projectile movement and
// damage, base check. After game over the world is frozen and Update does
// nothing. An unknown level aborts the tick before anything moves.
func (g *Game) Update(currentTime float64, level string) error {
	if g.IsGameOver() {
		return nil
	}
	q := &g.events
	q.Reset()

	if _, err := g.DifficultySystem.Apply(level, q); err != nil {
		return fmt.Errorf("apply difficulty: %w", err)
	}
	g.ECS.GameTime = currentTime

	g.SpawnSystem.Spawn(currentTime, q)
	g.MovementSystem.Update(q)
	g.SpawnSystem.Sweep()

	g.CombatSystem.Update(currentTime, q)

	g.ProjectileSystem.Update(q)

	g.fold(q)
	if g.BaseSystem.Depleted() {
		g.setGameOver()
	}

	g.EventDispatcher.Flush(q)
	return nil
}

// fold applies the tick's events to score and base. Events pushed while
// folding (base damage) are folded as well.
func (g *Game) fold(q *event.Queue) {
	for i := 0; i < q.Len(); i++ {
		e := q.At(i)
		switch e.Type {
		case event.EnemyDestroyed:
			g.IncrementScore()
		case event.EnemyLeaked:
			if data, ok := e.Data.(event.EnemyData); ok {
				g.BaseSystem.TakeDamage(data.Damage, q)
			}
		case event.BaseDepleted:
			g.setGameOver()
		}
	}
}

// IncrementScore adds one point. It is called once per destroyed enemy.
func (g *Game) IncrementScore() {
	g.ECS.GameState.Score++
}

func (g *Game) setGameOver() {
	state := g.ECS.GameState
	if state.Phase == component.GameOverPhase {
		return
	}
	state.Phase = component.GameOverPhase
	g.logger.Printf("Base health reached zero. Game over with score %d", state.Score)
}

// Reset starts a new episode on path: fresh spawner, projectiles, base,
// zero score, Light tower selected. Towers survive only when
// Settings.KeepTowersOnReset is set.
func (g *Game) Reset(path waypath.Path) error {
	if len(path) < 2 {
		return fmt.Errorf("path needs at least 2 waypoints, got %d", len(path))
	}
	g.ECS.ResetEpisode(path)
	if g.Settings.KeepTowersOnReset {
		for _, tower := range g.ECS.Towers {
			tower.LastShotTime = component.NeverFired
		}
	} else {
		g.ECS.ClearTowers()
	}

	state := g.ECS.GameState
	state.Score = 0
	state.Phase = component.PlayingPhase
	state.SelectedTower = defs.TowerLight

	g.startEpisode()
	g.logger.Printf("Game state reset, %d towers kept", len(g.ECS.Towers))
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset, Data: event.ResetData{
		EpisodeID: g.EpisodeID.String(),
		MaxHealth: g.ECS.Base.MaxHealth,
	}})
	return nil
}

func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.Phase == component.GameOverPhase
}

func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) SelectedTower() defs.TowerType {
	return g.ECS.GameState.SelectedTower
}

// Base returns a copy of the base.
func (g *Game) Base() component.Base {
	return *g.ECS.Base
}

func (g *Game) Difficulty() string {
	return g.ECS.GameState.Difficulty
}

// Logger returns the logger of the current episode.
func (g *Game) Logger() *log.Logger {
	return g.logger
}
