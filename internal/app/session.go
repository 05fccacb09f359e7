// internal/app/session.go
package app

import (
	"fmt"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/utils"
	"ribbon-defense/pkg/waypath"
)

// Session drives a Game from a frontend: it owns the clock, the path
// generator and the difficulty picked on the slider, and publishes a
// snapshot after every tick and every input.
type Session struct {
	Game  *Game
	Store *SnapshotStore

	prng  *utils.PRNGService
	clock *TickClock
	level string
	path  waypath.Path
}

func NewSession(opts Options) (*Session, error) {
	prng := utils.NewPRNGService(opts.Settings.Seed)
	path := prng.NewPath(opts.Settings.Waypoints)
	game, err := NewGame(path, opts)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Game:  game,
		Store: &SnapshotStore{},
		prng:  prng,
		clock: NewTickClock(config.FPS),
		level: game.Difficulty(),
		path:  path,
	}
	game.Logger().Printf("Session started, seed %d", prng.Seed())
	s.publish()
	return s, nil
}

// Tick runs one simulation step at the current clock time and advances
// the clock.
func (s *Session) Tick() error {
	if err := s.Game.Update(s.clock.Now(), s.level); err != nil {
		return err
	}
	s.clock.Tick()
	s.publish()
	return nil
}

func (s *Session) PlaceTower(x, y float64) error {
	defer s.publish()
	return s.Game.PlaceTower(x, y)
}

func (s *Session) SelectTowerType(t defs.TowerType) error {
	defer s.publish()
	return s.Game.SelectTowerType(t)
}

// SetDifficulty picks the level used from the next tick on.
func (s *Session) SetDifficulty(level string) error {
	if err := s.Game.DifficultySystem.Validate(level); err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	s.level = level
	return nil
}

// Difficulty returns the level picked for the next tick.
func (s *Session) Difficulty() string {
	return s.level
}

// Restart resets the game on the same path and restarts the clock.
func (s *Session) Restart() error {
	if err := s.Game.Reset(s.path); err != nil {
		return err
	}
	s.clock.Reset()
	s.publish()
	return nil
}

func (s *Session) Snapshot() *Snapshot {
	return s.Store.Latest()
}

func (s *Session) publish() {
	s.Store.Publish(s.Game.Snapshot())
}
