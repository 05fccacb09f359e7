// internal/app/tower_management.go
package app

import (
	"errors"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/event"
	"ribbon-defense/pkg/vec"
)

// PlaceTower attempts to place the selected tower at (x, y). The cost is
// deducted together with creating the tower; a rejected placement leaves
// score and towers untouched.
func (g *Game) PlaceTower(x, y float64) error {
	state := g.ECS.GameState
	pos := vec.New(x, y)

	if g.IsGameOver() {
		return g.rejectTower(state.SelectedTower, pos, ErrGameOver)
	}
	if !config.PlayableArea.Contains(pos) {
		return g.rejectTower(state.SelectedTower, pos, ErrOutOfBounds)
	}
	def, err := defs.Tower(state.SelectedTower)
	if err != nil {
		return g.rejectTower(state.SelectedTower, pos, err)
	}
	if state.Score < def.Cost {
		return g.rejectTower(state.SelectedTower, pos, ErrInsufficientScore)
	}

	state.Score -= def.Cost
	tower := component.NewTower(g.ECS.NewEntity(), def, pos)
	g.ECS.Towers = append(g.ECS.Towers, tower)

	g.logger.Printf("%s tower placed at (%.0f, %.0f). Current score: %d", def.Type, x, y, state.Score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:   tower.ID,
		Type: string(def.Type),
		X:    x,
		Y:    y,
	}})
	return nil
}

func (g *Game) rejectTower(t defs.TowerType, pos vec.Vec2, reason error) error {
	g.logger.Printf("Tower placement rejected at (%.0f, %.0f): %v", pos.X, pos.Y, reason)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRejected, Data: event.TowerData{
		Type:   string(t),
		X:      pos.X,
		Y:      pos.Y,
		Reason: reason.Error(),
	}})
	return reason
}

// SelectTowerType changes the tower placed by the next click. A tower the
// player cannot afford yet cannot be selected.
func (g *Game) SelectTowerType(t defs.TowerType) error {
	def, err := defs.Tower(t)
	if err != nil {
		return err
	}
	state := g.ECS.GameState
	if state.Score < def.Cost {
		return ErrInsufficientScore
	}
	state.SelectedTower = t
	g.logger.Printf("Selected %s tower", t)
	return nil
}

// IsRejection reports whether err is a normal placement refusal rather
// than a programming error.
func IsRejection(err error) bool {
	return errors.Is(err, ErrGameOver) || errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrInsufficientScore)
}
