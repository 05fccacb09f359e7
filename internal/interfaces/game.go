// internal/interfaces/game.go
package interfaces

import (
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/defs"
)

// Controller — то, что фронтенды (ebiten, raylib, терминал) знают о симуляции.
// Ввод идёт через методы, состояние читается только из снимка.
type Controller interface {
	Tick() error
	PlaceTower(x, y float64) error
	SelectTowerType(t defs.TowerType) error
	SetDifficulty(level string) error
	Difficulty() string
	Restart() error
	Snapshot() *app.Snapshot
}

var _ Controller = (*app.Session)(nil)
