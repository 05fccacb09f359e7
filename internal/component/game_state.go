package component

import "ribbon-defense/internal/defs"

// Phase — фаза эпизода
type Phase int

const (
	PlayingPhase Phase = iota
	GameOverPhase
)

func (p Phase) String() string {
	if p == GameOverPhase {
		return "game_over"
	}
	return "playing"
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase         Phase
	Score         int
	SelectedTower defs.TowerType
	Difficulty    string
}
