// internal/ui/game_over.go
package ui

import (
	"fmt"
	"image/color"
	"ribbon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameOverAction — результат клика на экране конца игры.
type GameOverAction int

const (
	NoAction GameOverAction = iota
	PlayAgain
	Quit
)

// GameOverScreen — затемнение поверх поля с кнопками "Play Again" и "Quit".
type GameOverScreen struct {
	PlayAgainButton *Button
	QuitButton      *Button
}

func NewGameOverScreen() *GameOverScreen {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &GameOverScreen{
		PlayAgainButton: NewButton(cx, cy, 200, 60, "Play Again"),
		QuitButton:      NewButton(cx, cy+100, 200, 60, "Quit"),
	}
}

// Click maps a click to an action.
func (s *GameOverScreen) Click(x, y int) GameOverAction {
	switch {
	case s.PlayAgainButton.Contains(x, y):
		return PlayAgain
	case s.QuitButton.Contains(x, y):
		return Quit
	}
	return NoAction
}

func (s *GameOverScreen) Draw(screen *ebiten.Image, face font.Face, score, mx, my int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, true)

	title := fmt.Sprintf("Game Over - Score %d", score)
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3, config.GameOverColor)

	s.PlayAgainButton.Draw(screen, face, mx, my)
	s.QuitButton.Draw(screen, face, mx, my)
}
