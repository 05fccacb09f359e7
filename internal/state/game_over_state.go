// internal/state/game_over_state.go
package state

import (
	"ribbon-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState рисует замороженное поле и экран конца игры.
// Симуляция в этом состоянии не тикает.
type GameOverState struct {
	stateMachine *StateMachine
	game         *GameState
	screen       *ui.GameOverScreen
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{
		stateMachine: sm,
		game:         game,
		screen:       ui.NewGameOverScreen(),
	}
}

func (s *GameOverState) Enter() {
	s.game.logger.Printf("Game over screen shown, score %d", s.game.ctrl.Snapshot().Score)
}

func (s *GameOverState) Update(deltaTime float64) error {
	action := ui.NoAction
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		action = s.screen.Click(ebiten.CursorPosition())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		action = ui.PlayAgain
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		action = ui.Quit
	}

	switch action {
	case ui.PlayAgain:
		s.game.logger.Println("Play Again button clicked.")
		if err := s.game.ctrl.Restart(); err != nil {
			return err
		}
		s.stateMachine.SetState(s.game)
	case ui.Quit:
		s.game.logger.Println("Quit button clicked.")
		return ebiten.Termination
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	mx, my := ebiten.CursorPosition()
	s.screen.Draw(screen, s.game.face, s.game.ctrl.Snapshot().Score, mx, my)
}

func (s *GameOverState) Exit() {}
