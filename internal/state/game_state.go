// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/interfaces"
	"ribbon-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры: ввод, тик симуляции, отрисовка поля и ленты.
type GameState struct {
	sm     *StateMachine
	ctrl   interfaces.Controller
	ribbon *ui.Ribbon
	slider *ui.DifficultySlider
	face   font.Face
	logger *log.Logger
}

func NewGameState(sm *StateMachine, ctrl interfaces.Controller, dispatcher *event.Dispatcher, logger *log.Logger) *GameState {
	return &GameState{
		sm:     sm,
		ctrl:   ctrl,
		ribbon: ui.NewRibbon(dispatcher),
		slider: ui.NewDifficultySlider(ctrl.Difficulty()),
		face:   basicfont.Face7x13,
		logger: logger,
	}
}

func (g *GameState) Enter() {
	g.slider.SetLevel(g.ctrl.Difficulty())
}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.Restart(); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectTower(defs.TowerLight)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectTower(defs.TowerHeavy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && g.slider.Step(-1) {
		if err := g.ctrl.SetDifficulty(g.slider.Level()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && g.slider.Step(1) {
		if err := g.ctrl.SetDifficulty(g.slider.Level()); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.slider.Click(x, y) {
			if err := g.ctrl.SetDifficulty(g.slider.Level()); err != nil {
				return err
			}
		} else if x >= config.PlayableAreaStartX {
			if err := g.placeTower(float64(x), float64(y)); err != nil {
				return err
			}
		}
	}

	if err := g.ctrl.Tick(); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	if g.ctrl.Snapshot().GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
	return nil
}

// placeTower ставит выбранную башню. Отказ в установке — штатная ситуация,
// ядро уже записало причину в лог; остальные ошибки возвращаются.
func (g *GameState) placeTower(x, y float64) error {
	if err := g.ctrl.PlaceTower(x, y); err != nil && !app.IsRejection(err) {
		return fmt.Errorf("place tower: %w", err)
	}
	return nil
}

func (g *GameState) selectTower(t defs.TowerType) {
	if err := g.ctrl.SelectTowerType(t); err != nil {
		g.logger.Printf("Cannot select %s tower: %v", t, err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := g.ctrl.Snapshot()
	mx, my := ebiten.CursorPosition()
	ui.DrawField(screen, snap, mx, my)
	g.ribbon.Draw(screen, g.face, snap)
	g.slider.Draw(screen, g.face)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), config.ScreenWidth-90, 5)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
