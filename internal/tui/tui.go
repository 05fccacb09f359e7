package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/interfaces"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by HandleKey when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// Terminal runs the game in a character grid.
type Terminal struct {
	ctrl     interfaces.Controller
	renderer *Renderer
	logger   *log.Logger
	col, row int
}

func NewTerminal(ctrl interfaces.Controller, canvas Canvas, logger *log.Logger) *Terminal {
	t := &Terminal{ctrl: ctrl, renderer: NewRenderer(canvas), logger: logger}
	grid := t.renderer.Grid()
	t.col, t.row = grid.Cols/2, grid.Rows/2
	return t
}

// Cursor returns the cursor cell inside the field.
func (t *Terminal) Cursor() (col, row int) {
	return t.col, t.row
}

// HandleKey applies one key press. It returns ErrQuit on q / Esc and any
// fatal error from the simulation.
func (t *Terminal) HandleKey(key tcell.Key, ch rune) error {
	grid := t.renderer.Grid()
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyUp:
		t.row = clamp(t.row-1, 0, grid.Rows-1)
	case tcell.KeyDown:
		t.row = clamp(t.row+1, 0, grid.Rows-1)
	case tcell.KeyLeft:
		t.col = clamp(t.col-1, 0, grid.Cols-1)
	case tcell.KeyRight:
		t.col = clamp(t.col+1, 0, grid.Cols-1)
	case tcell.KeyEnter:
		return t.place(grid)
	case tcell.KeyRune:
		return t.handleRune(grid, ch)
	}
	return nil
}

func (t *Terminal) handleRune(grid Grid, ch rune) error {
	switch ch {
	case 'q':
		return ErrQuit
	case ' ':
		return t.place(grid)
	case '1':
		t.selectTower(defs.TowerLight)
	case '2':
		t.selectTower(defs.TowerHeavy)
	case '[':
		return t.shiftDifficulty(-1)
	case ']':
		return t.shiftDifficulty(1)
	case 'r':
		return t.ctrl.Restart()
	}
	return nil
}

// place builds the selected tower under the cursor. A refused placement is
// normal play and already logged by the game; anything else is returned.
func (t *Terminal) place(grid Grid) error {
	x, y := grid.ToWorld(t.col, t.row)
	if err := t.ctrl.PlaceTower(x, y); err != nil && !app.IsRejection(err) {
		return fmt.Errorf("place tower: %w", err)
	}
	return nil
}

func (t *Terminal) selectTower(tt defs.TowerType) {
	if err := t.ctrl.SelectTowerType(tt); err != nil {
		t.logger.Printf("Cannot select %s tower: %v", tt, err)
	}
}

func (t *Terminal) shiftDifficulty(delta int) error {
	level := defs.LevelForSlider(defs.SliderForLevel(t.ctrl.Difficulty()) + delta)
	return t.ctrl.SetDifficulty(level)
}

// Draw renders the latest snapshot.
func (t *Terminal) Draw() {
	snap := t.ctrl.Snapshot()
	if snap == nil {
		return
	}
	t.renderer.Draw(snap, t.col, t.row, t.ctrl.Difficulty())
}

// Run drives the simulation at config.FPS until ctx ends or the player quits.
func Run(ctx context.Context, screen tcell.Screen, ctrl interfaces.Controller, logger *log.Logger) error {
	term := NewTerminal(ctrl, screen, logger)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go forwardEvents(ctx, screen.PollEvent, events)

	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if err := term.HandleKey(ev.Key(), ev.Rune()); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := ctrl.Tick(); err != nil {
				return err
			}
			term.Draw()
			screen.Show()
		}
	}
}

// forwardEvents copies events from poll into out until poll returns nil
// (the screen was finalized) or ctx is done.
func forwardEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
