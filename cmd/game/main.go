// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/launch"
	"ribbon-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten ровно config.FPS раз в секунду, один тик симуляции за вызов.
func (a *AppGame) Update() error {
	return a.stateMachine.Update(1.0 / config.FPS)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flags := launch.RegisterFlags(flag.CommandLine)
	flag.Parse()

	settings, err := flags.Settings()
	if err != nil {
		log.Fatal(err)
	}
	rt, err := launch.Start(context.Background(), settings, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer rt.Close()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, rt.Session, rt.Dispatcher, rt.Logger))
	app := &AppGame{stateMachine: sm}

	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ribbon Defense")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		rt.Logger.Printf("Game stopped: %v", err)
	}
}
