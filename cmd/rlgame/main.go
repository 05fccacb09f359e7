// cmd/rlgame/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/launch"
	"ribbon-defense/internal/rlview"

	rl "github.com/gen2brain/raylib-go/raylib"
)

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

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Ribbon Defense")
	defer rl.CloseWindow()

	if err := rlview.NewView(rt.Session, rt.Logger).Run(); err != nil {
		rt.Logger.Printf("Game stopped: %v", err)
	}
}
