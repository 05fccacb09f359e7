// cmd/tdterm/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os/signal"
	"ribbon-defense/internal/launch"
	"ribbon-defense/internal/tui"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

const defaultLogFile = "ribbon-defense-term.log"

func main() {
	flags := launch.RegisterFlags(flag.CommandLine)
	flag.Parse()

	settings, err := flags.Settings()
	if err != nil {
		log.Fatal(err)
	}
	// Экран занят сеткой, журнал пишем только в файл.
	if settings.LogFile == "" {
		settings.LogFile = defaultLogFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := launch.Start(ctx, settings, io.Discard)
	if err != nil {
		log.Fatal(err)
	}
	defer rt.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	if err := tui.Run(ctx, screen, rt.Session, rt.Logger); err != nil {
		rt.Logger.Printf("Terminal game stopped: %v", err)
	}
}
