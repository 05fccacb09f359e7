// internal/launch/launch.go
package launch

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/audio"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/debugserver"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/logging"
)

// Flags — общие флаги всех фронтендов. Явно заданный флаг перекрывает
// значение из файла настроек.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	Difficulty string
	Seed       int64
	Waypoints  int
	LogFile    string
	DebugAddr  string
	Sound      bool
	KeepTowers bool
	Escalation bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "YAML settings file")
	fs.StringVar(&f.Difficulty, "difficulty", "", "starting difficulty (Easy, Medium, Hard, Spicy, Hell)")
	fs.Int64Var(&f.Seed, "seed", 0, "path seed, 0 picks one from the clock")
	fs.IntVar(&f.Waypoints, "waypoints", config.DefaultWaypoints, "intermediate waypoints of the enemy path")
	fs.StringVar(&f.LogFile, "log", "", "rotated log file")
	fs.StringVar(&f.DebugAddr, "debug-addr", "", "address of the debug HTTP server, empty disables it")
	fs.BoolVar(&f.Sound, "sound", false, "play sound cues")
	fs.BoolVar(&f.KeepTowers, "keep-towers", false, "keep towers when the game restarts")
	fs.BoolVar(&f.Escalation, "escalation", false, "make every difficulty harder over time")
	return f
}

// Settings loads the settings file, if any, and applies the flags that
// were set on the command line.
func (f *Flags) Settings() (config.Settings, error) {
	s := config.DefaultSettings()
	if f.ConfigPath != "" {
		loaded, err := config.LoadSettings(f.ConfigPath)
		if err != nil {
			return s, err
		}
		s = loaded
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "difficulty":
			s.Difficulty = f.Difficulty
		case "seed":
			s.Seed = f.Seed
		case "waypoints":
			s.Waypoints = f.Waypoints
		case "log":
			s.LogFile = f.LogFile
		case "debug-addr":
			s.DebugAddr = f.DebugAddr
		case "sound":
			s.Sound = f.Sound
		case "keep-towers":
			s.KeepTowersOnReset = f.KeepTowers
		case "escalation":
			s.Escalation = f.Escalation
		}
	})
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Runtime — всё, что живёт рядом с сессией: журнал, звук, отладочный сервер.
type Runtime struct {
	Session    *app.Session
	Dispatcher *event.Dispatcher
	Logger     *log.Logger

	sound   *audio.SoundManager
	logFile io.Closer
	cancel  context.CancelFunc
	done    chan struct{}
}

// Start builds the session and its side services. The log goes to console
// (os.Stderr when nil) and to settings.LogFile when set.
func Start(ctx context.Context, settings config.Settings, console io.Writer) (*Runtime, error) {
	logger, logFile := logging.New(logging.Options{Console: console, File: settings.LogFile})

	table := defs.DefaultDifficulties
	if settings.DifficultyFile != "" {
		loaded, err := defs.LoadDifficultyTable(settings.DifficultyFile)
		if err != nil {
			logFile.Close()
			return nil, err
		}
		table = loaded
		logger.Printf("Loaded difficulty table from %s", settings.DifficultyFile)
	}

	dispatcher := event.NewDispatcher()
	session, err := app.NewSession(app.Options{
		Settings:     settings,
		Difficulties: table,
		Logger:       logger,
		Dispatcher:   dispatcher,
	})
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("start session: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	rt := &Runtime{
		Session:    session,
		Dispatcher: dispatcher,
		Logger:     logger,
		logFile:    logFile,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	if settings.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Printf("Sound disabled: %v", err)
		} else {
			sound.Subscribe(dispatcher)
			rt.sound = sound
		}
	}

	if settings.DebugAddr != "" {
		srv := debugserver.New(settings.DebugAddr, session.Store, logger)
		go func() {
			defer close(rt.done)
			if err := srv.Run(ctx); err != nil {
				logger.Printf("Debug server stopped: %v", err)
			}
		}()
	} else {
		close(rt.done)
	}
	return rt, nil
}

// Close stops the side services and flushes the log file.
func (r *Runtime) Close() {
	r.cancel()
	<-r.done
	if r.sound != nil {
		r.sound.Cleanup()
	}
	r.Logger.Printf("Final score: %d", r.Session.Game.Score())
	r.logFile.Close()
}
