package launch

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return f
}

func TestSettingsFromFlags(t *testing.T) {
	settingsFile := writeFile(t, "settings.yaml", "difficulty: Hard\nwaypoints: 3\nseed: 5\n")

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, s config.Settings)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, s config.Settings) {
				if s != config.DefaultSettings() {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name: "file only",
			args: []string{"-config", settingsFile},
			check: func(t *testing.T, s config.Settings) {
				if s.Difficulty != defs.Hard || s.Waypoints != 3 || s.Seed != 5 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name: "flags override the file",
			args: []string{"-config", settingsFile, "-difficulty", "Easy", "-keep-towers", "-sound", "-debug-addr", ":0"},
			check: func(t *testing.T, s config.Settings) {
				if s.Difficulty != defs.Easy || s.Waypoints != 3 {
					t.Errorf("settings = %+v", s)
				}
				if !s.KeepTowersOnReset || !s.Sound || s.DebugAddr != ":0" {
					t.Errorf("bool overrides lost: %+v", s)
				}
			},
		},
		{
			name: "unset flags keep file values",
			args: []string{"-config", settingsFile, "-escalation"},
			check: func(t *testing.T, s config.Settings) {
				if s.Seed != 5 || !s.Escalation {
					t.Errorf("settings = %+v", s)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := parse(t, tt.args...).Settings()
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, s)
		})
	}
}

func TestSettingsErrors(t *testing.T) {
	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml")).Settings(); err == nil {
		t.Error("missing settings file accepted")
	}
	if _, err := parse(t, "-waypoints", "-1").Settings(); err == nil {
		t.Error("negative waypoints accepted")
	}
}

func TestStartAndClose(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 3
	settings.LogFile = filepath.Join(t.TempDir(), "game.log")

	rt, err := Start(context.Background(), settings, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := rt.Session.Tick(); err != nil {
		t.Fatal(err)
	}
	rt.Close()

	data, err := os.ReadFile(settings.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Session started, seed 3") {
		t.Errorf("log file = %q", data)
	}
}

func TestStartWithDifficultyFile(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 3
	settings.DifficultyFile = writeFile(t, "difficulty.yaml", "Medium:\n  initial_spawn_rate: 0.5\n  initial_enemy_speed: 4\n")

	rt, err := Start(context.Background(), settings, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()
	if rt.Session.Difficulty() != defs.Medium {
		t.Errorf("difficulty = %s", rt.Session.Difficulty())
	}

	settings.DifficultyFile = writeFile(t, "broken.yaml", "Medium: [")
	if _, err := Start(context.Background(), settings, io.Discard); err == nil {
		t.Error("broken difficulty file accepted")
	}
}
