package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDifficultyTableOverridesOneLevel(t *testing.T) {
	table, err := ParseDifficultyTable([]byte(`
Hard:
  initial_spawn_rate: 0.9
  initial_enemy_speed: 7
  score_threshold: 4
  spawn_rate_decrease_percentage: 0.5
  enemy_speed_increase_percentage: 0.5
`))
	if err != nil {
		t.Fatalf("ParseDifficultyTable: %v", err)
	}
	if got := table[Hard].EnemySpeed; got != 7 {
		t.Errorf("Hard speed = %v, want 7", got)
	}
	if got := table[Medium]; got != DefaultDifficulties[Medium] {
		t.Errorf("Medium changed: %+v", got)
	}
	if DefaultDifficulties[Hard].EnemySpeed != 8 {
		t.Error("built-in table was modified")
	}
}

func TestParseDifficultyTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		unknown bool
	}{
		{"unknown level", "Nightmare:\n  initial_spawn_rate: 1\n  initial_enemy_speed: 1\n", true},
		{"zero interval", "Easy:\n  initial_spawn_rate: 0\n  initial_enemy_speed: 1\n", false},
		{"bad pct", "Easy:\n  initial_spawn_rate: 1\n  initial_enemy_speed: 1\n  spawn_rate_decrease_percentage: 1.5\n", false},
		{"not yaml", "::: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDifficultyTable([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrUnknownDifficulty); got != tt.unknown {
				t.Errorf("errors.Is(err, ErrUnknownDifficulty) = %v, want %v (err: %v)", got, tt.unknown, err)
			}
		})
	}
}

func TestLoadDifficultyTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	doc := "Hell:\n  initial_spawn_rate: 0.4\n  initial_enemy_speed: 14\n  score_threshold: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadDifficultyTable(path)
	if err != nil {
		t.Fatalf("LoadDifficultyTable: %v", err)
	}
	if table[Hell].SpawnInterval != 0.4 {
		t.Errorf("Hell interval = %v, want 0.4", table[Hell].SpawnInterval)
	}
	// Fields absent from the file keep their built-in values.
	if table[Hell].SpawnRateDecreasePct != DefaultDifficulties[Hell].SpawnRateDecreasePct {
		t.Errorf("Hell decrease pct = %v, want built-in %v", table[Hell].SpawnRateDecreasePct, DefaultDifficulties[Hell].SpawnRateDecreasePct)
	}

	if _, err := LoadDifficultyTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLookupAndSlider(t *testing.T) {
	if _, err := DefaultDifficulties.Lookup("Nightmare"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Lookup(Nightmare) err = %v", err)
	}
	for v, want := range map[int]string{-1: Easy, 1: Easy, 2: Medium, 3: Hard, 4: Spicy, 5: Hell, 9: Hell} {
		if got := LevelForSlider(v); got != want {
			t.Errorf("LevelForSlider(%d) = %s, want %s", v, got, want)
		}
	}
	if SliderForLevel(Spicy) != 4 || SliderForLevel("x") != 0 {
		t.Error("SliderForLevel mismatch")
	}
}

func TestTowerLibraryCosts(t *testing.T) {
	tests := []struct {
		tower TowerType
		cost  int
	}{
		{TowerLight, 0},
		{TowerHeavy, 10},
	}
	for _, tt := range tests {
		def, err := Tower(tt.tower)
		if err != nil {
			t.Fatal(err)
		}
		if def.Cost != tt.cost {
			t.Errorf("%s cost = %d, want %d", tt.tower, def.Cost, tt.cost)
		}
	}
	if _, err := Tower("Laser"); err == nil {
		t.Error("unknown tower type accepted")
	}
}
