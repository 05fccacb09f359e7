package app

import (
	"errors"
	"io"
	"log"
	"math"
	"reflect"
	"ribbon-defense/internal/component"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/types"
	"ribbon-defense/pkg/vec"
	"ribbon-defense/pkg/waypath"
	"testing"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

var allEvents = []event.EventType{
	event.EnemySpawned, event.EnemyDestroyed, event.EnemyLeaked,
	event.BaseDamaged, event.BaseDepleted, event.ShotFired,
	event.ProjectileHit, event.ProjectileExpired, event.TowerPlaced,
	event.TowerRejected, event.DifficultyChanged, event.GameReset,
}

// staticTable keeps a single enemy standing still on Medium: it spawns at
// t=0 and the next spawn is far beyond any test.
func staticTable(speed float64) defs.DifficultyTable {
	table := defs.DefaultDifficulties.Clone()
	medium := table[defs.Medium]
	medium.SpawnInterval = 1000
	medium.EnemySpeed = speed
	table[defs.Medium] = medium
	return table
}

func newTestGame(t *testing.T, path waypath.Path, table defs.DifficultyTable, settings config.Settings) (*Game, *eventLog) {
	t.Helper()
	events := &eventLog{}
	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(events, allEvents...)
	g, err := NewGame(path, Options{
		Settings:     settings,
		Difficulties: table,
		Logger:       log.New(io.Discard, "", 0),
		Dispatcher:   dispatcher,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, events
}

func tickTime(i int) float64 {
	return float64(i) / config.FPS
}

func runTicks(t *testing.T, g *Game, from, to int) {
	t.Helper()
	for i := from; i < to; i++ {
		if err := g.Update(tickTime(i), defs.Medium); err != nil {
			t.Fatalf("Update(%d): %v", i, err)
		}
	}
}

func straightPath() waypath.Path {
	return waypath.Path{vec.New(300, 300), vec.New(1100, 300)}
}

func TestNewGameRejectsShortPath(t *testing.T) {
	_, err := NewGame(waypath.Path{vec.New(300, 300)}, Options{Logger: log.New(io.Discard, "", 0)})
	if err == nil {
		t.Fatal("expected error for a one-point path")
	}
}

func TestNewGameRejectsUnknownDifficulty(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Difficulty = "Nightmare"
	_, err := NewGame(straightPath(), Options{Settings: settings, Logger: log.New(io.Discard, "", 0)})
	if !errors.Is(err, defs.ErrUnknownDifficulty) {
		t.Fatalf("err = %v, want ErrUnknownDifficulty", err)
	}
}

// An enemy at speed 2 on a 282.84 long path snaps onto the end on tick
// ceil(282.84/2) = 142, damages the base by 10 that tick and is swept.
func TestEnemyWalksPathAndLeaksOnce(t *testing.T) {
	path := waypath.Path{vec.New(300, 100), vec.New(500, 300)}
	g, events := newTestGame(t, path, staticTable(2), config.DefaultSettings())

	runTicks(t, g, 0, 141)
	if g.ECS.Enemies.Len() != 1 {
		t.Fatalf("enemies after 141 ticks = %d, want 1", g.ECS.Enemies.Len())
	}
	if g.Base().Health != config.BaseMaxHealth {
		t.Fatalf("base health before arrival = %d", g.Base().Health)
	}

	runTicks(t, g, 141, 142)
	if got := g.Base().Health; got != config.BaseMaxHealth-config.LeakDamage {
		t.Fatalf("base health on arrival tick = %d, want %d", got, config.BaseMaxHealth-config.LeakDamage)
	}
	if events.count(event.EnemyLeaked) != 1 {
		t.Fatalf("EnemyLeaked = %d, want 1", events.count(event.EnemyLeaked))
	}
	var leaked event.EnemyData
	for _, e := range events.events {
		if e.Type == event.EnemyLeaked {
			leaked = e.Data.(event.EnemyData)
		}
	}
	if leaked.X != 500 || leaked.Y != 300 {
		t.Errorf("enemy leaked at (%v, %v), want (500, 300)", leaked.X, leaked.Y)
	}

	runTicks(t, g, 142, 300)
	if g.ECS.Enemies.Len() != 0 {
		t.Errorf("leaked enemy not swept: %d left", g.ECS.Enemies.Len())
	}
	if got := g.Base().Health; got != config.BaseMaxHealth-config.LeakDamage {
		t.Errorf("base health after more ticks = %d, leak counted twice", got)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, a leak must not score", g.Score())
	}
}

func TestScoreIncrementsOncePerDestroyedEnemy(t *testing.T) {
	g, events := newTestGame(t, straightPath(), staticTable(0), config.DefaultSettings())
	if err := g.PlaceTower(350, 300); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	// Hits land at t=0.15, 1.15, 2.15 and 3.15; 25 damage each.
	runTicks(t, g, 0, 60)
	if g.Score() != 0 {
		t.Fatalf("score after three hits = %d, want 0", g.Score())
	}
	if events.count(event.ProjectileHit) != 3 {
		t.Fatalf("hits = %d, want 3", events.count(event.ProjectileHit))
	}

	runTicks(t, g, 60, 200)
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if events.count(event.EnemyDestroyed) != 1 {
		t.Errorf("EnemyDestroyed = %d, want 1", events.count(event.EnemyDestroyed))
	}
	if g.ECS.Enemies.Len() != 0 {
		t.Errorf("dead enemy still registered")
	}
}

func TestOverkillIsNotCountedTwice(t *testing.T) {
	g, events := newTestGame(t, straightPath(), staticTable(0), config.DefaultSettings())
	for _, p := range []vec.Vec2{vec.New(350, 300), vec.New(350, 250), vec.New(300, 350)} {
		if err := g.PlaceTower(p.X, p.Y); err != nil {
			t.Fatalf("PlaceTower(%v): %v", p, err)
		}
	}

	runTicks(t, g, 0, 40)
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if events.count(event.EnemyDestroyed) != 1 {
		t.Errorf("EnemyDestroyed = %d, want 1", events.count(event.EnemyDestroyed))
	}
	// Three projectiles were in flight when the enemy died.
	if got := events.count(event.ProjectileExpired); got != 2 {
		t.Errorf("ProjectileExpired = %d, want 2", got)
	}
	if len(g.ECS.Projectiles) != 0 {
		t.Errorf("projectiles left: %d", len(g.ECS.Projectiles))
	}
}

func TestHeavyPlacementSpendsScore(t *testing.T) {
	g, events := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	g.ECS.GameState.Score = 10
	if err := g.SelectTowerType(defs.TowerHeavy); err != nil {
		t.Fatalf("SelectTowerType: %v", err)
	}

	if err := g.PlaceTower(600, 200); err != nil {
		t.Fatalf("first heavy placement: %v", err)
	}
	if g.Score() != 0 || len(g.ECS.Towers) != 1 {
		t.Fatalf("score=%d towers=%d, want 0 and 1", g.Score(), len(g.ECS.Towers))
	}
	if g.ECS.Towers[0].Type != defs.TowerHeavy || g.ECS.Towers[0].Range != 200 {
		t.Errorf("placed tower = %+v", *g.ECS.Towers[0])
	}

	err := g.PlaceTower(700, 200)
	if !errors.Is(err, ErrInsufficientScore) {
		t.Fatalf("second heavy placement err = %v", err)
	}
	if g.Score() != 0 || len(g.ECS.Towers) != 1 {
		t.Errorf("rejected placement changed state: score=%d towers=%d", g.Score(), len(g.ECS.Towers))
	}
	if events.count(event.TowerPlaced) != 1 || events.count(event.TowerRejected) != 1 {
		t.Errorf("placed=%d rejected=%d", events.count(event.TowerPlaced), events.count(event.TowerRejected))
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		x, y  float64
		want  error
	}{
		{"heavy below cost", func(g *Game) {
			g.ECS.GameState.Score = 9
			g.ECS.GameState.SelectedTower = defs.TowerHeavy
		}, 600, 300, ErrInsufficientScore},
		{"inside ribbon", func(*Game) {}, 100, 300, ErrOutOfBounds},
		{"below screen", func(*Game) {}, 600, 601, ErrOutOfBounds},
		{"game over", func(g *Game) { g.ECS.GameState.Phase = component.GameOverPhase }, 600, 300, ErrGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, straightPath(), nil, config.DefaultSettings())
			tt.setup(g)
			score := g.Score()
			err := g.PlaceTower(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !IsRejection(err) {
				t.Errorf("IsRejection(%v) = false", err)
			}
			if g.Score() != score || len(g.ECS.Towers) != 0 {
				t.Errorf("state changed: score=%d towers=%d", g.Score(), len(g.ECS.Towers))
			}
		})
	}
}

func TestLightTowerOnPlayableEdge(t *testing.T) {
	g, _ := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	if err := g.PlaceTower(config.PlayableArea.MinX, 0); err != nil {
		t.Fatalf("edge placement: %v", err)
	}
	if g.Score() != 0 {
		t.Errorf("light tower cost score: %d", g.Score())
	}
}

func TestSelectTowerType(t *testing.T) {
	g, _ := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	if err := g.SelectTowerType(defs.TowerHeavy); !errors.Is(err, ErrInsufficientScore) {
		t.Fatalf("heavy selection at score 0: %v", err)
	}
	if g.SelectedTower() != defs.TowerLight {
		t.Fatalf("selection changed to %s", g.SelectedTower())
	}
	if err := g.SelectTowerType("Laser"); err == nil {
		t.Error("unknown tower type accepted")
	}
	g.ECS.GameState.Score = 10
	if err := g.SelectTowerType(defs.TowerHeavy); err != nil {
		t.Fatalf("heavy selection at score 10: %v", err)
	}
	if err := g.SelectTowerType(defs.TowerLight); err != nil || g.SelectedTower() != defs.TowerLight {
		t.Errorf("back to light: %v, %s", err, g.SelectedTower())
	}
}

func TestUnknownDifficultyAbortsTick(t *testing.T) {
	g, _ := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	err := g.Update(0, "Nightmare")
	if !errors.Is(err, defs.ErrUnknownDifficulty) {
		t.Fatalf("err = %v, want ErrUnknownDifficulty", err)
	}
	if g.ECS.Enemies.Len() != 0 {
		t.Errorf("enemy spawned during an aborted tick")
	}
	if g.Difficulty() != defs.Medium {
		t.Errorf("difficulty changed to %q", g.Difficulty())
	}
}

func TestDifficultyAppliesToSpawnerAndEnemies(t *testing.T) {
	g, events := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	runTicks(t, g, 0, 1)
	if err := g.Update(tickTime(1), defs.Hard); err != nil {
		t.Fatal(err)
	}
	hard := defs.DefaultDifficulties[defs.Hard]
	if g.ECS.Spawner.SpawnInterval != hard.SpawnInterval || g.ECS.Spawner.EnemySpeed != hard.EnemySpeed {
		t.Errorf("spawner = %+v", *g.ECS.Spawner)
	}
	g.ECS.Enemies.Each(func(_ types.Handle, e *component.Enemy) {
		if e.Speed != hard.EnemySpeed {
			t.Errorf("enemy speed = %v, want %v", e.Speed, hard.EnemySpeed)
		}
	})
	if g.Difficulty() != defs.Hard || events.count(event.DifficultyChanged) != 1 {
		t.Errorf("difficulty=%s changes=%d", g.Difficulty(), events.count(event.DifficultyChanged))
	}
}

func TestEscalationScalesWithScore(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Escalation = true
	g, _ := newTestGame(t, straightPath(), nil, settings)
	g.ECS.GameState.Score = 20

	runTicks(t, g, 0, 1)
	// Medium: two thresholds passed, 2s * 0.6^2 and 5 * 1.4^2.
	if got := g.ECS.Spawner.SpawnInterval; math.Abs(got-0.72) > 1e-9 {
		t.Errorf("spawn interval = %v, want 0.72", got)
	}
	if got := g.ECS.Spawner.EnemySpeed; math.Abs(got-9.8) > 1e-9 {
		t.Errorf("enemy speed = %v, want 9.8", got)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	path := waypath.Path{vec.New(300, 300), vec.New(302, 300)}
	g, events := newTestGame(t, path, staticTable(2), config.DefaultSettings())
	g.ECS.Base.Health = config.LeakDamage

	runTicks(t, g, 0, 1)
	if !g.IsGameOver() {
		t.Fatal("game not over after the base was depleted")
	}
	if events.count(event.BaseDepleted) != 1 {
		t.Errorf("BaseDepleted = %d, want 1", events.count(event.BaseDepleted))
	}

	before := g.Snapshot()
	runTicks(t, g, 1, 100)
	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("world changed after game over:\n%+v\n%+v", before, after)
	}
	if err := g.PlaceTower(600, 300); !errors.Is(err, ErrGameOver) {
		t.Errorf("placement after game over: %v", err)
	}
}

func TestResetClearsEpisode(t *testing.T) {
	g, events := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	g.ECS.GameState.Score = 12
	if err := g.SelectTowerType(defs.TowerHeavy); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceTower(500, 300); err != nil {
		t.Fatal(err)
	}
	runTicks(t, g, 0, 30)
	g.ECS.GameState.Phase = component.GameOverPhase
	g.ECS.Base.Health = 0
	oldEpisode := g.EpisodeID

	next := waypath.Path{vec.New(300, 50), vec.New(1100, 550)}
	if err := g.Reset(next); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.IsGameOver() || g.Score() != 0 || g.SelectedTower() != defs.TowerLight {
		t.Errorf("over=%v score=%d selected=%s", g.IsGameOver(), g.Score(), g.SelectedTower())
	}
	if len(g.ECS.Towers) != 0 || g.ECS.Enemies.Len() != 0 || len(g.ECS.Projectiles) != 0 {
		t.Errorf("towers=%d enemies=%d projectiles=%d", len(g.ECS.Towers), g.ECS.Enemies.Len(), len(g.ECS.Projectiles))
	}
	if b := g.Base(); b.Health != config.BaseMaxHealth || b.Position != next.End() {
		t.Errorf("base = %+v", b)
	}
	if g.EpisodeID == oldEpisode {
		t.Error("episode ID not renewed")
	}
	if events.count(event.GameReset) != 1 {
		t.Errorf("GameReset = %d", events.count(event.GameReset))
	}

	// The new episode spawns immediately.
	runTicks(t, g, 30, 31)
	if g.ECS.Enemies.Len() != 1 {
		t.Errorf("enemies after first tick of new episode = %d", g.ECS.Enemies.Len())
	}
}

func TestResetKeepsTowersWhenConfigured(t *testing.T) {
	settings := config.DefaultSettings()
	settings.KeepTowersOnReset = true
	g, _ := newTestGame(t, straightPath(), nil, settings)
	if err := g.PlaceTower(350, 300); err != nil {
		t.Fatal(err)
	}
	runTicks(t, g, 0, 5)
	if g.ECS.Towers[0].LastShotTime != 0 {
		t.Fatalf("tower did not fire at t=0")
	}

	if err := g.Reset(straightPath()); err != nil {
		t.Fatal(err)
	}
	if len(g.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(g.ECS.Towers))
	}
	if !math.IsInf(g.ECS.Towers[0].LastShotTime, -1) {
		t.Errorf("cooldown not reset: %v", g.ECS.Towers[0].LastShotTime)
	}
}

func TestTickIsDeterministic(t *testing.T) {
	run := func() *Snapshot {
		g, _ := newTestGame(t, waypath.Path{vec.New(300, 120), vec.New(640, 420), vec.New(1100, 260)}, nil, config.DefaultSettings())
		for _, p := range []vec.Vec2{vec.New(420, 250), vec.New(700, 380), vec.New(900, 300)} {
			if err := g.PlaceTower(p.X, p.Y); err != nil {
				t.Fatal(err)
			}
		}
		runTicks(t, g, 0, 400)
		s := g.Snapshot()
		s.EpisodeID = ""
		return s
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two identical runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSnapshot(t *testing.T) {
	g, _ := newTestGame(t, straightPath(), nil, config.DefaultSettings())
	if err := g.PlaceTower(400, 300); err != nil {
		t.Fatal(err)
	}
	g.ECS.GameState.Score = 25
	runTicks(t, g, 0, 1)

	s := g.Snapshot()
	if s.HeavyAvailable != 2 || s.LightTowers != 1 || s.HeavyTowers != 0 {
		t.Errorf("heavy=%d light=%d heavyTowers=%d", s.HeavyAvailable, s.LightTowers, s.HeavyTowers)
	}
	if len(s.Enemies) != 1 || len(s.Path) != 2 || s.Base.MaxHealth != config.BaseMaxHealth {
		t.Errorf("snapshot = %+v", s)
	}
	if s.EpisodeID != g.EpisodeID.String() || s.Difficulty != defs.Medium {
		t.Errorf("episode=%s difficulty=%s", s.EpisodeID, s.Difficulty)
	}

	var store SnapshotStore
	if store.Latest() != nil {
		t.Fatal("empty store returned a snapshot")
	}
	store.Publish(s)
	if store.Latest() != s {
		t.Error("Latest did not return the published snapshot")
	}
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(config.FPS)
	if c.Now() != 0 {
		t.Fatalf("Now() = %v before the first tick", c.Now())
	}
	for i := 0; i < config.FPS; i++ {
		c.Tick()
	}
	if math.Abs(c.Now()-1) > 1e-12 {
		t.Errorf("Now() after %d ticks = %v, want 1", config.FPS, c.Now())
	}
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now() after Reset = %v", c.Now())
	}
}

func TestHeavyNotice(t *testing.T) {
	tests := []struct {
		available int
		want      string
	}{
		{0, ""},
		{1, "Heavy Tower Available!"},
		{2, "2 Heavy Towers Available!"},
		{7, "2 Heavy Towers Available!"},
	}
	for _, tt := range tests {
		s := &Snapshot{HeavyAvailable: tt.available}
		if got := s.HeavyNotice(); got != tt.want {
			t.Errorf("HeavyNotice(%d) = %q, want %q", tt.available, got, tt.want)
		}
	}
}
