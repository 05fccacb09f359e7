// internal/rlview/view.go
package rlview

import (
	"fmt"
	"log"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"
	"ribbon-defense/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// View — фронтенд на raylib. Окно открывает вызывающий код.
type View struct {
	ctrl      interfaces.Controller
	logger    *log.Logger
	health    *BaseHealthIndicator
	playAgain *Button
	quit      *Button
}

func NewView(ctrl interfaces.Controller, logger *log.Logger) *View {
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	return &View{
		ctrl:      ctrl,
		logger:    logger,
		health:    NewBaseHealthIndicator(config.RibbonPadding, 330),
		playAgain: NewButton(cx, cy, 200, 60, "Play Again"),
		quit:      NewButton(cx, cy+100, 200, 60, "Quit"),
	}
}

// Run крутит цикл окна: один тик симуляции на кадр при config.FPS кадрах в секунду.
func (v *View) Run() error {
	rl.SetTargetFPS(config.FPS)
	for !rl.WindowShouldClose() {
		quit, err := v.Update()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		rl.BeginDrawing()
		v.Draw()
		rl.EndDrawing()
	}
	return nil
}

// Update обрабатывает ввод и продвигает симуляцию, пока игра не окончена.
func (v *View) Update() (bool, error) {
	mouse := rl.GetMousePosition()
	if v.ctrl.Snapshot().GameOver {
		return v.updateGameOver(mouse)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		if err := v.ctrl.Restart(); err != nil {
			return false, err
		}
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		v.selectTower(defs.TowerLight)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		v.selectTower(defs.TowerHeavy)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		if err := v.shiftDifficulty(-1); err != nil {
			return false, err
		}
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		if err := v.shiftDifficulty(1); err != nil {
			return false, err
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && mouse.X >= config.PlayableAreaStartX {
		if err := v.placeTower(float64(mouse.X), float64(mouse.Y)); err != nil {
			return false, err
		}
	}

	if err := v.ctrl.Tick(); err != nil {
		return false, fmt.Errorf("tick: %w", err)
	}
	return false, nil
}

func (v *View) updateGameOver(mouse rl.Vector2) (bool, error) {
	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	switch {
	case clicked && v.playAgain.IsClicked(mouse), rl.IsKeyPressed(rl.KeyR):
		v.logger.Println("Play Again button clicked.")
		return false, v.ctrl.Restart()
	case clicked && v.quit.IsClicked(mouse):
		v.logger.Println("Quit button clicked.")
		return true, nil
	}
	return false, nil
}

// placeTower ставит выбранную башню. Причину отказа ядро уже записало
// в лог, наружу уходят только прочие ошибки.
func (v *View) placeTower(x, y float64) error {
	if err := v.ctrl.PlaceTower(x, y); err != nil && !app.IsRejection(err) {
		return fmt.Errorf("place tower: %w", err)
	}
	return nil
}

func (v *View) selectTower(t defs.TowerType) {
	if err := v.ctrl.SelectTowerType(t); err != nil {
		v.logger.Printf("Cannot select %s tower: %v", t, err)
	}
}

func (v *View) shiftDifficulty(delta int) error {
	level := defs.LevelForSlider(defs.SliderForLevel(v.ctrl.Difficulty()) + delta)
	if level == v.ctrl.Difficulty() {
		return nil
	}
	return v.ctrl.SetDifficulty(level)
}

// Draw рисует текущий снимок. Вызывается между BeginDrawing и EndDrawing.
func (v *View) Draw() {
	snap := v.ctrl.Snapshot()
	mouse := rl.GetMousePosition()
	rl.ClearBackground(toRL(config.BackgroundColor))
	v.drawField(snap, mouse)
	v.drawRibbon(snap)
	if snap.GameOver {
		v.drawGameOver(snap, mouse)
	}
	rl.DrawFPS(config.ScreenWidth-90, 10)
}

func (v *View) drawField(snap *app.Snapshot, mouse rl.Vector2) {
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		rl.DrawLineEx(rl.NewVector2(float32(a.X), float32(a.Y)), rl.NewVector2(float32(b.X), float32(b.Y)), 6, toRL(config.PathColor))
	}
	rl.DrawCircleV(rl.NewVector2(float32(snap.Base.X), float32(snap.Base.Y)), config.BaseRadius, toRL(config.BaseColor))

	for _, t := range snap.Towers {
		center := rl.NewVector2(float32(t.X), float32(t.Y))
		rl.DrawCircleV(center, config.TowerRadius+config.TowerStrokeWidth, toRL(config.TowerStrokeColor))
		rl.DrawCircleV(center, config.TowerRadius, toRL(config.TowerColors[t.Type]))
		if rl.CheckCollisionPointCircle(mouse, center, config.TowerRadius) {
			rl.DrawCircleLines(int32(t.X), int32(t.Y), float32(t.Range), toRL(config.RangeColor))
		}
	}
	for _, e := range snap.Enemies {
		rl.DrawCircleV(rl.NewVector2(float32(e.X), float32(e.Y)), config.EnemyRadius, toRL(config.EnemyColor))
	}
	for _, p := range snap.Projectiles {
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), config.ProjectileRadius, toRL(config.ProjectileColor))
	}
}

func (v *View) drawRibbon(snap *app.Snapshot) {
	rl.DrawRectangle(0, 0, config.RibbonWidth, config.ScreenHeight, toRL(config.RibbonColor))
	rl.DrawRectangle(config.RibbonWidth-config.RibbonBorderThickness, 0, config.RibbonBorderThickness, config.ScreenHeight, toRL(config.RibbonBorder))

	text := toRL(config.TextLightColor)
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Selected: %s", snap.SelectedTower),
		fmt.Sprintf("Enemies: %d", len(snap.Enemies)),
		fmt.Sprintf("Light Towers: %d", snap.LightTowers),
		fmt.Sprintf("Heavy Towers: %d", snap.HeavyTowers),
		fmt.Sprintf("Difficulty: %s", snap.Difficulty),
	}
	for i, line := range lines {
		rl.DrawText(line, config.RibbonPadding, int32(config.RibbonPadding+i*22), 20, text)
	}
	if msg := snap.HeavyNotice(); msg != "" {
		rl.DrawText(msg, config.RibbonPadding, 160, 20, toRL(config.HighlightColor))
	}
	rl.DrawText("1/2 tower, Left/Right difficulty", config.RibbonPadding, 200, 10, text)
	rl.DrawText("R restart, Esc quit", config.RibbonPadding, 215, 10, text)
	v.health.Draw(snap.Base.Health, snap.Base.MaxHealth)
}

func (v *View) drawGameOver(snap *app.Snapshot, mouse rl.Vector2) {
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.Fade(rl.Black, 0.6))
	title := "GAME OVER"
	w := rl.MeasureText(title, 60)
	rl.DrawText(title, (config.ScreenWidth-w)/2, config.ScreenHeight/2-160, 60, toRL(config.GameOverColor))
	score := fmt.Sprintf("Score: %d", snap.Score)
	w = rl.MeasureText(score, 30)
	rl.DrawText(score, (config.ScreenWidth-w)/2, config.ScreenHeight/2-90, 30, rl.White)
	v.playAgain.Draw(mouse)
	v.quit.Draw(mouse)
}
