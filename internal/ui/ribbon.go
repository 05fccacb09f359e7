// internal/ui/ribbon.go
package ui

import (
	"fmt"
	"image/color"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/event"
	"ribbon-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarX      = 10
	healthBarY      = config.ScreenHeight - 150
	healthBarWidth  = config.RibbonWidth - 20
	healthBarHeight = 20
)

// Ribbon — левая панель: счёт, выбранная башня, счётчики, здоровье базы.
// Здоровье базы приходит событиями, а не читается из симуляции.
type Ribbon struct {
	Health    int
	MaxHealth int
}

func NewRibbon(d *event.Dispatcher) *Ribbon {
	r := &Ribbon{Health: config.BaseMaxHealth, MaxHealth: config.BaseMaxHealth}
	d.SubscribeAll(r, event.BaseDamaged, event.GameReset)
	return r
}

// OnEvent is the base health sink.
func (r *Ribbon) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.BaseData:
		r.UpdateBaseHealth(data.Health, data.MaxHealth)
	case event.ResetData:
		r.UpdateBaseHealth(data.MaxHealth, data.MaxHealth)
	}
}

func (r *Ribbon) UpdateBaseHealth(health, maxHealth int) {
	r.Health = health
	r.MaxHealth = maxHealth
}

// HealthColor fades from green at full health to red at zero.
func HealthColor(ratio float32) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{R: uint8(255 * (1 - ratio)), G: uint8(255 * ratio), A: 255}
}

func (r *Ribbon) Draw(screen *ebiten.Image, face font.Face, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.RibbonWidth, config.ScreenHeight, config.RibbonColor, true)
	vector.StrokeRect(screen, 0, 0, config.RibbonWidth, config.ScreenHeight, config.RibbonBorderThickness, config.RibbonBorder, true)

	x := config.RibbonPadding
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Selected Tower: %s", snap.SelectedTower),
		fmt.Sprintf("Enemies: %d", len(snap.Enemies)),
		fmt.Sprintf("Light Towers: %d", snap.LightTowers),
		fmt.Sprintf("Heavy Towers: %d", snap.HeavyTowers),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, x, config.RibbonPadding+20+i*20, config.TextLightColor)
	}
	if msg := snap.HeavyNotice(); msg != "" {
		text.Draw(screen, msg, face, x, 150+20, config.HighlightColor)
	}
	text.Draw(screen, "1/2: tower  Left/Right: difficulty", face, x, 230, config.TextLightColor)

	ratio := utils.Ratio(r.Health, r.MaxHealth)
	vector.DrawFilledRect(screen, healthBarX, healthBarY, healthBarWidth, healthBarHeight, config.HealthBarBack, true)
	vector.DrawFilledRect(screen, healthBarX, healthBarY, utils.Lerp(0, healthBarWidth, ratio), healthBarHeight, HealthColor(ratio), true)
	vector.StrokeRect(screen, healthBarX, healthBarY, healthBarWidth, healthBarHeight, 2, color.White, true)
	text.Draw(screen, fmt.Sprintf("Base: %d/%d", r.Health, r.MaxHealth), face, healthBarX, healthBarY-6, config.TextLightColor)
}
