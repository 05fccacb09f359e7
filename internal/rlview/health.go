// internal/rlview/health.go
package rlview

import (
	"ribbon-defense/internal/config"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// BaseHealthIndicator отображает здоровье базы сеткой кружков,
// один кружок на одну утечку врага.
type BaseHealthIndicator struct {
	Position rl.Vector2
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{Position: rl.NewVector2(x, y)}
}

// pipCount — сколько кружков нужно для health при уроне config.LeakDamage за утечку.
func pipCount(health int) int {
	return (health + config.LeakDamage - 1) / config.LeakDamage
}

// pipColors раскрашивает кружки: заполненные синие, пока здоровья больше
// половины, и красные, когда база ниже половины; пустые чёрные.
func pipColors(health, maxHealth int) []rl.Color {
	total := pipCount(maxHealth)
	filled := pipCount(health)
	fill := rl.Blue
	if health*2 <= maxHealth {
		fill = rl.Red
	}
	colors := make([]rl.Color, total)
	for j := range colors {
		if j < filled {
			colors[j] = fill
		} else {
			colors[j] = rl.Black
		}
	}
	return colors
}

// Draw рисует индикатор здоровья базы.
func (i *BaseHealthIndicator) Draw(health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j, c := range pipColors(health, maxHealth) {
		row := j / HealthCols
		col := j % HealthCols
		x := i.Position.X + float32(col)*step + HealthCircleRadius
		y := i.Position.Y + float32(row)*step + HealthCircleRadius
		rl.DrawCircle(int32(x), int32(y), HealthCircleRadius, c)
		rl.DrawCircleLines(int32(x), int32(y), HealthCircleRadius, rl.White)
	}

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	textWidth := rl.MeasureText(healthText, 20)
	gridWidth := float32(HealthCols) * step
	rl.DrawText(healthText, int32(i.Position.X+(gridWidth-float32(textWidth))/2), int32(i.Position.Y)-25, 20, rl.White)
}

// GetHeight возвращает общую высоту индикатора.
func (i *BaseHealthIndicator) GetHeight(maxHealth int) float32 {
	rows := (pipCount(maxHealth) + HealthCols - 1) / HealthCols
	return 25 + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
