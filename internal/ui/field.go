// internal/ui/field.go
package ui

import (
	"math"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawField рисует путь, башни, врагов, снаряды и базу из снимка.
// Вокруг башни под курсором рисуется радиус атаки.
func DrawField(screen *ebiten.Image, snap *app.Snapshot, mx, my int) {
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 6, config.PathColor, true)
	}

	vector.DrawFilledCircle(screen, float32(snap.Base.X), float32(snap.Base.Y), config.BaseRadius, config.BaseColor, true)

	for _, t := range snap.Towers {
		x, y := float32(t.X), float32(t.Y)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius+config.TowerStrokeWidth, config.TowerStrokeColor, true)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, config.TowerColors[t.Type], true)
		if math.Hypot(float64(mx)-t.X, float64(my)-t.Y) <= config.TowerRadius {
			vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.RangeColor, true)
		}
	}

	for _, e := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), config.EnemyRadius, config.EnemyColor, true)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}
}
