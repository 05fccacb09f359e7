// internal/config/config.go
package config

import (
	"image/color"
	"ribbon-defense/pkg/waypath"
)

const (
	GameSpaceWidth = 800 // ширина игрового поля
	RibbonWidth    = 300 // ширина ленты UI слева
	ScreenWidth    = GameSpaceWidth + RibbonWidth
	ScreenHeight   = 600
	FPS            = 20 // тиков симуляции в секунду

	PlayableAreaStartX = RibbonWidth
	PlayableAreaWidth  = GameSpaceWidth

	DefaultWaypoints = 5

	EnemyHealth = 100
	EnemySpeed  = 2.0 // пикселей за тик, до применения сложности
	EnemyRadius = 12.0

	BaseMaxHealth = 500
	LeakDamage    = 10 // урон базе от врага, дошедшего до конца пути
	BaseRadius    = 22.0

	ProjectileSpeed  = 16.0 // пикселей за тик
	ProjectileRadius = 5.0

	TowerRadius      = 14.0
	TowerStrokeWidth = 2.0

	// Ограничители динамической сложности.
	MinSpawnInterval = 0.25
	MaxEnemySpeed    = 30.0

	RibbonPadding         = 15
	RibbonBorderThickness = 3
	SliderWidth           = 260
	SliderHeight          = 30
	SliderY               = ScreenHeight - 90
)

// PlayableArea is the part of the window enemies, towers and the base live in.
var PlayableArea = waypath.Rect{
	MinX: PlayableAreaStartX,
	MinY: 0,
	MaxX: PlayableAreaStartX + PlayableAreaWidth,
	MaxY: ScreenHeight,
}

var (
	BackgroundColor  = color.RGBA{50, 50, 50, 255}
	RibbonColor      = color.RGBA{25, 25, 35, 255}
	RibbonBorder     = color.RGBA{200, 200, 200, 255}
	PathColor        = color.RGBA{120, 100, 70, 255}
	BaseColor        = color.RGBA{50, 205, 50, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{0, 0, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HighlightColor   = color.RGBA{255, 255, 0, 255}
	GameOverColor    = color.RGBA{255, 0, 0, 255}
	HealthBarBack    = color.RGBA{80, 0, 0, 255}
	HealthBarFill    = color.RGBA{0, 200, 0, 255}
	TowerColors      = map[string]color.RGBA{
		"Light": {70, 130, 180, 255},
		"Heavy": {180, 50, 230, 255},
	}
)
