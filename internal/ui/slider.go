// internal/ui/slider.go
package ui

import (
	"image"
	"ribbon-defense/internal/config"
	"ribbon-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DifficultySlider — горизонтальный слайдер на пять позиций, Easy … Hell.
// Для симуляции важно только его значение.
type DifficultySlider struct {
	Rect  image.Rectangle
	Value int // 1..5
}

func NewDifficultySlider(level string) *DifficultySlider {
	x := (config.RibbonWidth - config.SliderWidth) / 2
	s := &DifficultySlider{
		Rect: image.Rect(x, config.SliderY, x+config.SliderWidth, config.SliderY+config.SliderHeight),
	}
	s.SetLevel(level)
	return s
}

// Level returns the difficulty name of the current position.
func (s *DifficultySlider) Level() string {
	return defs.LevelForSlider(s.Value)
}

// SetLevel moves the knob to level. Unknown names fall back to the default.
func (s *DifficultySlider) SetLevel(level string) {
	s.Value = defs.SliderForLevel(level)
	if s.Value == 0 {
		s.Value = defs.SliderForLevel(defs.DefaultDifficulty)
	}
}

// Step moves the knob by delta positions, clamped to the ends.
// It reports whether the value changed.
func (s *DifficultySlider) Step(delta int) bool {
	old := s.Value
	s.Value = defs.SliderForLevel(defs.LevelForSlider(s.Value + delta))
	return s.Value != old
}

// Click moves the knob to the stop nearest to x if (x, y) hits the slider.
func (s *DifficultySlider) Click(x, y int) bool {
	if !image.Pt(x, y).In(s.Rect) {
		return false
	}
	stops := len(defs.DifficultyLevels)
	segment := float64(s.Rect.Dx()) / float64(stops-1)
	idx := int(float64(x-s.Rect.Min.X)/segment + 0.5)
	s.Value = idx + 1
	return true
}

func (s *DifficultySlider) knobX() float32 {
	stops := len(defs.DifficultyLevels)
	segment := float32(s.Rect.Dx()) / float32(stops-1)
	return float32(s.Rect.Min.X) + segment*float32(s.Value-1)
}

func (s *DifficultySlider) Draw(screen *ebiten.Image, face font.Face) {
	midY := float32(s.Rect.Min.Y + s.Rect.Dy()/2)
	vector.StrokeLine(screen, float32(s.Rect.Min.X), midY, float32(s.Rect.Max.X), midY, 4, config.RibbonBorder, true)
	for i := range defs.DifficultyLevels {
		x := float32(s.Rect.Min.X) + float32(s.Rect.Dx())*float32(i)/float32(len(defs.DifficultyLevels)-1)
		vector.DrawFilledCircle(screen, x, midY, 4, config.RibbonBorder, true)
	}
	vector.DrawFilledCircle(screen, s.knobX(), midY, 9, config.HighlightColor, true)

	label := "Difficulty: " + s.Level()
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, s.Rect.Min.X+(s.Rect.Dx()-bounds.Dx())/2, s.Rect.Min.Y-10, config.TextLightColor)
}
