// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, width, height int, label string) *Button {
	return &Button{
		Rect:       image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:       label,
		BgColor:    color.RGBA{0, 0, 0, 255},
		HoverColor: color.RGBA{60, 60, 60, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, mx, my int) {
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, color.White)
}
