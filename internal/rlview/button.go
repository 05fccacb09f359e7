// internal/rlview/button.go
package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const buttonFontSize = 30

// Button — прямоугольная кнопка экрана конца игры.
type Button struct {
	Rect    rl.Rectangle
	Text    string
	bgColor rl.Color
	fgColor rl.Color
	hover   rl.Color
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, width, height float32, text string) *Button {
	return &Button{
		Rect:    rl.NewRectangle(cx-width/2, cy-height/2, width, height),
		Text:    text,
		bgColor: rl.Black,
		fgColor: rl.White,
		hover:   rl.DarkGray,
	}
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(mousePos rl.Vector2) {
	bg := b.bgColor
	if b.IsClicked(mousePos) {
		bg = b.hover
	}
	rl.DrawRectangleRec(b.Rect, bg)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.White)

	textWidth := rl.MeasureText(b.Text, buttonFontSize)
	rl.DrawText(
		b.Text,
		int32(b.Rect.X+(b.Rect.Width-float32(textWidth))/2),
		int32(b.Rect.Y+(b.Rect.Height-buttonFontSize)/2),
		buttonFontSize,
		b.fgColor,
	)
}

// IsClicked проверяет, попадает ли точка в кнопку.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}
