// internal/rlview/palette.go
package rlview

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// toRL переводит цвет из общей палитры config в цвет raylib.
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
