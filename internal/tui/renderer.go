package tui

import (
	"fmt"
	"ribbon-defense/internal/app"
	"ribbon-defense/internal/config"

	"github.com/gdamore/tcell/v2"
)

// RibbonCols is the width of the text panel left of the field.
const RibbonCols = 28

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleDefault    = tcell.StyleDefault
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleLight      = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Bold(true)
	styleHeavy      = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBase       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleNotice     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Grid maps world coordinates of the playable area onto terminal cells.
type Grid struct {
	Cols, Rows int
}

// GridFor fits the field into a w x h terminal next to the ribbon.
func GridFor(w, h int) Grid {
	g := Grid{Cols: w - RibbonCols, Rows: h}
	if g.Cols < 1 {
		g.Cols = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	return g
}

// ToCell returns the field cell (relative to the field origin) holding (x, y).
func (g Grid) ToCell(x, y float64) (col, row int) {
	area := config.PlayableArea
	col = int((x - area.MinX) / (area.MaxX - area.MinX) * float64(g.Cols))
	row = int((y - area.MinY) / (area.MaxY - area.MinY) * float64(g.Rows))
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return col, row
}

// ToWorld returns the world point at the centre of a field cell.
func (g Grid) ToWorld(col, row int) (x, y float64) {
	area := config.PlayableArea
	x = area.MinX + (float64(col)+0.5)*(area.MaxX-area.MinX)/float64(g.Cols)
	y = area.MinY + (float64(row)+0.5)*(area.MaxY-area.MinY)/float64(g.Rows)
	return x, y
}

// Renderer draws snapshots as characters.
type Renderer struct {
	canvas Canvas
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

func (r *Renderer) Grid() Grid {
	return GridFor(r.canvas.Size())
}

func (r *Renderer) Draw(snap *app.Snapshot, cursorCol, cursorRow int, difficulty string) {
	w, h := r.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.canvas.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	grid := r.Grid()

	r.drawPath(grid, snap)
	r.put(grid, snap.Base.X, snap.Base.Y, 'B', styleBase)
	for _, t := range snap.Towers {
		if t.Type == "Heavy" {
			r.put(grid, t.X, t.Y, 'H', styleHeavy)
		} else {
			r.put(grid, t.X, t.Y, 'L', styleLight)
		}
	}
	for _, e := range snap.Enemies {
		r.put(grid, e.X, e.Y, 'e', styleEnemy)
	}
	for _, p := range snap.Projectiles {
		r.put(grid, p.X, p.Y, '*', styleProjectile)
	}
	r.drawCursor(cursorCol, cursorRow)
	r.drawRibbon(snap, difficulty)
}

// drawPath samples every segment at cell resolution.
func (r *Renderer) drawPath(grid Grid, snap *app.Snapshot) {
	cellW := (config.PlayableArea.MaxX - config.PlayableArea.MinX) / float64(grid.Cols)
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := int(maxf(absf(dx), absf(dy))/cellW*2) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			r.put(grid, a.X+dx*t, a.Y+dy*t, '.', stylePath)
		}
	}
}

func (r *Renderer) put(grid Grid, x, y float64, ch rune, style tcell.Style) {
	col, row := grid.ToCell(x, y)
	r.canvas.SetContent(RibbonCols+col, row, ch, nil, style)
}

func (r *Renderer) drawCursor(col, row int) {
	r.canvas.SetContent(RibbonCols+col, row, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
}

func (r *Renderer) drawRibbon(snap *app.Snapshot, difficulty string) {
	_, h := r.canvas.Size()
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{fmt.Sprintf("Score: %d", snap.Score), styleDefault},
		{fmt.Sprintf("Selected: %s", snap.SelectedTower), styleDefault},
		{fmt.Sprintf("Enemies: %d", len(snap.Enemies)), styleDefault},
		{fmt.Sprintf("Light Towers: %d", snap.LightTowers), styleDefault},
		{fmt.Sprintf("Heavy Towers: %d", snap.HeavyTowers), styleDefault},
		{fmt.Sprintf("Base: %d/%d", snap.Base.Health, snap.Base.MaxHealth), styleDefault},
		{fmt.Sprintf("Difficulty: %s", difficulty), styleDefault},
		{snap.HeavyNotice(), styleNotice},
		{"", styleDefault},
		{"arrows move, space builds", styleDefault},
		{"1/2 tower, [ ] difficulty", styleDefault},
		{"r restart, q quit", styleDefault},
	}
	if snap.GameOver {
		lines = append(lines, struct {
			text  string
			style tcell.Style
		}{"GAME OVER - r / q", styleGameOver})
	}
	for i, line := range lines {
		if i >= h {
			break
		}
		r.text(0, i, line.text, line.style)
	}
	for y := 0; y < h; y++ {
		r.canvas.SetContent(RibbonCols-1, y, '│', nil, styleDefault)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= RibbonCols-1 {
			return
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
