// pkg/waypath/path.go
package waypath

import (
	"math/rand"
	"ribbon-defense/pkg/vec"
)

// Rect — прямоугольная область (игровое поле без ленты UI).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Path is the ordered list of waypoints enemies walk. It is never
// mutated after Generate returns, so it is shared by every enemy.
type Path []vec.Vec2

// Start returns the spawn waypoint.
func (p Path) Start() vec.Vec2 {
	return p[0]
}

// End returns the last waypoint, where the base stands.
func (p Path) End() vec.Vec2 {
	return p[len(p)-1]
}

// Generate builds a path of intermediate+2 waypoints. The first point is
// pinned to the left edge of area and the last to the right edge; both get
// a random y. Intermediate points are uniform inside area.
func Generate(rng *rand.Rand, area Rect, intermediate int) Path {
	if intermediate < 0 {
		intermediate = 0
	}
	path := make(Path, 0, intermediate+2)
	path = append(path, vec.New(area.MinX, uniform(rng, area.MinY, area.MaxY)))
	for i := 0; i < intermediate; i++ {
		path = append(path, vec.New(
			uniform(rng, area.MinX, area.MaxX),
			uniform(rng, area.MinY, area.MaxY),
		))
	}
	path = append(path, vec.New(area.MaxX, uniform(rng, area.MinY, area.MaxY)))
	return path
}

// uniform returns an integer-valued coordinate in [lo, hi], matching the
// pixel grid the frontends draw on.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	span := int(hi - lo)
	if span <= 0 {
		return lo
	}
	return lo + float64(rng.Intn(span+1))
}
