// internal/app/clock.go
package app

// Clock supplies monotonic time in seconds.
type Clock interface {
	Now() float64
}

// TickClock advances by a fixed step per tick, so game time follows the
// tick count rather than the wall clock.
type TickClock struct {
	step  float64
	ticks int64
}

func NewTickClock(fps int) *TickClock {
	if fps <= 0 {
		fps = 1
	}
	return &TickClock{step: 1 / float64(fps)}
}

// Tick advances the clock by one frame and returns the new time.
func (c *TickClock) Tick() float64 {
	c.ticks++
	return c.Now()
}

func (c *TickClock) Now() float64 {
	return float64(c.ticks) * c.step
}

func (c *TickClock) Reset() {
	c.ticks = 0
}
