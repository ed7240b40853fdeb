package common

// Clock is the game's logical time source, in seconds. It advances by the
// frame delta each tick and freezes while paused, so state timers and
// animation timing never expire across a pause.
type Clock struct {
	now    float64
	paused bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current logical time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// Advance moves logical time forward by dt seconds. No-op while paused.
func (c *Clock) Advance(dt float64) {
	if c.paused || dt <= 0 {
		return
	}
	c.now += dt
}

func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

func (c *Clock) Paused() bool {
	return c.paused
}
