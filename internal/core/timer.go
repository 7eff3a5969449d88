package core

import "time"

// FrameClock measures elapsed time between frames and counts frames per
// second over whole-second windows.
type FrameClock struct {
	now    func() time.Time
	last   time.Time
	window time.Time
	frames int
	fps    int
}

// NewFrameClock constructs a FrameClock reading the wall clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick marks the start of a frame and returns the seconds since the previous
// Tick. The first call returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		c.window = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}

	c.frames++
	if now.Sub(c.window) >= time.Second {
		c.fps = c.frames
		c.frames = 0
		c.window = now
	}
	return dt.Seconds()
}

// FPS returns the frame count of the last completed one-second window.
func (c *FrameClock) FPS() int { return c.fps }

// Reset forgets the previous frame so the next Tick returns 0. Call it when
// the game resumes after a pause such as a menu.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.frames = 0
}
