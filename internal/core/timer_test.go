package core

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrameClockDelta(t *testing.T) {
	fc := &fakeClock{t: time.Unix(1000, 0)}
	c := &FrameClock{now: fc.now}

	if dt := c.Tick(); dt != 0 {
		t.Fatalf("first tick dt = %f, want 0", dt)
	}
	fc.advance(16 * time.Millisecond)
	if dt := c.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Fatalf("dt = %f, want 0.016", dt)
	}

	c.Reset()
	fc.advance(5 * time.Second)
	if dt := c.Tick(); dt != 0 {
		t.Fatalf("dt after Reset = %f, want 0", dt)
	}
}

func TestFrameClockFPS(t *testing.T) {
	fc := &fakeClock{t: time.Unix(1000, 0)}
	c := &FrameClock{now: fc.now}
	c.Tick()
	for i := 0; i < 30; i++ {
		fc.advance(time.Second / 30)
		c.Tick()
	}
	// Floating point durations may land the 30th frame just short of a second.
	fc.advance(time.Second / 30)
	c.Tick()
	if fps := c.FPS(); fps < 30 || fps > 31 {
		t.Fatalf("fps = %d, want ~30", fps)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Fatalf("rotate quarter turn = %+v, want (0,1)", v)
	}
	if p := (Vec2{X: 1, Y: 2}).Perp(); p != (Vec2{X: -2, Y: 1}) {
		t.Fatalf("Perp = %+v", p)
	}
	if c := (Vec2{X: 2.9, Y: 1.01}).Cell(); c != (Cell{X: 2, Y: 1}) {
		t.Fatalf("Cell = %+v", c)
	}
	if c := (Vec2{X: -0.45, Y: -1.5}).Cell(); c != (Cell{X: -1, Y: -2}) {
		t.Fatalf("negative Cell = %+v", c)
	}
}
