package game

import "math"

// Turn rates per input device.
const (
	// KeyTurnRate is radians per second while an arrow key is held.
	KeyTurnRate = 1.8
	// MouseTurnRate is radians per pixel of relative mouse motion.
	MouseTurnRate = 0.003
	// StickTurnRate is radians per frame at full right-stick deflection.
	StickTurnRate = 0.04
	// StickDeadzone is the fraction of stick travel ignored around centre.
	StickDeadzone = 8000.0 / 32768.0
	// MaxFrameDT caps a frame's time step so a stall cannot carry the player
	// through a wall in one move.
	MaxFrameDT = 0.25
	// movingThreshold is the smallest intent magnitude that counts as walking.
	movingThreshold = 0.05
)

// Intent is one frame of player input. Forward and Strafe are unit intents,
// Turn is already in radians and DT is the frame time in seconds.
type Intent struct {
	Forward float64
	Strafe  float64
	Turn    float64
	DT      float64
}

// Add sums the movement and turn of two sources. The longer DT wins so a
// device that reports no time does not erase the frame.
func (i Intent) Add(o Intent) Intent {
	return Intent{
		Forward: i.Forward + o.Forward,
		Strafe:  i.Strafe + o.Strafe,
		Turn:    i.Turn + o.Turn,
		DT:      math.Max(i.DT, o.DT),
	}
}

// Clamp limits Forward and Strafe to [-1, 1] and DT to [0, MaxFrameDT].
func (i Intent) Clamp() Intent {
	i.Forward = clampUnit(i.Forward)
	i.Strafe = clampUnit(i.Strafe)
	switch {
	case !(i.DT > 0):
		i.DT = 0
	case i.DT > MaxFrameDT:
		i.DT = MaxFrameDT
	}
	if math.IsNaN(i.Turn) {
		i.Turn = 0
	}
	return i
}

// Moving reports whether the intent would walk the player.
func (i Intent) Moving() bool {
	return math.Abs(i.Forward) > movingThreshold || math.Abs(i.Strafe) > movingThreshold
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// Keys is the held state of the movement keys.
type Keys struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
}

// Intent converts held keys into an intent for a frame of dt seconds.
func (k Keys) Intent(dt float64) Intent {
	in := Intent{DT: dt}
	if k.Forward {
		in.Forward++
	}
	if k.Back {
		in.Forward--
	}
	if k.StrafeRight {
		in.Strafe++
	}
	if k.StrafeLeft {
		in.Strafe--
	}
	if k.TurnRight {
		in.Turn += KeyTurnRate * dt
	}
	if k.TurnLeft {
		in.Turn -= KeyTurnRate * dt
	}
	return in
}

// MouseIntent turns by dx pixels of relative mouse motion.
func MouseIntent(dx float64) Intent {
	return Intent{Turn: dx * MouseTurnRate}
}

// StickAxis applies the dead zone to a stick axis in [-1, 1].
func StickAxis(v float64) float64 {
	if math.Abs(v) < StickDeadzone {
		return 0
	}
	return clampUnit(v)
}

// GamepadIntent maps the left stick to movement and the right stick's x axis
// to turning. Stick y grows downwards, so it is inverted for Forward.
func GamepadIntent(lx, ly, rx float64) Intent {
	return Intent{
		Forward: -StickAxis(ly),
		Strafe:  StickAxis(lx),
		Turn:    StickAxis(rx) * StickTurnRate,
	}
}
