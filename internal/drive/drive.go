// Package drive turns pointer input into positions for a chain's root joint.
package drive

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/linkage/internal/mech"
)

// Mode selects how the root joint follows the pointer.
type Mode int

const (
	// ModeDirect writes the pointer position while the button is held.
	ModeDirect Mode = iota
	// ModeSpring chases the pointer with a damped spring and keeps moving
	// after release until it settles.
	ModeSpring
)

// settle thresholds for ModeSpring, in world units and units per step.
const (
	settleDist  = 0.01
	settleSpeed = 0.01
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "direct":
		return ModeDirect, nil
	case "spring":
		return ModeSpring, nil
	}
	return ModeDirect, fmt.Errorf("unknown follow mode %q", s)
}

// Next cycles to the next mode.
func (m Mode) Next() Mode {
	switch m {
	case ModeDirect:
		return ModeSpring
	default:
		return ModeDirect
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSpring:
		return "spring"
	default:
		return "direct"
	}
}

// Driver holds pointer state between simulation steps.
type Driver struct {
	mode    Mode
	spring  harmonica.Spring
	pressed bool
	target  mech.Vec
	pos     mech.Vec
	vel     mech.Vec
	moving  bool
}

// New returns a driver at rest at start. fps is the step rate the spring is
// integrated at.
func New(mode Mode, fps int, frequency, damping float64, start mech.Vec) *Driver {
	if fps < 1 {
		fps = 1
	}
	return &Driver{
		mode:   mode,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		target: start,
		pos:    start,
	}
}

func (d *Driver) Mode() Mode { return d.mode }

// SetMode switches modes. The spring restarts from the current target so a
// mode change never makes the root jump.
func (d *Driver) SetMode(m Mode) {
	d.mode = m
	d.pos = d.target
	d.vel = mech.Vec{}
	d.moving = d.pressed
}

// Pressed reports whether the pointer button is held.
func (d *Driver) Pressed() bool { return d.pressed }

// Target returns the last pointer position seen.
func (d *Driver) Target() mech.Vec { return d.target }

func (d *Driver) Press(p mech.Vec) {
	d.pressed = true
	d.target = p
	d.moving = true
}

// Move records pointer motion. Motion without a held button only updates
// the target.
func (d *Driver) Move(p mech.Vec) {
	d.target = p
	if d.pressed {
		d.moving = true
	}
}

func (d *Driver) Release() {
	d.pressed = false
}

// Sync places the spring at p without motion, e.g. after the chain clamped
// the root.
func (d *Driver) Sync(p mech.Vec) {
	d.pos = p
	d.vel = mech.Vec{}
	if !d.pressed {
		d.target = p
		d.moving = false
	}
}

// Next returns the position to write into the root joint for this step and
// whether one should be written at all. Call it once per step.
func (d *Driver) Next() (mech.Vec, bool) {
	switch d.mode {
	case ModeSpring:
		if !d.moving {
			return mech.Vec{}, false
		}
		d.pos.X, d.vel.X = d.spring.Update(d.pos.X, d.vel.X, d.target.X)
		d.pos.Y, d.vel.Y = d.spring.Update(d.pos.Y, d.vel.Y, d.target.Y)
		if !d.pressed && d.pos.Dist(d.target) < settleDist && d.vel.Len() < settleSpeed {
			d.pos = d.target
			d.vel = mech.Vec{}
			d.moving = false
		}
		return d.pos, true
	default:
		if !d.pressed {
			return mech.Vec{}, false
		}
		d.pos = d.target
		return d.target, true
	}
}

// Orbit returns a scripted pointer path: a full circle of the given radius
// about center over steps steps, starting at angle 0.
func Orbit(center mech.Vec, radius float64, steps int) func(step int) mech.Vec {
	if steps < 1 {
		steps = 1
	}
	return func(step int) mech.Vec {
		angle := 2 * math.Pi * float64(step%steps) / float64(steps)
		return center.Add(mech.Polar(radius, angle))
	}
}
