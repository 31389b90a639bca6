// Package trail keeps the most recent positions of a point, oldest dropped
// first.
package trail

import "github.com/olivier-w/linkage/internal/mech"

// Trail is a circular buffer of positions. It is not safe for concurrent
// use; the UI only touches it from its Update loop.
type Trail struct {
	buf []mech.Vec
	w   int // write position
	n   int // current fill level
}

// New creates a trail holding up to size positions.
func New(size int) *Trail {
	return &Trail{buf: make([]mech.Vec, max(size, 1))}
}

// Push appends p, overwriting the oldest position when full.
func (t *Trail) Push(p mech.Vec) {
	t.buf[t.w] = p
	t.w = (t.w + 1) % len(t.buf)
	if t.n < len(t.buf) {
		t.n++
	}
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.buf) }

// Last returns the newest position.
func (t *Trail) Last() (mech.Vec, bool) {
	if t.n == 0 {
		return mech.Vec{}, false
	}
	return t.buf[(t.w-1+len(t.buf))%len(t.buf)], true
}

// Points returns a copy of the stored positions, oldest first.
func (t *Trail) Points() []mech.Vec {
	if t.n == 0 {
		return nil
	}
	out := make([]mech.Vec, t.n)
	start := (t.w - t.n + len(t.buf)) % len(t.buf)
	for i := range t.n {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Clear drops every position.
func (t *Trail) Clear() {
	t.w = 0
	t.n = 0
}
