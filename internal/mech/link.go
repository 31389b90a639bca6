package mech

import "math"

// Kind identifies a link variant. Renderers use it as the style tag of a
// segment.
type Kind uint8

const (
	KindCrank Kind = iota
	KindRod
)

func (k Kind) String() string {
	switch k {
	case KindCrank:
		return "crank"
	case KindRod:
		return "rod"
	default:
		return "unknown"
	}
}

// Link is a rigid segment of fixed length driven by its anchor joint.
//
// The set of implementations is closed: only *Crank and *Rod satisfy it.
type Link interface {
	Kind() Kind
	Length() float64

	// Anchor is the joint the link reads as its input.
	Anchor() *Joint

	// Emitted is the joint the link produces for the next link. It is owned
	// by the link and rewritten in place on every Update.
	Emitted() *Joint

	// Endpoints returns the base and far end of the segment.
	Endpoints() (p0, p1 Vec)

	// Update recomputes the segment from the anchor's current position. When
	// constrains is true the link requires its anchor to be moved to clamped;
	// Chain applies that before the next link updates.
	Update() (clamped Vec, constrains bool)

	attach(anchor *Joint)
}

// Segment is a rendered view of one link.
type Segment struct {
	Kind   Kind
	P0, P1 Vec
}

func checkLength(kind Kind, length float64) error {
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return &LengthError{Kind: kind, Length: length}
	}
	return nil
}
