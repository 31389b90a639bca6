package mech

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("link length must be positive")
	ErrNilAnchor     = errors.New("link anchor is nil")
	ErrNilLink       = errors.New("link is nil")
	ErrDuplicateLink = errors.New("link already appended")
	ErrRootMismatch  = errors.New("first link is not anchored at the chain root")
	ErrLinkIndex     = errors.New("link index out of range")

	// ErrCrankNotAtRoot is returned for a crank appended after the first
	// link: clamping that anchor would pull the previous link off length.
	ErrCrankNotAtRoot = errors.New("crank must be the first link")
)

// LengthError reports a link constructed with a length that is not a finite
// positive number.
type LengthError struct {
	Kind   Kind
	Length float64
}

func (e *LengthError) Error() string {
	if e == nil {
		return ErrInvalidLength.Error()
	}
	return fmt.Sprintf("%s: length %g: %s", e.Kind, e.Length, ErrInvalidLength)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d (chain has %d links)", ErrLinkIndex, i, n)
}
