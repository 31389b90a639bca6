// Package config holds the construction-time description of a linkage and
// the simulator settings around it.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/olivier-w/linkage/internal/mech"
)

// DefaultLinks is the crank-and-rod linkage the simulator opens with.
const DefaultLinks = "crank:10:23,rod:100:50"

var (
	ErrBadLinkSpec = errors.New("invalid link spec")
	ErrNoLinks     = errors.New("no links configured")
)

// LinkSpec describes one link before it is constructed. Angle is in radians.
type LinkSpec struct {
	Kind   mech.Kind
	Length float64
	Angle  float64
}

func (s LinkSpec) String() string {
	return fmt.Sprintf("%s:%s:%s", s.Kind, formatFloat(s.Length), formatFloat(s.Angle))
}

// Config is everything needed to assemble and run a linkage.
type Config struct {
	Width, Height float64
	Root          mech.Vec
	Links         []LinkSpec

	FPS             int
	Follow          string
	SpringFrequency float64
	SpringDamping   float64
	Trail           bool
}

// Default mirrors the original demo: an 800x800 world with the driven joint
// in the centre.
func Default() Config {
	links, _ := ParseLinks(DefaultLinks)
	return Config{
		Width:           800,
		Height:          800,
		Root:            mech.V(400, 400),
		Links:           links,
		FPS:             60,
		Follow:          "direct",
		SpringFrequency: 6.0,
		SpringDamping:   0.8,
	}
}

// ParseLinks parses a comma separated list of kind:length[:angle] entries,
// e.g. "crank:10:23,rod:100:50". A missing angle is 0.
func ParseLinks(s string) ([]LinkSpec, error) {
	var specs []LinkSpec
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		spec, err := parseLink(field)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, ErrNoLinks
	}
	return specs, nil
}

func parseLink(field string) (LinkSpec, error) {
	parts := strings.Split(field, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return LinkSpec{}, fmt.Errorf("%w: %q (want kind:length[:angle])", ErrBadLinkSpec, field)
	}

	var spec LinkSpec
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "crank", "c":
		spec.Kind = mech.KindCrank
	case "rod", "r":
		spec.Kind = mech.KindRod
	default:
		return LinkSpec{}, fmt.Errorf("%w: unknown kind %q", ErrBadLinkSpec, parts[0])
	}

	length, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LinkSpec{}, fmt.Errorf("%w: length %q", ErrBadLinkSpec, parts[1])
	}
	spec.Length = length

	if len(parts) == 3 {
		angle, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return LinkSpec{}, fmt.Errorf("%w: angle %q", ErrBadLinkSpec, parts[2])
		}
		spec.Angle = angle
	}
	return spec, nil
}

// FormatLinks is the inverse of ParseLinks.
func FormatLinks(specs []LinkSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (mech.Vec, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return mech.Vec{}, fmt.Errorf("invalid point %q (want x,y)", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return mech.Vec{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return mech.Vec{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return mech.V(px, py), nil
}

// ParseSize parses "WxH".
func ParseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(hs), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return w, h, nil
}

// Validate reports the first setting that cannot be run.
func (c Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("invalid world size %gx%g", c.Width, c.Height)
	}
	if !c.Root.IsFinite() {
		return fmt.Errorf("invalid root position %v", c.Root)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range [1,240]", c.FPS)
	}
	switch c.Follow {
	case "direct", "spring":
	default:
		return fmt.Errorf("unknown follow mode %q (want direct or spring)", c.Follow)
	}
	if !(c.SpringFrequency > 0) || math.IsInf(c.SpringFrequency, 0) {
		return fmt.Errorf("spring frequency must be finite and positive, got %g", c.SpringFrequency)
	}
	if !(c.SpringDamping >= 0) || math.IsInf(c.SpringDamping, 0) {
		return fmt.Errorf("spring damping must be finite and not negative, got %g", c.SpringDamping)
	}
	if len(c.Links) == 0 {
		return ErrNoLinks
	}
	for i, l := range c.Links {
		if !(l.Length > 0) || math.IsInf(l.Length, 0) {
			return fmt.Errorf("link %d: %w", i, &mech.LengthError{Kind: l.Kind, Length: l.Length})
		}
		if i > 0 && l.Kind == mech.KindCrank {
			return fmt.Errorf("link %d: %w", i, mech.ErrCrankNotAtRoot)
		}
	}
	return nil
}

// Build constructs every link anchored at a fresh root joint and appends
// them in order, so each link ends up wired to its predecessor.
func (c Config) Build() (*mech.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	root := mech.NewJoint(c.Root)
	chain, err := mech.NewChain(root)
	if err != nil {
		return nil, err
	}
	for i, spec := range c.Links {
		link, err := newLink(spec, root)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		if err := chain.Append(link); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}
	return chain, nil
}

func newLink(spec LinkSpec, anchor *mech.Joint) (mech.Link, error) {
	switch spec.Kind {
	case mech.KindCrank:
		c, err := mech.NewCrank(spec.Length, spec.Angle, anchor)
		if err != nil {
			return nil, err
		}
		return c, nil
	case mech.KindRod:
		r, err := mech.NewRod(spec.Length, spec.Angle, anchor)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %v", ErrBadLinkSpec, spec.Kind)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
