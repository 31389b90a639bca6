// Package snapshot renders chain geometry to PNG with gg.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/olivier-w/linkage/internal/mech"
)

// Options controls the rendered frame. World coordinates map 1:1 to pixels.
type Options struct {
	Width, Height int
	LineWidth     float64
	JointRadius   float64
	Background    gg.RGBA
	Crank         gg.RGBA
	Rod           gg.RGBA
	Joint         gg.RGBA
	// Trail is an optional tip path drawn under the links.
	Trail      []mech.Vec
	TrailColor gg.RGBA
}

// DefaultOptions mirrors the original window: white background, black
// cranks, red rods.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		LineWidth:   3,
		JointRadius: 4,
		Background:  gg.White,
		Crank:       gg.Black,
		Rod:         gg.RGB(1, 0, 0),
		Joint:       gg.Hex("#FF8C00"),
		TrailColor:  gg.RGB(0.55, 0.55, 0.55),
	}
}

func (o Options) colorFor(k mech.Kind) gg.RGBA {
	if k == mech.KindRod {
		return o.Rod
	}
	return o.Crank
}

func newContext(opts Options) (*gg.Context, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}
	return gg.NewContext(opts.Width, opts.Height), nil
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func draw(dc *gg.Context, segs []mech.Segment, opts Options) error {
	dc.ClearWithColor(opts.Background)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	if len(opts.Trail) > 1 {
		setColor(dc, opts.TrailColor)
		dc.SetLineWidth(1)
		dc.MoveTo(opts.Trail[0].X, opts.Trail[0].Y)
		for _, p := range opts.Trail[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke trail: %w", err)
		}
	}

	dc.SetLineWidth(opts.LineWidth)
	for i, s := range segs {
		setColor(dc, opts.colorFor(s.Kind))
		dc.DrawLine(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke %s %d: %w", s.Kind, i, err)
		}
	}

	if opts.JointRadius > 0 && len(segs) > 0 {
		setColor(dc, opts.Joint)
		dc.DrawCircle(segs[0].P0.X, segs[0].P0.Y, opts.JointRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill pivot: %w", err)
		}
		for _, s := range segs {
			dc.DrawCircle(s.P1.X, s.P1.Y, opts.JointRadius*0.6)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("fill joint: %w", err)
			}
		}
	}

	// Batching accelerators hold shapes until flushed; CPU-only builds
	// have nothing registered and this is a no-op.
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	gg.Logger().Debug("snapshot drawn", "segments", len(segs), "width", opts.Width, "height", opts.Height)
	return nil
}

// Render draws segs into a new image.
func Render(segs []mech.Segment, opts Options) (image.Image, error) {
	dc, err := newContext(opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	if err := draw(dc, segs, opts); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode renders segs and writes them to w as PNG.
func Encode(w io.Writer, segs []mech.Segment, opts Options) error {
	dc, err := newContext(opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := draw(dc, segs, opts); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Save writes a PNG of segs to path, replacing any existing file.
func Save(path string, segs []mech.Segment, opts Options) error {
	dc, err := newContext(opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := draw(dc, segs, opts); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
