package main

import (
	"log/slog"

	"github.com/olivier-w/linkage/internal/drive"
	"github.com/olivier-w/linkage/internal/snapshot"
	"github.com/olivier-w/linkage/internal/trail"
	"github.com/olivier-w/linkage/internal/util"
)

// runHeadless drives the root joint once around an orbit twice the first
// link's length and writes the final frame.
func runHeadless(opts options, logger *slog.Logger) error {
	chain, err := opts.cfg.Build()
	if err != nil {
		return err
	}

	radius := 2 * chain.Link(0).Length()
	orbit := drive.Orbit(opts.cfg.Root, radius, opts.steps)

	path := trail.New(opts.steps)
	for i := range opts.steps {
		chain.Step(orbit(i))
		if opts.cfg.Trail {
			path.Push(chain.Tip())
		}
	}

	snapOpts := snapshot.DefaultOptions(int(opts.cfg.Width), int(opts.cfg.Height))
	snapOpts.Trail = path.Points()
	if err := snapshot.Save(opts.png, chain.Segments(), snapOpts); err != nil {
		return err
	}
	logger.Info("headless run finished", "steps", opts.steps, "tip", util.FormatPoint(chain.Tip()), "png", opts.png)
	return nil
}
