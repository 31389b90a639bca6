package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/olivier-w/linkage/internal/config"
)

type options struct {
	cfg     config.Config
	logPath string
	verbose bool
	png     string
	steps   int
	snapDir string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	def := config.Default()

	fs := flag.NewFlagSet("linkage", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		links   = fs.String("links", config.DefaultLinks, "links as kind:length[:angle], comma separated (angles in radians)")
		root    = fs.String("root", fmt.Sprintf("%g,%g", def.Root.X, def.Root.Y), "driven joint start position x,y")
		size    = fs.String("size", fmt.Sprintf("%gx%g", def.Width, def.Height), "world size WxH")
		fps     = fs.Int("fps", def.FPS, "simulation steps per second")
		follow  = fs.String("follow", def.Follow, "pointer follow mode: direct or spring")
		freq    = fs.Float64("spring-freq", def.SpringFrequency, "spring angular frequency for -follow spring")
		damping = fs.Float64("spring-damping", def.SpringDamping, "spring damping ratio for -follow spring")
		trail   = fs.Bool("trail", false, "draw the path of the chain tip")
		logPath = fs.String("log", "", "write logs to this file")
		verbose = fs.Bool("v", false, "debug logging (with -log)")
		png     = fs.String("png", "", "run headless and write the final frame to this PNG file")
		steps   = fs.Int("steps", 360, "steps to simulate with -png")
		snapDir = fs.String("snapdir", ".", "directory for snapshots saved from the TUI")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := def
	var err error
	if cfg.Links, err = config.ParseLinks(*links); err != nil {
		return options{}, fmt.Errorf("-links: %w", err)
	}
	if cfg.Root, err = config.ParsePoint(*root); err != nil {
		return options{}, fmt.Errorf("-root: %w", err)
	}
	if cfg.Width, cfg.Height, err = config.ParseSize(*size); err != nil {
		return options{}, fmt.Errorf("-size: %w", err)
	}
	cfg.FPS = *fps
	cfg.Follow = *follow
	cfg.SpringFrequency = *freq
	cfg.SpringDamping = *damping
	cfg.Trail = *trail
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	if *steps < 1 {
		return options{}, fmt.Errorf("-steps must be at least 1, got %d", *steps)
	}

	return options{
		cfg:     cfg,
		logPath: *logPath,
		verbose: *verbose,
		png:     *png,
		steps:   *steps,
		snapDir: *snapDir,
	}, nil
}
