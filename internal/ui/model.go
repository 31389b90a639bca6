// Package ui is the interactive terminal front end: it owns the event loop,
// turns mouse input into root-joint positions and draws the chain.
package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/linkage/internal/canvas"
	"github.com/olivier-w/linkage/internal/config"
	"github.com/olivier-w/linkage/internal/drive"
	"github.com/olivier-w/linkage/internal/mech"
	"github.com/olivier-w/linkage/internal/snapshot"
	"github.com/olivier-w/linkage/internal/trail"
	"github.com/olivier-w/linkage/internal/util"
)

const (
	maxTrail       = 240
	statusLifetime = 5 * time.Second
	defaultWidth   = 80
	defaultHeight  = 24
)

// Model is the Bubbletea model for the linkage simulator. All chain access
// happens inside Update, one message at a time, so each tick is exactly one
// simulation step.
type Model struct {
	cfg    config.Config
	chain  *mech.Chain
	driver *drive.Driver
	canvas *canvas.Canvas
	view   viewport
	keys   keyMap
	help   help.Model
	log    *slog.Logger

	width    int
	height   int
	paused   bool
	steps    int
	trail    *trail.Trail
	showPath bool
	quitting bool

	snapDir    string
	saving     bool
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New assembles the chain described by cfg. Snapshots are written to
// snapDir. A nil logger discards everything.
func New(cfg config.Config, logger *slog.Logger, snapDir string) (Model, error) {
	chain, err := cfg.Build()
	if err != nil {
		return Model{}, fmt.Errorf("build linkage: %w", err)
	}
	mode, err := drive.ParseMode(cfg.Follow)
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if snapDir == "" {
		snapDir = "."
	}

	m := Model{
		cfg:      cfg,
		chain:    chain,
		driver:   drive.New(mode, cfg.FPS, cfg.SpringFrequency, cfg.SpringDamping, cfg.Root),
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      logger,
		trail:    trail.New(maxTrail),
		showPath: cfg.Trail,
		snapDir:  snapDir,
	}
	m.resize(defaultWidth, defaultHeight)
	m.log.Info("linkage assembled", "links", config.FormatLinks(cfg.Links), "root", util.FormatPoint(cfg.Root), "follow", mode)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.FPS), tea.SetWindowTitle("linkage"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		if !m.paused {
			m.step()
		}
		if m.statusMsg != "" && time.Since(m.statusTime) > statusLifetime {
			m.statusMsg = ""
		}
		return m, tickCmd(m.cfg.FPS)

	case snapshotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.log.Warn("snapshot failed", "err", msg.err)
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
		} else {
			m.log.Info("snapshot saved", "path", msg.path)
			m.setStatus("Saved "+msg.path, false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.step()
		}
	case key.Matches(msg, m.keys.Follow):
		next := m.driver.Mode().Next()
		m.driver.SetMode(next)
		m.setStatus("Follow: "+next.String(), false)
	case key.Matches(msg, m.keys.Trail):
		m.showPath = !m.showPath
		if !m.showPath {
			m.trail.Clear()
		}
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Snapshot):
		if !m.saving {
			m.saving = true
			m.setStatus("Saving...", false)
			return m, m.snapshotCmd()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	p, inside := m.view.cellToWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.driver.Press(p)
		}
	case tea.MouseActionMotion:
		m.driver.Move(p)
	case tea.MouseActionRelease:
		m.driver.Release()
	}
}

// step runs one simulation step: at most one write to the root joint, then
// one pass over the chain.
func (m *Model) step() {
	if p, ok := m.driver.Next(); ok {
		m.chain.Step(p)
	} else {
		m.chain.UpdateAll()
	}
	m.steps++
	if m.showPath {
		m.trail.Push(m.chain.Tip())
	}
}

func (m *Model) reset() {
	chain, err := m.cfg.Build()
	if err != nil {
		m.setStatus(fmt.Sprintf("Reset failed: %v", err), true)
		return
	}
	m.chain = chain
	m.driver.Release()
	m.driver.Sync(m.cfg.Root)
	m.steps = 0
	m.trail.Clear()
	m.log.Debug("linkage reset")
	m.setStatus("Reset", false)
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp()[0]) - 1
	}
	m.help.Width = w - 2*marginLeft
	m.view = newViewport(w, h, m.cfg.Width, m.cfg.Height)
	if m.canvas == nil {
		m.canvas = canvas.New(m.view.cols, m.view.rows)
	} else {
		m.canvas.Resize(m.view.cols, m.view.rows)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

func (m Model) snapshotCmd() tea.Cmd {
	opts := snapshot.DefaultOptions(int(m.cfg.Width), int(m.cfg.Height))
	if m.showPath {
		opts.Trail = m.trail.Points()
	}
	segs := m.chain.Segments()
	path := filepath.Join(m.snapDir, fmt.Sprintf("linkage-%06d.png", m.steps))
	return func() tea.Msg {
		err := snapshot.Save(path, segs, opts)
		return snapshotSavedMsg{path: path, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", marginLeft) + headerStyle.Render("linkage") + "\n")
	b.WriteString("\n")

	indent := strings.Repeat(" ", marginLeft)
	for _, row := range strings.Split(m.renderCanvas(), "\n") {
		b.WriteString(indent + row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(indent + m.statusLine() + "\n")
	if m.statusMsg != "" {
		style := messageStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(indent + style.Render(m.statusMsg) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(indentBlock(m.help.View(m.keys), indent))

	out := b.String()
	if pad := m.height - lipgloss.Height(out); pad > 0 {
		out += strings.Repeat("\n", pad)
	}
	return out
}

func (m Model) renderCanvas() string {
	c := m.canvas
	c.Clear()

	if pts := m.trail.Points(); m.showPath && len(pts) > 1 {
		for i := 1; i < len(pts); i++ {
			x0, y0 := m.view.toDot(pts[i-1])
			x1, y1 := m.view.toDot(pts[i])
			age := float64(len(pts)-1-i) / float64(len(pts)-1)
			c.Line(x0, y0, x1, y1, canvas.Lerp(trailNew, trailOld, age))
		}
	}

	for _, seg := range m.chain.Segments() {
		x0, y0 := m.view.toDot(seg.P0)
		x1, y1 := m.view.toDot(seg.P1)
		col := crankColor
		if seg.Kind == mech.KindRod {
			col = rodColor
		}
		c.Line(x0, y0, x1, y1, col)
	}

	for i := range m.chain.Len() {
		if crank, ok := m.chain.Link(i).(*mech.Crank); ok {
			x, y := m.view.toDot(crank.Pivot())
			c.Disc(x, y, 1, pivotColor)
		}
	}
	if m.driver.Pressed() {
		x, y := m.view.toDot(m.driver.Target())
		c.Set(x, y, driverColor)
	}
	return c.String()
}

func (m Model) statusLine() string {
	elapsed := time.Duration(m.steps) * time.Second / time.Duration(max(m.cfg.FPS, 1))
	parts := []string{
		fmt.Sprintf("step %d", m.steps),
		util.FormatDuration(elapsed),
		m.driver.Mode().String(),
		"root " + util.FormatPoint(m.chain.Root().Get()),
		"tip " + util.FormatPoint(m.chain.Tip()),
	}
	if angle, ok := m.crankAngle(); ok {
		parts = append(parts, "crank "+util.FormatDegrees(angle))
	}
	line := statusStyle.Render(strings.Join(parts, "  "))
	if m.paused {
		line = pausedStyle.Render("paused") + "  " + line
	}
	return line
}

func (m Model) crankAngle() (float64, bool) {
	for i := range m.chain.Len() {
		if crank, ok := m.chain.Link(i).(*mech.Crank); ok {
			return crank.Angle(), true
		}
	}
	return 0, false
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
