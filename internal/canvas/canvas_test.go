package canvas

import (
	"strings"
	"testing"
)

func plain(cols, rows int) *Canvas {
	c := New(cols, rows)
	c.profile = colorNone
	return c
}

func TestSetMapsDotsToBrailleBits(t *testing.T) {
	c := plain(1, 1)
	c.Set(0, 0, RGB{})
	c.Set(1, 3, RGB{})
	if got, want := c.String(), string(rune(0x2800+1+128)); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestHorizontalLine(t *testing.T) {
	c := plain(2, 1)
	c.Line(0, 0, 3, 0, RGB{R: 255})
	if got, want := c.String(), "⠉⠉"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLineLightsBothEndpoints(t *testing.T) {
	c := plain(10, 5)
	c.Line(18, 1, 2, 17, RGB{})
	for _, p := range [][2]int{{18, 1}, {2, 17}, {10, 9}} {
		if !c.Lit(p[0], p[1]) {
			t.Fatalf("expected dot %v lit", p)
		}
	}
}

func TestLineClipsOffCanvas(t *testing.T) {
	c := plain(4, 2)
	c.Line(-20, -20, 40, 40, RGB{})
	if !c.Lit(0, 0) || !c.Lit(7, 7) {
		t.Fatal("expected on-canvas part of the diagonal to be drawn")
	}
	if c.Lit(8, 8) {
		t.Fatal("expected off-canvas dot to be ignored")
	}
}

func TestEmptyCellsAreSpaces(t *testing.T) {
	c := plain(3, 2)
	c.Set(2, 4, RGB{})
	rows := strings.Split(c.String(), "\n")
	if len(rows) != 2 || rows[0] != "   " || rows[1] != " ⠁ " {
		t.Fatalf("unexpected rows %q", rows)
	}
}

func TestClearAndResize(t *testing.T) {
	c := plain(2, 2)
	c.Disc(2, 4, 1, RGB{})
	c.Clear()
	if strings.TrimSpace(strings.ReplaceAll(c.String(), "\n", "")) != "" {
		t.Fatal("expected empty canvas after Clear")
	}
	c.Resize(5, 3)
	if cols, rows := c.Cells(); cols != 5 || rows != 3 {
		t.Fatalf("Cells() = %d,%d", cols, rows)
	}
	if w, h := c.Size(); w != 10 || h != 12 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
}

func TestTrueColorSequences(t *testing.T) {
	c := plain(2, 1)
	c.profile = colorTrueColor
	c.Set(0, 0, RGB{R: 230, G: 60, B: 60})
	out := c.String()
	if !strings.Contains(out, "\x1b[38;2;230;60;60m") {
		t.Fatalf("expected truecolor sequence, got %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Fatalf("expected reset at end of row, got %q", out)
	}
}

func TestReducedPaletteSequences(t *testing.T) {
	cases := []struct {
		profile colorProfile
		col     RGB
		want    string
	}{
		{colorANSI256, RGB{R: 230, G: 60, B: 60}, "\x1b[38;5;203m"},
		{colorANSI256, RGB{R: 0, G: 0, B: 0}, "\x1b[38;5;16m"},
		{colorANSI16, RGB{R: 230, G: 60, B: 60}, "\x1b[91m"},
		{colorANSI16, RGB{R: 160, G: 160, B: 40}, "\x1b[33m"},
		{colorANSI16, RGB{R: 40, G: 50, B: 80}, "\x1b[90m"},
		{colorANSI16, RGB{R: 200, G: 200, B: 200}, "\x1b[97m"},
	}
	for _, tc := range cases {
		if got := escape(tc.profile, tc.col); got != tc.want {
			t.Fatalf("escape(%d, %+v) = %q, want %q", tc.profile, tc.col, got, tc.want)
		}
	}
}

func TestColourWrittenOncePerRun(t *testing.T) {
	c := plain(3, 1)
	c.profile = colorANSI16
	rod := RGB{R: 230, G: 60, B: 60}
	c.Line(0, 0, 5, 0, rod)
	out := c.String()
	if n := strings.Count(out, "\x1b[91m"); n != 1 {
		t.Fatalf("expected one colour sequence, got %d in %q", n, out)
	}
	if len(c.seqs) != 1 {
		t.Fatalf("expected one cached sequence, got %d", len(c.seqs))
	}
}

func TestDetectProfile(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}
	cases := []struct {
		vars map[string]string
		want colorProfile
	}{
		{map[string]string{"NO_COLOR": "", "COLORTERM": "truecolor"}, colorNone},
		{map[string]string{"COLORTERM": "24bit", "TERM": "xterm"}, colorTrueColor},
		{map[string]string{"TERM": "xterm-256color"}, colorANSI256},
		{map[string]string{"TERM": "dumb"}, colorNone},
		{map[string]string{"TERM": "vt100"}, colorANSI16},
	}
	for _, tc := range cases {
		if got := detectProfile(env(tc.vars)); got != tc.want {
			t.Fatalf("detectProfile(%v) = %v, want %v", tc.vars, got, tc.want)
		}
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(RGB{R: 0, G: 100, B: 200}, RGB{R: 100, G: 100, B: 0}, 0.5)
	if got != (RGB{R: 50, G: 100, B: 100}) {
		t.Fatalf("Lerp() = %+v", got)
	}
}
