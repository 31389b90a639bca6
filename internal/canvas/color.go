package canvas

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

// RGB is a dot colour.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	profileOnce sync.Once
	profile     colorProfile
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		profile = detectProfile(os.LookupEnv)
	})
	return profile
}

func detectProfile(lookup func(string) (string, bool)) colorProfile {
	if _, disabled := lookup("NO_COLOR"); disabled {
		return colorNone
	}
	term, _ := lookup("TERM")
	colorTerm, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	colorTerm = strings.ToLower(colorTerm)
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return colorTrueColor
	case strings.Contains(term, "256color"):
		return colorANSI256
	case term == "", term == "dumb":
		return colorNone
	default:
		return colorANSI16
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp blends a toward b; t is clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// escape returns the foreground sequence for col under profile. Sixteen
// colour terminals get the basic colour whose channels are on, bright when
// the strongest channel is; near-black goes to grey so it stays visible.
func escape(profile colorProfile, col RGB) string {
	switch profile {
	case colorTrueColor:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", col.R, col.G, col.B)
	case colorANSI256:
		r, g, b := cube(col.R), cube(col.G), cube(col.B)
		return fmt.Sprintf("\x1b[38;5;%dm", 16+36*r+6*g+b)
	case colorANSI16:
		idx := 0
		if col.R > 127 {
			idx |= 1
		}
		if col.G > 127 {
			idx |= 2
		}
		if col.B > 127 {
			idx |= 4
		}
		if idx == 0 || max(col.R, col.G, col.B) > 191 {
			return fmt.Sprintf("\x1b[%dm", 90+idx)
		}
		return fmt.Sprintf("\x1b[%dm", 30+idx)
	}
	return ""
}

// cube rounds a channel onto the six levels of the 256-colour cube.
func cube(v uint8) int {
	return (int(v) + 25) / 51
}
