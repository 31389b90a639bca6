package util

import (
	"fmt"
	"math"
	"time"

	"github.com/olivier-w/linkage/internal/mech"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPoint formats a position with one decimal.
func FormatPoint(p mech.Vec) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// FormatDegrees formats an angle in radians as whole degrees in (-180, 180].
func FormatDegrees(rad float64) string {
	deg := math.Mod(rad*180/math.Pi, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return fmt.Sprintf("%.0f°", deg)
}
