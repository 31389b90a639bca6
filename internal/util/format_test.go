package util

import (
	"math"
	"testing"
	"time"

	"github.com/olivier-w/linkage/internal/mech"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0:00"},
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatPoint(t *testing.T) {
	if got := FormatPoint(mech.V(410, 399.96)); got != "(410.0, 400.0)" {
		t.Fatalf("FormatPoint() = %q", got)
	}
}

func TestFormatDegrees(t *testing.T) {
	cases := []struct {
		rad  float64
		want string
	}{
		{0, "0°"},
		{math.Pi / 2, "90°"},
		{-math.Pi / 2, "-90°"},
		{3 * math.Pi / 2, "-90°"},
		{2*math.Pi + math.Pi/4, "45°"},
	}
	for _, tc := range cases {
		if got := FormatDegrees(tc.rad); got != tc.want {
			t.Fatalf("FormatDegrees(%v) = %q, want %q", tc.rad, got, tc.want)
		}
	}
}
