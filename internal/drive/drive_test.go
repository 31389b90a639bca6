package drive

import (
	"math"
	"testing"

	"github.com/olivier-w/linkage/internal/mech"
)

func TestDirectOnlyWhilePressed(t *testing.T) {
	d := New(ModeDirect, 60, 6, 0.8, mech.V(0, 0))
	if _, ok := d.Next(); ok {
		t.Fatal("expected no drive before press")
	}

	d.Press(mech.V(10, 20))
	p, ok := d.Next()
	if !ok || p != mech.V(10, 20) {
		t.Fatalf("Next() = %+v, %v", p, ok)
	}

	d.Move(mech.V(11, 21))
	if p, _ := d.Next(); p != mech.V(11, 21) {
		t.Fatalf("expected motion to be followed, got %+v", p)
	}

	d.Release()
	if _, ok := d.Next(); ok {
		t.Fatal("expected no drive after release")
	}
	d.Move(mech.V(50, 50))
	if _, ok := d.Next(); ok {
		t.Fatal("expected hover motion not to drive")
	}
}

func TestSpringApproachesAndSettles(t *testing.T) {
	d := New(ModeSpring, 60, 6, 1.0, mech.V(0, 0))
	d.Press(mech.V(100, 0))

	first, ok := d.Next()
	if !ok {
		t.Fatal("expected spring to drive after press")
	}
	if first.X <= 0 || first.X >= 100 {
		t.Fatalf("expected first spring step between start and target, got %+v", first)
	}

	d.Release()
	settled := false
	for i := 0; i < 2000; i++ {
		p, ok := d.Next()
		if !ok {
			settled = true
			break
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("non-finite spring position %+v", p)
		}
	}
	if !settled {
		t.Fatal("expected spring to settle after release")
	}
	if d.pos != mech.V(100, 0) {
		t.Fatalf("expected spring to rest on target, got %+v", d.pos)
	}
}

func TestSetModeDoesNotJump(t *testing.T) {
	d := New(ModeDirect, 60, 6, 0.8, mech.V(0, 0))
	d.Press(mech.V(40, 40))
	d.Next()
	d.SetMode(ModeSpring)
	p, ok := d.Next()
	if !ok || p.Dist(mech.V(40, 40)) > 1e-9 {
		t.Fatalf("expected spring to start at target, got %+v (%v)", p, ok)
	}
}

func TestModeCycleAndParse(t *testing.T) {
	if ModeDirect.Next() != ModeSpring || ModeSpring.Next() != ModeDirect {
		t.Fatal("unexpected mode cycle")
	}
	for _, m := range []Mode{ModeDirect, ModeSpring} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("warp"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestOrbit(t *testing.T) {
	o := Orbit(mech.V(400, 400), 20, 4)
	want := []mech.Vec{mech.V(420, 400), mech.V(400, 420), mech.V(380, 400), mech.V(400, 380), mech.V(420, 400)}
	for i, w := range want {
		if got := o(i); got.Dist(w) > 1e-9 {
			t.Fatalf("Orbit(%d) = %+v, want %+v", i, got, w)
		}
	}
}
