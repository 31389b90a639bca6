package trail

import (
	"reflect"
	"testing"

	"github.com/olivier-w/linkage/internal/mech"
)

func TestPushKeepsNewestOldestFirst(t *testing.T) {
	tr := New(3)
	for i := range 5 {
		tr.Push(mech.V(float64(i), 0))
	}
	want := []mech.Vec{mech.V(2, 0), mech.V(3, 0), mech.V(4, 0)}
	if got := tr.Points(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Points() = %v, want %v", got, want)
	}
	if last, ok := tr.Last(); !ok || last != mech.V(4, 0) {
		t.Fatalf("Last() = %v, %v", last, ok)
	}
	if tr.Len() != 3 || tr.Cap() != 3 {
		t.Fatalf("Len/Cap = %d/%d", tr.Len(), tr.Cap())
	}
}

func TestPartialFill(t *testing.T) {
	tr := New(4)
	tr.Push(mech.V(1, 1))
	tr.Push(mech.V(2, 2))
	want := []mech.Vec{mech.V(1, 1), mech.V(2, 2)}
	if got := tr.Points(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Points() = %v, want %v", got, want)
	}
}

func TestClear(t *testing.T) {
	tr := New(2)
	tr.Push(mech.V(1, 1))
	tr.Clear()
	if tr.Len() != 0 || tr.Points() != nil {
		t.Fatal("expected empty trail after Clear")
	}
	if _, ok := tr.Last(); ok {
		t.Fatal("expected no last point after Clear")
	}
}

func TestZeroSizeHoldsOne(t *testing.T) {
	tr := New(0)
	tr.Push(mech.V(1, 0))
	tr.Push(mech.V(2, 0))
	if got := tr.Points(); len(got) != 1 || got[0] != mech.V(2, 0) {
		t.Fatalf("Points() = %v", got)
	}
}
