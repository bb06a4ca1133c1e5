package geom_test

import (
	"testing"

	"github.com/prb616/starlight/pkg/geom"
)

func TestVecOps(t *testing.T) {
	a := geom.NewVec(3, 4)
	b := geom.NewVec(1, 2)
	if got := a.Add(b); got != geom.NewVec(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != geom.NewVec(2, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != geom.NewVec(6, 8) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.ToF64(); got != geom.NewVec(3.0, 4.0) {
		t.Errorf("ToF64 = %v", got)
	}
}

func TestNewRectCanonicalizes(t *testing.T) {
	r := geom.NewRect(10, 20, 0, 5)
	if r.Min != geom.NewVec(0.0, 5.0) || r.Max != geom.NewVec(10.0, 20.0) {
		t.Errorf("NewRect did not swap corners: %v", r)
	}
}

func TestRectCanon(t *testing.T) {
	r := geom.Rect{Min: geom.NewVec(10.0, 2.0), Max: geom.NewVec(0.0, 8.0)}
	got := r.Canon()
	want := geom.NewRect(0, 2, 10, 8)
	if got != want {
		t.Errorf("Canon = %v, want %v", got, want)
	}
	if got.Empty() {
		t.Error("canonicalized rect reported empty")
	}
	if !got.Canon().Contains(geom.NewVec(5.0, 5.0)) {
		t.Error("Canon of a canonical rect changed containment")
	}
}

func TestRectContains(t *testing.T) {
	r := geom.NewRect(0, 0, 10, 10)
	if !r.Contains(geom.NewVec(5.0, 5.0)) {
		t.Error("interior point not contained")
	}
	if !r.Contains(geom.NewVec(10.0, 10.0)) {
		t.Error("max corner not contained")
	}
	if r.Contains(geom.NewVec(10.5, 5.0)) {
		t.Error("outside point contained")
	}
}

func TestRectUnion(t *testing.T) {
	a := geom.NewRect(0, 0, 5, 5)
	b := geom.NewRect(3, 3, 10, 8)
	got := a.Union(b)
	want := geom.NewRect(0, 0, 10, 8)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	var empty geom.Rect
	if got := a.Union(empty); got != a {
		t.Errorf("union with empty = %v, want %v", got, a)
	}
	if got := empty.Union(b); got != b {
		t.Errorf("empty union = %v, want %v", got, b)
	}
}

func TestCircleBounds(t *testing.T) {
	c := geom.NewCircle(5, 5, 3)
	want := geom.NewRect(2, 2, 8, 8)
	if got := c.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}
