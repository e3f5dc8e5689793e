package geometry

import (
	"math"
	"testing"
)

func TestBoundingRadius(t *testing.T) {
	if got := (Circle{Radius: 1.5}).BoundingRadius(); got != 1.5 {
		t.Fatalf("circle bounding radius = %g, want 1.5", got)
	}
	want := math.Hypot(2, 1) / 2
	if got := (Box{Width: 2, Depth: 1}).BoundingRadius(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("box bounding radius = %g, want %g", got, want)
	}
}

func TestContainsPoint(t *testing.T) {
	c := Circle{Radius: 1}
	if !c.ContainsPoint(0.5, -0.5) {
		t.Fatal("circle should contain an interior point")
	}
	if c.ContainsPoint(1.1, 0) {
		t.Fatal("circle should not contain an exterior point")
	}

	b := Box{Width: 2, Depth: 1}
	if !b.ContainsPoint(0.9, 0.4) {
		t.Fatal("box should contain an interior point")
	}
	if b.ContainsPoint(0.9, 0.6) {
		t.Fatal("box should not contain a point past its depth")
	}
}

func TestCircleCircleOverlap(t *testing.T) {
	a := Circle{Radius: 1}
	b := Circle{Radius: 1}
	if !Overlap(a, 0, 0, 0, b, 1.9, 0, 0) {
		t.Fatal("circles 1.9 apart should overlap")
	}
	if Overlap(a, 0, 0, 0, b, 2.1, 0, 0) {
		t.Fatal("circles 2.1 apart should not overlap")
	}
}

func TestCircleBoxOverlap(t *testing.T) {
	c := Circle{Radius: 0.5}
	b := Box{Width: 2, Depth: 2}

	if !Overlap(c, 1.4, 0, 0, b, 0, 0, 0) {
		t.Fatal("circle near the box edge should overlap")
	}
	if Overlap(c, 1.6, 0, 0, b, 0, 0, 0) {
		t.Fatal("circle clear of the box edge should not overlap")
	}

	// Corner case: the circle sits diagonally off a corner. The gap to the
	// corner is sqrt(2*0.3^2) < 0.5, so a quarter-turn changes nothing.
	if !Overlap(c, 1.3, 1.3, 0, b, 0, 0, math.Pi/2) {
		t.Fatal("circle near the box corner should overlap")
	}
	if Overlap(c, 1.5, 1.5, 0, b, 0, 0, 0) {
		t.Fatal("circle clear of the box corner should not overlap")
	}
}

func TestBoxBoxOverlap(t *testing.T) {
	a := Box{Width: 2, Depth: 2}
	b := Box{Width: 2, Depth: 2}

	if !Overlap(a, 0, 0, 0, b, 1.9, 0, 0) {
		t.Fatal("axis-aligned boxes 1.9 apart should overlap")
	}
	if Overlap(a, 0, 0, 0, b, 2.1, 0, 0) {
		t.Fatal("axis-aligned boxes 2.1 apart should not overlap")
	}

	// A 45-degree box reaches sqrt(2) from its center along the axes, so it
	// touches deeper than its own half-width suggests.
	if !Overlap(a, 0, 0, 0, b, 2.3, 0, math.Pi/4) {
		t.Fatal("rotated box should reach the first box")
	}
	if Overlap(a, 0, 0, 0, b, 2.5, 0, math.Pi/4) {
		t.Fatal("rotated box should be separated")
	}
}

func TestOverlapRotatedFrames(t *testing.T) {
	// A long thin box rotated 90 degrees occupies its depth along x.
	long := Box{Width: 4, Depth: 0.5}
	c := Circle{Radius: 0.2}

	if Overlap(c, 1.5, 0, 0, long, 0, 0, math.Pi/2) {
		t.Fatal("circle misses the rotated thin box")
	}
	if !Overlap(c, 0, 1.5, 0, long, 0, 0, math.Pi/2) {
		t.Fatal("circle sits on the rotated thin box")
	}
}
