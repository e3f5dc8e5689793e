package graph

import (
	"math"
	"testing"
)

func TestAddWaypointAndLane(t *testing.T) {
	g := New()
	a := g.AddWaypoint("test_map", [2]float64{0, 0}, false)
	b := g.AddWaypoint("test_map", [2]float64{5, 0}, true)

	if g.NumWaypoints() != 2 {
		t.Fatalf("NumWaypoints = %d, want 2", g.NumWaypoints())
	}
	if !g.Waypoint(b).HoldingPoint {
		t.Fatal("waypoint b should be a holding point")
	}

	idx, err := g.AddLane(a, b)
	if err != nil {
		t.Fatalf("AddLane: %v", err)
	}
	lane := g.Lane(idx)
	if lane.From != a || lane.To != b {
		t.Fatalf("lane = %+v", lane)
	}
	if got := g.LanesFrom(a); len(got) != 1 || got[0] != idx {
		t.Fatalf("LanesFrom(a) = %v", got)
	}
	if got := g.LanesFrom(b); len(got) != 0 {
		t.Fatalf("LanesFrom(b) = %v, want none", got)
	}
}

func TestAddLaneValidation(t *testing.T) {
	g := New()
	a := g.AddWaypoint("test_map", [2]float64{0, 0}, false)

	if _, err := g.AddLane(a, 7); err == nil {
		t.Fatal("out-of-range target should be rejected")
	}
	if _, err := g.AddLane(-1, a); err == nil {
		t.Fatal("out-of-range source should be rejected")
	}
	if _, err := g.AddLane(a, a); err == nil {
		t.Fatal("self lane should be rejected")
	}
}

func TestOrientationConstraint(t *testing.T) {
	if _, err := NewOrientationConstraint(); err == nil {
		t.Fatal("empty yaw set should be rejected")
	}

	c, err := NewOrientationConstraint(0, math.Pi/2)
	if err != nil {
		t.Fatalf("NewOrientationConstraint: %v", err)
	}
	if got := c.Apply(0.1); got != 0 {
		t.Fatalf("Apply(0.1) = %g, want 0", got)
	}
	if got := c.Apply(1.4); got != math.Pi/2 {
		t.Fatalf("Apply(1.4) = %g, want π/2", got)
	}
	if !c.Satisfied(1e-9, 1e-6) {
		t.Fatal("near-zero yaw should satisfy the constraint")
	}
	if c.Satisfied(0.7, 1e-6) {
		t.Fatal("0.7 rad should not satisfy the constraint")
	}
}

func TestAngleHelpers(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("NormalizeAngle(3π) = %g, want π", got)
	}
	if got := AngleDiff(-3*math.Pi/4, 3*math.Pi/4); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("AngleDiff(-3π/4, 3π/4) = %g, want π/2", got)
	}
	if got := AngleDiff(0.2, 0.5); math.Abs(got+0.3) > 1e-12 {
		t.Fatalf("AngleDiff(0.2, 0.5) = %g, want -0.3", got)
	}
}
