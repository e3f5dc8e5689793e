package vehicle

import (
	"math"
	"testing"
	"time"
)

func testTraits() Traits {
	return Traits{
		Linear:     Limits{Velocity: 0.7, Acceleration: 0.3},
		Rotational: Limits{Velocity: 1.0, Acceleration: 0.45},
	}
}

func TestValidate(t *testing.T) {
	if err := testTraits().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := testTraits()
	bad.Linear.Velocity = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("zero linear velocity should be rejected")
	}
}

func TestTrapezoidalMove(t *testing.T) {
	tr := testTraits()
	// 0.7 m/s at 0.3 m/s²: accel covers 0.8167 m over 2.333 s each side.
	ph := tr.MovePhases(10)
	if len(ph) != 3 {
		t.Fatalf("want 3 phases for a long move, got %d", len(ph))
	}
	accelDist := 0.7 * 0.7 / (2 * 0.3)
	if math.Abs(ph[0].Progress-accelDist) > 1e-9 || math.Abs(ph[0].Velocity-0.7) > 1e-9 {
		t.Fatalf("accel phase = %+v", ph[0])
	}
	if math.Abs(ph[1].Progress-(10-accelDist)) > 1e-9 {
		t.Fatalf("cruise phase = %+v", ph[1])
	}
	if ph[2].Progress != 10 || ph[2].Velocity != 0 {
		t.Fatalf("arrival phase = %+v", ph[2])
	}
	wantTotal := 2*(0.7/0.3) + (10-2*accelDist)/0.7
	if math.Abs(ph[2].Elapsed-wantTotal) > 1e-9 {
		t.Fatalf("total time = %g, want %g", ph[2].Elapsed, wantTotal)
	}
}

func TestTriangularMove(t *testing.T) {
	tr := testTraits()
	// 1 m is too short to reach 0.7 m/s: peak = sqrt(0.3) ≈ 0.5477 m/s.
	ph := tr.MovePhases(1)
	if len(ph) != 2 {
		t.Fatalf("want 2 phases for a short move, got %d", len(ph))
	}
	peak := math.Sqrt(0.3 * 1)
	if math.Abs(ph[0].Velocity-peak) > 1e-9 || math.Abs(ph[0].Progress-0.5) > 1e-9 {
		t.Fatalf("peak phase = %+v", ph[0])
	}
	if ph[1].Progress != 1 || ph[1].Velocity != 0 {
		t.Fatalf("arrival phase = %+v", ph[1])
	}
}

func TestZeroMove(t *testing.T) {
	tr := testTraits()
	if ph := tr.MovePhases(0); ph != nil {
		t.Fatalf("zero move should have no phases, got %v", ph)
	}
	if d := tr.MoveDuration(0); d != 0 {
		t.Fatalf("zero move duration = %s", d)
	}
}

func TestRotationSigns(t *testing.T) {
	tr := testTraits()
	cw := tr.RotatePhases(-math.Pi / 2)
	ccw := tr.RotatePhases(math.Pi / 2)
	if len(cw) == 0 || len(ccw) == 0 {
		t.Fatal("quarter-turn rotations should have phases")
	}
	if cw[len(cw)-1].Progress != -math.Pi/2 {
		t.Fatalf("cw final progress = %g", cw[len(cw)-1].Progress)
	}
	if ccw[len(ccw)-1].Progress != math.Pi/2 {
		t.Fatalf("ccw final progress = %g", ccw[len(ccw)-1].Progress)
	}
	if tr.RotateDuration(-math.Pi/2) != tr.RotateDuration(math.Pi/2) {
		t.Fatal("rotation duration should be symmetric in direction")
	}
}

func TestDurationMonotonicInDistance(t *testing.T) {
	tr := testTraits()
	var prev time.Duration
	for _, dist := range []float64{0.5, 1, 2, 5, 10, 50} {
		d := tr.MoveDuration(dist)
		if d <= prev {
			t.Fatalf("duration not increasing at dist=%g: %s <= %s", dist, d, prev)
		}
		prev = d
	}
}
