// Package vehicle models the kinematic limits used to time-parameterize
// roadmap motions: rest-to-rest straight moves and in-place rotations under a
// constant-acceleration trapezoidal profile.
package vehicle

import (
	"fmt"
	"math"
	"time"
)

// #region traits
// Limits bounds one degree of freedom.
type Limits struct {
	Velocity     float64 // m/s, or rad/s for rotation
	Acceleration float64 // m/s², or rad/s² for rotation
}

// Traits holds the kinematic limits of a vehicle.
type Traits struct {
	Linear     Limits
	Rotational Limits
}

// Validate rejects non-positive limits.
func (t Traits) Validate() error {
	for _, l := range []struct {
		name string
		lim  Limits
	}{{"linear", t.Linear}, {"rotational", t.Rotational}} {
		if l.lim.Velocity <= 0 || l.lim.Acceleration <= 0 {
			return fmt.Errorf("vehicle traits: %s limits must be positive, got v=%g a=%g",
				l.name, l.lim.Velocity, l.lim.Acceleration)
		}
	}
	return nil
}

// #endregion traits

// #region phases
// Phase is one boundary sample of a motion profile: the state at the end of
// an acceleration, cruise, or deceleration stretch. Progress and Velocity are
// signed for rotations.
type Phase struct {
	Elapsed  float64 // seconds since the motion started
	Progress float64 // metres or radians covered so far
	Velocity float64 // speed at this sample
}

// phases computes the trapezoidal profile over a non-negative magnitude.
// Short moves that never reach the velocity limit become triangular.
func phases(lim Limits, magnitude float64) []Phase {
	if magnitude <= 0 {
		return nil
	}
	v, a := lim.Velocity, lim.Acceleration
	accelDist := v * v / (2 * a)

	if magnitude < 2*accelDist {
		peak := math.Sqrt(a * magnitude)
		t1 := peak / a
		return []Phase{
			{Elapsed: t1, Progress: magnitude / 2, Velocity: peak},
			{Elapsed: 2 * t1, Progress: magnitude, Velocity: 0},
		}
	}

	t1 := v / a
	cruise := (magnitude - 2*accelDist) / v
	out := []Phase{{Elapsed: t1, Progress: accelDist, Velocity: v}}
	if cruise > 0 {
		out = append(out, Phase{Elapsed: t1 + cruise, Progress: magnitude - accelDist, Velocity: v})
	}
	out = append(out, Phase{Elapsed: 2*t1 + cruise, Progress: magnitude, Velocity: 0})
	return out
}

// MovePhases returns the boundary samples of a rest-to-rest straight move
// covering dist metres. Nil when dist is not positive.
func (t Traits) MovePhases(dist float64) []Phase {
	return phases(t.Linear, dist)
}

// MoveDuration returns the total time of a rest-to-rest move over dist metres.
func (t Traits) MoveDuration(dist float64) time.Duration {
	ph := t.MovePhases(dist)
	if len(ph) == 0 {
		return 0
	}
	return secondsToDuration(ph[len(ph)-1].Elapsed)
}

// RotatePhases returns the boundary samples of an in-place rotation by dYaw
// radians. Progress and Velocity carry dYaw's sign. Nil when dYaw is zero.
func (t Traits) RotatePhases(dYaw float64) []Phase {
	ph := phases(t.Rotational, math.Abs(dYaw))
	if dYaw < 0 {
		for i := range ph {
			ph[i].Progress = -ph[i].Progress
			ph[i].Velocity = -ph[i].Velocity
		}
	}
	return ph
}

// RotateDuration returns the total time of an in-place rotation by dYaw.
func (t Traits) RotateDuration(dYaw float64) time.Duration {
	ph := t.RotatePhases(dYaw)
	if len(ph) == 0 {
		return 0
	}
	return secondsToDuration(ph[len(ph)-1].Elapsed)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// #endregion phases
