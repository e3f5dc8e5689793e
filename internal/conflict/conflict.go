// Package conflict detects spatial overlap between two trajectories'
// footprints over time. Both trajectories are interpolated under the shared
// piecewise-linear contract of trajectory.Motion, which is also the model the
// planner uses to time-parameterize lane traversals, so both sides agree on
// what a trajectory occupies at any instant.
package conflict

import (
	"time"

	"github.com/danielpatrickdp/fleet-traffic/internal/geometry"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
)

// #region interval
// Interval is a closed time span during which two trajectories' footprints
// overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// #endregion interval

// step is the sweep resolution. Overlaps shorter than this may be missed;
// interval endpoints are accurate to within one step.
const step = 100 * time.Millisecond

// #region between
// Between returns the time intervals where the footprints of a and b overlap
// at the same instant. Trajectories on different maps never conflict, and
// disjoint time domains yield no intervals. An empty result means no
// conflict.
func Between(a, b *trajectory.Trajectory) []Interval {
	if a.MapName() != b.MapName() {
		return nil
	}
	ma := trajectory.NewMotion(a)
	mb := trajectory.NewMotion(b)
	if ma.Empty() || mb.Empty() {
		return nil
	}

	from := laterOf(ma.StartTime(), mb.StartTime())
	until := earlierOf(ma.FinishTime(), mb.FinishTime())
	if until.Before(from) {
		return nil
	}

	var intervals []Interval
	open := false
	var start, last time.Time
	for at := from; !at.After(until); at = at.Add(step) {
		if overlapAt(ma, mb, at) {
			if !open {
				open = true
				start = at
			}
			last = at
		} else if open {
			intervals = append(intervals, Interval{Start: start, End: last})
			open = false
		}
	}
	// The final instant of the shared domain is checked explicitly so a
	// conflict at the boundary is never dropped by step quantization.
	if overlapAt(ma, mb, until) {
		if open {
			last = until
		} else {
			open = true
			start = until
			last = until
		}
	}
	if open {
		intervals = append(intervals, Interval{Start: start, End: last})
	}
	return intervals
}

func overlapAt(ma, mb *trajectory.Motion, at time.Time) bool {
	pa, sa, ok := ma.At(at)
	if !ok || sa == nil {
		return false
	}
	pb, sb, ok := mb.At(at)
	if !ok || sb == nil {
		return false
	}
	return geometry.Overlap(sa, pa[0], pa[1], pa[2], sb, pb[0], pb[1], pb[2])
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// #endregion between
