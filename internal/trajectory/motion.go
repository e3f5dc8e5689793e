package trajectory

import (
	"sort"
	"time"

	"github.com/danielpatrickdp/fleet-traffic/internal/geometry"
)

// #region motion
// Motion is the shared interpolation contract between the planner and the
// conflict detector: position and yaw vary linearly in time between
// consecutive segment samples. The planner emits a sample at every motion
// phase boundary, so the linear model is exact while cruising and a chord of
// the true path while accelerating. A Motion is a snapshot; later mutations
// of the source trajectory do not affect it.
type Motion struct {
	times  []time.Time
	poses  [][3]float64
	shapes []geometry.Shape
}

// NewMotion snapshots a trajectory for interpolation.
func NewMotion(t *Trajectory) *Motion {
	m := &Motion{
		times:  make([]time.Time, 0, t.Size()),
		poses:  make([][3]float64, 0, t.Size()),
		shapes: make([]geometry.Shape, 0, t.Size()),
	}
	for it := t.Begin(); !it.Equal(t.End()); it = it.Next() {
		seg := it.Segment()
		m.times = append(m.times, seg.FinishTime())
		m.poses = append(m.poses, seg.FinishPosition())
		var shape geometry.Shape
		if p := seg.Profile(); p != nil {
			shape = p.Shape()
		}
		m.shapes = append(m.shapes, shape)
	}
	return m
}

// Empty reports whether the motion has no samples at all.
func (m *Motion) Empty() bool { return len(m.times) == 0 }

// StartTime returns the first sample's time. Only valid when non-empty.
func (m *Motion) StartTime() time.Time { return m.times[0] }

// FinishTime returns the last sample's time. Only valid when non-empty.
func (m *Motion) FinishTime() time.Time { return m.times[len(m.times)-1] }

// At returns the interpolated pose and the governing footprint shape at the
// given instant. ok is false outside the motion's time domain.
func (m *Motion) At(at time.Time) (pose [3]float64, shape geometry.Shape, ok bool) {
	n := len(m.times)
	if n == 0 || at.Before(m.times[0]) || at.After(m.times[n-1]) {
		return pose, nil, false
	}
	// First sample with time >= at.
	i := sort.Search(n, func(j int) bool { return !m.times[j].Before(at) })
	if m.times[i].Equal(at) || i == 0 {
		return m.poses[i], m.shapes[i], true
	}

	span := m.times[i].Sub(m.times[i-1]).Seconds()
	frac := at.Sub(m.times[i-1]).Seconds() / span
	for k := 0; k < 3; k++ {
		pose[k] = m.poses[i-1][k] + frac*(m.poses[i][k]-m.poses[i-1][k])
	}
	// The segment finishing at times[i] governs the interval leading into it.
	return pose, m.shapes[i], true
}

// #endregion motion
