package trajectory

import (
	"fmt"
	"time"
)

// #region segment
// Segment is a stable handle to one scheduled sample inside a trajectory.
// It stays attached to the same logical sample across reordering mutations.
// The zero value is not a valid handle.
type Segment struct {
	t   *Trajectory
	key segmentKey
}

// Valid reports whether the handle still refers to a live segment.
func (s Segment) Valid() bool {
	if s.t == nil {
		return false
	}
	_, ok := s.t.arena[s.key]
	return ok
}

func (s Segment) data() *segmentData {
	d, ok := s.t.arena[s.key]
	if !ok {
		panic("trajectory: segment handle refers to an erased segment")
	}
	return d
}

// #endregion segment

// #region getters
// FinishTime returns the instant this segment's motion completes.
func (s Segment) FinishTime() time.Time { return s.data().finish }

// FinishPosition returns the pose (x, y, yaw) at the finish time.
func (s Segment) FinishPosition() [3]float64 { return s.data().position }

// FinishVelocity returns the velocity (vx, vy, vyaw) at the finish time.
func (s Segment) FinishVelocity() [3]float64 { return s.data().velocity }

// Profile returns the shared profile handle attached to this segment.
func (s Segment) Profile() *Profile { return s.data().profile }

// #endregion getters

// #region setters
// SetFinishPosition replaces the finish pose. Never affects ordering.
func (s Segment) SetFinishPosition(position [3]float64) {
	s.data().position = position
}

// SetFinishVelocity replaces the finish velocity. Never affects ordering.
func (s Segment) SetFinishVelocity(velocity [3]float64) {
	s.data().velocity = velocity
}

// SetProfile attaches a different shared profile handle to this segment.
func (s Segment) SetProfile(p *Profile) {
	s.data().profile = p
}

// SetFinishTime moves this segment to a new finish time, relocating it within
// the trajectory while every other segment keeps its relative order and every
// outstanding handle keeps its logical referent. If another segment occupies
// exactly the requested time the call fails with ErrTimeConflict and the
// trajectory is left untouched.
func (s Segment) SetFinishTime(at time.Time) error {
	d := s.data()
	if d.finish.Equal(at) {
		return nil
	}
	if s.t.occupied(at, s.key) {
		return fmt.Errorf("set finish time %s: %w", at, ErrTimeConflict)
	}
	d.finish = at
	s.t.resort()
	return nil
}

// AdjustFinishTimes shifts this segment's finish time and the finish time of
// every later segment by delta, leaving strictly earlier segments untouched.
// The shift is uniform across the whole suffix, so relative order within the
// shifted set is always preserved and the call succeeds for any delta,
// including large negative values.
func (s Segment) AdjustFinishTimes(delta time.Duration) {
	idx := s.t.indexOf(s.key)
	if idx < 0 {
		return
	}
	for _, key := range s.t.order[idx:] {
		d := s.t.arena[key]
		d.finish = d.finish.Add(delta)
	}
	s.t.resort()
}

// #endregion setters
