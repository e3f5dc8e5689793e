// Package trajectory implements time-parameterized paths for fleet traffic
// coordination. A Trajectory is an always-sorted sequence of segments keyed
// by strictly increasing finish times. Segments live in an arena owned by the
// trajectory and are addressed through stable opaque keys, so reordering
// mutations never invalidate outstanding iterators or segment handles.
package trajectory

import (
	"sort"
	"time"
)

// #region types
type segmentKey uint64

// segmentData is the arena record behind one segment.
type segmentData struct {
	finish   time.Time
	position [3]float64 // x, y, yaw
	velocity [3]float64 // vx, vy, vyaw
	profile  *Profile
}

// Trajectory is a time-ordered sequence of segments on a named map.
// The zero value is not usable; construct with New.
type Trajectory struct {
	mapName string
	nextKey segmentKey
	arena   map[segmentKey]*segmentData
	order   []segmentKey // keys sorted ascending by finish time
}

// #endregion types

// #region constructor
// New returns an empty trajectory on the named map.
func New(mapName string) *Trajectory {
	return &Trajectory{
		mapName: mapName,
		arena:   make(map[segmentKey]*segmentData),
	}
}

// #endregion constructor

// #region queries
// MapName returns the name of the map this trajectory moves through.
func (t *Trajectory) MapName() string { return t.mapName }

// Size returns the number of segments.
func (t *Trajectory) Size() int { return len(t.order) }

// StartTime returns the earliest finish time. ok is false when empty.
func (t *Trajectory) StartTime() (time.Time, bool) {
	if len(t.order) == 0 {
		return time.Time{}, false
	}
	return t.arena[t.order[0]].finish, true
}

// FinishTime returns the latest finish time. ok is false when empty.
func (t *Trajectory) FinishTime() (time.Time, bool) {
	if len(t.order) == 0 {
		return time.Time{}, false
	}
	return t.arena[t.order[len(t.order)-1]].finish, true
}

// Duration returns the span from the first to the last finish time.
// Empty and singleton trajectories have zero duration.
func (t *Trajectory) Duration() time.Duration {
	if len(t.order) < 2 {
		return 0
	}
	first := t.arena[t.order[0]].finish
	last := t.arena[t.order[len(t.order)-1]].finish
	return last.Sub(first)
}

// Front returns a handle to the earliest segment. ok is false when empty.
func (t *Trajectory) Front() (Segment, bool) {
	if len(t.order) == 0 {
		return Segment{}, false
	}
	return Segment{t: t, key: t.order[0]}, true
}

// Back returns a handle to the latest segment. ok is false when empty.
func (t *Trajectory) Back() (Segment, bool) {
	if len(t.order) == 0 {
		return Segment{}, false
	}
	return Segment{t: t, key: t.order[len(t.order)-1]}, true
}

// #endregion queries

// #region insert
// InsertResult reports the outcome of an Insert call.
type InsertResult struct {
	It       Iterator
	Inserted bool
}

// Insert places a new segment finishing at the given time. If a segment
// already occupies exactly that time, nothing is created and the returned
// iterator points at the occupant with Inserted false.
func (t *Trajectory) Insert(finish time.Time, profile *Profile, position, velocity [3]float64) InsertResult {
	idx := t.lowerBound(finish)
	if idx < len(t.order) && t.arena[t.order[idx]].finish.Equal(finish) {
		return InsertResult{It: Iterator{t: t, key: t.order[idx]}, Inserted: false}
	}

	key := t.nextKey
	t.nextKey++
	t.arena[key] = &segmentData{
		finish:   finish,
		position: position,
		velocity: velocity,
		profile:  profile,
	}
	t.order = append(t.order, 0)
	copy(t.order[idx+1:], t.order[idx:])
	t.order[idx] = key
	return InsertResult{It: Iterator{t: t, key: key}, Inserted: true}
}

// #endregion insert

// #region erase
// Erase removes the segment the iterator refers to and returns an iterator to
// its successor, or End when the erased segment was the last one.
func (t *Trajectory) Erase(it Iterator) Iterator {
	idx := t.indexOf(it.key)
	if it.end || idx < 0 {
		return t.End()
	}
	delete(t.arena, it.key)
	t.order = append(t.order[:idx], t.order[idx+1:]...)
	if idx >= len(t.order) {
		return t.End()
	}
	return Iterator{t: t, key: t.order[idx]}
}

// #endregion erase

// #region find
// Find returns an iterator to the first segment whose finish time is not
// earlier than the given time, or End when every segment finishes before it.
func (t *Trajectory) Find(at time.Time) Iterator {
	idx := t.lowerBound(at)
	if idx >= len(t.order) {
		return t.End()
	}
	return Iterator{t: t, key: t.order[idx]}
}

// #endregion find

// #region iteration
// Begin returns an iterator to the earliest segment, or End when empty.
func (t *Trajectory) Begin() Iterator {
	if len(t.order) == 0 {
		return t.End()
	}
	return Iterator{t: t, key: t.order[0]}
}

// End returns the past-the-end sentinel, which compares greater than every
// valid iterator of this trajectory.
func (t *Trajectory) End() Iterator {
	return Iterator{t: t, end: true}
}

// #endregion iteration

// #region copy-move
// Copy returns a deep copy with independent segments. Profile handles are
// shared between the copy and the original, keeping aliasing explicit.
func (t *Trajectory) Copy() *Trajectory {
	out := New(t.mapName)
	out.nextKey = t.nextKey
	out.order = append(out.order, t.order...)
	for key, data := range t.arena {
		cp := *data
		out.arena[key] = &cp
	}
	return out
}

// TakeFrom transfers every segment of src into t in constant time, replacing
// t's previous contents. src is left valid and empty.
func (t *Trajectory) TakeFrom(src *Trajectory) {
	t.mapName = src.mapName
	t.nextKey = src.nextKey
	t.arena = src.arena
	t.order = src.order
	src.nextKey = 0
	src.arena = make(map[segmentKey]*segmentData)
	src.order = nil
}

// #endregion copy-move

// #region internal
// lowerBound returns the index of the first segment with finish >= at.
func (t *Trajectory) lowerBound(at time.Time) int {
	return sort.Search(len(t.order), func(i int) bool {
		return !t.arena[t.order[i]].finish.Before(at)
	})
}

// indexOf returns the position of key in the order slice, or -1.
func (t *Trajectory) indexOf(key segmentKey) int {
	for i, k := range t.order {
		if k == key {
			return i
		}
	}
	return -1
}

// resort restores ascending finish-time order after a time mutation,
// preserving the relative order of segments with equal times.
func (t *Trajectory) resort() {
	sort.SliceStable(t.order, func(i, j int) bool {
		return t.arena[t.order[i]].finish.Before(t.arena[t.order[j]].finish)
	})
}

// occupied reports whether any segment other than self finishes exactly at.
func (t *Trajectory) occupied(at time.Time, self segmentKey) bool {
	for key, data := range t.arena {
		if key != self && data.finish.Equal(at) {
			return true
		}
	}
	return false
}

// #endregion internal
