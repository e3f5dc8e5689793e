package trajectory

// #region iterator
// Iterator refers to one segment's logical position within a trajectory.
// Iterators stay attached to the same logical segment across reordering
// mutations, and their relative ordering always reflects the current time
// order. The End sentinel compares greater than every valid iterator.
type Iterator struct {
	t   *Trajectory
	key segmentKey
	end bool
}

// Valid reports whether the iterator refers to a live segment.
func (it Iterator) Valid() bool {
	if it.end || it.t == nil {
		return false
	}
	_, ok := it.t.arena[it.key]
	return ok
}

// Segment returns a handle to the referenced segment.
func (it Iterator) Segment() Segment {
	return Segment{t: it.t, key: it.key}
}

// Next returns the iterator to the segment immediately after this one in the
// current time order, or End.
func (it Iterator) Next() Iterator {
	if it.end {
		return it
	}
	idx := it.t.indexOf(it.key)
	if idx < 0 || idx+1 >= len(it.t.order) {
		return it.t.End()
	}
	return Iterator{t: it.t, key: it.t.order[idx+1]}
}

// #endregion iterator

// #region comparison
// Compare orders two iterators of the same trajectory by their current
// position in time order: negative when it comes first, zero when equal,
// positive when it comes after. End sorts after everything.
func (it Iterator) Compare(other Iterator) int {
	switch {
	case it.end && other.end:
		return 0
	case it.end:
		return 1
	case other.end:
		return -1
	}
	a := it.t.indexOf(it.key)
	b := it.t.indexOf(other.key)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether both iterators refer to the same position.
func (it Iterator) Equal(other Iterator) bool { return it.Compare(other) == 0 }

// Before reports whether it precedes other in time order.
func (it Iterator) Before(other Iterator) bool { return it.Compare(other) < 0 }

// After reports whether it follows other in time order.
func (it Iterator) After(other Iterator) bool { return it.Compare(other) > 0 }

// #endregion comparison
