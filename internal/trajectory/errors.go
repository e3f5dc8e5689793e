package trajectory

import "errors"

// #region errors
var (
	// ErrInvalidArgument reports a caller-supplied value that violates a
	// construction invariant, such as an empty queue id.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTimeConflict reports an attempt to move a segment onto a finish time
	// already occupied by another segment of the same trajectory.
	ErrTimeConflict = errors.New("finish time already occupied")
)

// #endregion errors
