package trajectory

import (
	"fmt"

	"github.com/danielpatrickdp/fleet-traffic/internal/geometry"
)

// #region agency
// Agency describes how a trajectory participant yields right of way.
type Agency int

const (
	// Strict participants follow their schedule exactly and must not be
	// delayed by others.
	Strict Agency = iota
	// Autonomous participants may adapt their own timing to resolve conflicts.
	Autonomous
	// Queued participants yield within a named queue.
	Queued
)

func (a Agency) String() string {
	switch a {
	case Strict:
		return "strict"
	case Autonomous:
		return "autonomous"
	case Queued:
		return "queued"
	}
	return fmt.Sprintf("agency(%d)", int(a))
}

// #endregion agency

// #region profile
// Profile pairs a footprint shape with a right-of-way agency. Profiles attach
// to segments as shared handles: every segment holding the same *Profile
// observes mutations made through any of them.
type Profile struct {
	shape   geometry.Shape
	agency  Agency
	queueID string
}

// NewStrictProfile returns a profile with Strict agency.
func NewStrictProfile(shape geometry.Shape) *Profile {
	return &Profile{shape: shape, agency: Strict}
}

// NewAutonomousProfile returns a profile with Autonomous agency.
func NewAutonomousProfile(shape geometry.Shape) *Profile {
	return &Profile{shape: shape, agency: Autonomous}
}

// NewQueuedProfile returns a profile that yields within the named queue.
// An empty queue id is rejected with ErrInvalidArgument.
func NewQueuedProfile(shape geometry.Shape, queueID string) (*Profile, error) {
	if queueID == "" {
		return nil, fmt.Errorf("queued profile: %w: empty queue id", ErrInvalidArgument)
	}
	return &Profile{shape: shape, agency: Queued, queueID: queueID}, nil
}

// Shape returns the footprint shape.
func (p *Profile) Shape() geometry.Shape { return p.shape }

// Agency returns the current right-of-way agency.
func (p *Profile) Agency() Agency { return p.agency }

// QueueID returns the queue id and whether the profile is currently queued.
func (p *Profile) QueueID() (string, bool) {
	return p.queueID, p.agency == Queued
}

// SetShape swaps the footprint without touching the agency.
func (p *Profile) SetShape(shape geometry.Shape) { p.shape = shape }

// SetToStrict switches the agency to Strict and clears any queue id.
func (p *Profile) SetToStrict() {
	p.agency = Strict
	p.queueID = ""
}

// SetToAutonomous switches the agency to Autonomous and clears any queue id.
func (p *Profile) SetToAutonomous() {
	p.agency = Autonomous
	p.queueID = ""
}

// SetToQueued switches the agency to Queued under the named queue.
// An empty queue id is rejected with ErrInvalidArgument and the profile is
// left unchanged.
func (p *Profile) SetToQueued(queueID string) error {
	if queueID == "" {
		return fmt.Errorf("queued profile: %w: empty queue id", ErrInvalidArgument)
	}
	p.agency = Queued
	p.queueID = queueID
	return nil
}

// #endregion profile
