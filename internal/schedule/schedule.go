// Package schedule is the registry of committed trajectories the planner
// must avoid. It offers an in-memory Database for planning sessions and a
// SQLite-backed Store for schedules that outlive a process.
package schedule

import (
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
	"github.com/google/uuid"
)

// #region contract
// Predicate selects trajectories from a schedule query.
type Predicate func(*trajectory.Trajectory) bool

// Everything matches every committed trajectory.
func Everything() Predicate {
	return func(*trajectory.Trajectory) bool { return true }
}

// OnMap matches trajectories on the named map.
func OnMap(mapName string) Predicate {
	return func(t *trajectory.Trajectory) bool { return t.MapName() == mapName }
}

// Viewer is the read side of a schedule, consumed by the planner.
type Viewer interface {
	Query(Predicate) []*trajectory.Trajectory
}

// Writer is the write side of a schedule, used by callers committing plans.
type Writer interface {
	Insert(*trajectory.Trajectory) (string, error)
}

// #endregion contract

// #region database
// Database is an in-memory schedule. Entries are stored as deep copies, so a
// caller mutating its trajectory after Insert does not disturb the schedule.
type Database struct {
	ids     []string
	entries []*trajectory.Trajectory
}

// NewDatabase returns an empty in-memory schedule.
func NewDatabase() *Database {
	return &Database{}
}

// Insert commits a copy of the trajectory and returns its entry id.
func (d *Database) Insert(t *trajectory.Trajectory) (string, error) {
	id := uuid.New().String()
	d.ids = append(d.ids, id)
	d.entries = append(d.entries, t.Copy())
	return id, nil
}

// Query returns the committed trajectories matching the predicate, in
// insertion order. Callers must treat the results as read-only.
func (d *Database) Query(pred Predicate) []*trajectory.Trajectory {
	var out []*trajectory.Trajectory
	for _, t := range d.entries {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Size returns the number of committed entries.
func (d *Database) Size() int { return len(d.entries) }

// #endregion database
