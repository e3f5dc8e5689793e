// Package graph models the shared roadmap: waypoints robots may occupy and
// directed lanes they may travel, each lane optionally constraining the
// orientations permitted at its endpoints.
package graph

import (
	"fmt"
	"math"
)

// #region orientation
// OrientationConstraint is a set of permitted yaw angles at a lane endpoint.
type OrientationConstraint struct {
	yaws []float64
}

// NewOrientationConstraint returns a constraint permitting the given yaws.
// At least one yaw is required.
func NewOrientationConstraint(yaws ...float64) (*OrientationConstraint, error) {
	if len(yaws) == 0 {
		return nil, fmt.Errorf("orientation constraint: no permitted yaws")
	}
	normalized := make([]float64, len(yaws))
	for i, y := range yaws {
		normalized[i] = NormalizeAngle(y)
	}
	return &OrientationConstraint{yaws: normalized}, nil
}

// Yaws returns the permitted yaw set.
func (c *OrientationConstraint) Yaws() []float64 {
	return append([]float64(nil), c.yaws...)
}

// Apply returns the permitted yaw closest to the given yaw by angular
// distance.
func (c *OrientationConstraint) Apply(yaw float64) float64 {
	best := c.yaws[0]
	bestDist := math.Abs(AngleDiff(best, yaw))
	for _, candidate := range c.yaws[1:] {
		if d := math.Abs(AngleDiff(candidate, yaw)); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// Satisfied reports whether yaw matches any permitted yaw within tol radians.
func (c *OrientationConstraint) Satisfied(yaw, tol float64) bool {
	return math.Abs(AngleDiff(c.Apply(yaw), yaw)) <= tol
}

// #endregion orientation

// #region angles
// NormalizeAngle wraps an angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleDiff returns the signed shortest rotation from b to a, in (-π, π].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

// #endregion angles

// #region types
// Waypoint is one location on a map. Holding points are the only waypoints a
// robot may idle at while it waits out a conflict.
type Waypoint struct {
	MapName      string
	Location     [2]float64
	HoldingPoint bool
}

// Lane is a directed edge between two waypoints. Entry constrains the
// orientation a robot may hold while moving onto the lane; Exit constrains
// the orientation it must settle into on arrival. Either may be nil.
type Lane struct {
	From  int
	To    int
	Entry *OrientationConstraint
	Exit  *OrientationConstraint
}

// Graph is a roadmap of waypoints and directed lanes.
type Graph struct {
	waypoints []Waypoint
	lanes     []Lane
	lanesFrom map[int][]int // waypoint → lane indices leaving it
}

// #endregion types

// #region construction
// New returns an empty roadmap.
func New() *Graph {
	return &Graph{lanesFrom: make(map[int][]int)}
}

// AddWaypoint appends a waypoint and returns its index.
func (g *Graph) AddWaypoint(mapName string, location [2]float64, holding bool) int {
	g.waypoints = append(g.waypoints, Waypoint{
		MapName:      mapName,
		Location:     location,
		HoldingPoint: holding,
	})
	return len(g.waypoints) - 1
}

// AddLane appends an unconstrained directed lane and returns its index.
func (g *Graph) AddLane(from, to int) (int, error) {
	return g.AddLaneConstrained(from, to, nil, nil)
}

// AddLaneConstrained appends a directed lane with optional endpoint
// orientation constraints and returns its index.
func (g *Graph) AddLaneConstrained(from, to int, entry, exit *OrientationConstraint) (int, error) {
	if from < 0 || from >= len(g.waypoints) {
		return 0, fmt.Errorf("lane: source waypoint %d out of range", from)
	}
	if to < 0 || to >= len(g.waypoints) {
		return 0, fmt.Errorf("lane: target waypoint %d out of range", to)
	}
	if from == to {
		return 0, fmt.Errorf("lane: source and target are both waypoint %d", from)
	}
	g.lanes = append(g.lanes, Lane{From: from, To: to, Entry: entry, Exit: exit})
	idx := len(g.lanes) - 1
	g.lanesFrom[from] = append(g.lanesFrom[from], idx)
	return idx, nil
}

// #endregion construction

// #region queries
// NumWaypoints returns the number of waypoints.
func (g *Graph) NumWaypoints() int { return len(g.waypoints) }

// NumLanes returns the number of lanes.
func (g *Graph) NumLanes() int { return len(g.lanes) }

// Waypoint returns the waypoint at index i.
func (g *Graph) Waypoint(i int) Waypoint { return g.waypoints[i] }

// Lane returns the lane at index i.
func (g *Graph) Lane(i int) Lane { return g.lanes[i] }

// LanesFrom returns the indices of lanes leaving waypoint w, in insertion
// order.
func (g *Graph) LanesFrom(w int) []int { return g.lanesFrom[w] }

// #endregion queries
