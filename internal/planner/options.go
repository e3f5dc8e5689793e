package planner

import (
	"github.com/danielpatrickdp/fleet-traffic/internal/graph"
	"github.com/danielpatrickdp/fleet-traffic/internal/schedule"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
	"github.com/danielpatrickdp/fleet-traffic/internal/vehicle"
)

// #region options
// Options carries the collaborators a Solve call borrows: vehicle kinematics,
// the footprint profile stamped onto produced segments, the roadmap, and the
// schedule to avoid. Options never takes ownership of any of them.
type Options struct {
	traits  vehicle.Traits
	profile *trajectory.Profile
	graph   *graph.Graph
	viewer  schedule.Viewer
}

// NewOptions bundles the planning collaborators. viewer may be nil when no
// schedule is in play.
func NewOptions(traits vehicle.Traits, profile *trajectory.Profile, g *graph.Graph, viewer schedule.Viewer) *Options {
	return &Options{traits: traits, profile: profile, graph: g, viewer: viewer}
}

// SetGraph swaps the roadmap used by future Solve calls. Trajectories
// returned by earlier calls are unaffected.
func (o *Options) SetGraph(g *graph.Graph) { o.graph = g }

// Graph returns the current roadmap.
func (o *Options) Graph() *graph.Graph { return o.graph }

// Traits returns the vehicle kinematic limits.
func (o *Options) Traits() vehicle.Traits { return o.traits }

// Profile returns the footprint profile stamped onto produced segments.
func (o *Options) Profile() *trajectory.Profile { return o.profile }

// #endregion options
