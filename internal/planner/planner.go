// Package planner synthesizes conflict-free trajectories over a shared
// roadmap. Solve runs a time-aware best-first search across lanes: every
// candidate lane traversal is time-parameterized under the vehicle's
// kinematic limits, checked against each trajectory committed to the
// schedule, and delayed at holding points when a conflict blocks it.
package planner

import (
	"container/heap"
	"math"
	"time"

	"github.com/danielpatrickdp/fleet-traffic/internal/conflict"
	"github.com/danielpatrickdp/fleet-traffic/internal/graph"
	"github.com/danielpatrickdp/fleet-traffic/internal/schedule"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
)

// #region tuning
const (
	// yawTolerance is the angular slack when matching requested orientations.
	yawTolerance = 1e-3

	// waitStep is the granularity of departure delays at holding points.
	waitStep = time.Second

	// maxWaitSteps caps how long a single expansion will wait out a conflict.
	maxWaitSteps = 300

	// horizon bounds the search in time past the initial instant, keeping
	// the state space finite even on roadmaps with wait cycles.
	horizon = 30 * time.Minute
)

// #endregion tuning

// #region state
// sample is one interpolation point of a candidate motion.
type sample struct {
	at   time.Time
	pose [3]float64
	vel  [3]float64
}

// node is one search state: a waypoint reached at a time with an orientation,
// plus the samples contributed by the expansion that reached it.
type node struct {
	waypoint int
	yaw      float64
	arrival  time.Time
	samples  []sample // appended by this node's expansion; last one is the arrival
	parent   *node
	order    int // discovery order, the deterministic tie-break
}

func (n *node) last() sample { return n.samples[len(n.samples)-1] }

// stateKey identifies an expanded state by waypoint and quantized yaw. The
// first pop of a key is its earliest arrival, so later arrivals at the same
// pose are pruned and the state space stays bounded by the roadmap itself.
type stateKey struct {
	waypoint int
	yawMilli int32
}

func keyOf(n *node) stateKey {
	return stateKey{
		waypoint: n.waypoint,
		yawMilli: int32(math.Round(graph.NormalizeAngle(n.yaw) * 1000)),
	}
}

// openSet is a min-heap over total elapsed time, ties broken by discovery
// order so runs are deterministic.
type openSet []*node

func (s openSet) Len() int { return len(s) }
func (s openSet) Less(i, j int) bool {
	if !s[i].arrival.Equal(s[j].arrival) {
		return s[i].arrival.Before(s[j].arrival)
	}
	return s[i].order < s[j].order
}
func (s openSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s *openSet) Push(x any)        { *s = append(*s, x.(*node)) }
func (s *openSet) Pop() any {
	old := *s
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

// #endregion state

// #region solver
type solver struct {
	opts        *Options
	mapName     string
	initialTime time.Time
	obstacles   []*trajectory.Trajectory
	counter     int
	visited     map[stateKey]bool
}

// Solve plans a trajectory from the start waypoint, facing startYaw at
// initialTime, to the goal waypoint. A non-nil goalYaw requests that the
// final orientation match *goalYaw; on success the resolved orientation is
// written back through it. The boolean result reports planning success;
// failure is an ordinary outcome, reached when the search exhausts every
// time-increasing state without touching the goal.
func Solve(initialTime time.Time, startWaypoint int, startYaw float64, goalWaypoint int, goalYaw *float64, opts *Options) (*trajectory.Trajectory, bool) {
	g := opts.graph
	if g == nil || startWaypoint < 0 || startWaypoint >= g.NumWaypoints() ||
		goalWaypoint < 0 || goalWaypoint >= g.NumWaypoints() {
		return nil, false
	}
	if err := opts.traits.Validate(); err != nil {
		return nil, false
	}

	s := &solver{
		opts:        opts,
		mapName:     g.Waypoint(startWaypoint).MapName,
		initialTime: initialTime,
		visited:     make(map[stateKey]bool),
	}
	if opts.viewer != nil {
		s.obstacles = opts.viewer.Query(schedule.Everything())
	}

	startPose := pose(g.Waypoint(startWaypoint).Location, graph.NormalizeAngle(startYaw))
	start := &node{
		waypoint: startWaypoint,
		yaw:      startPose[2],
		arrival:  initialTime,
		samples:  []sample{{at: initialTime, pose: startPose}},
	}

	// Trivial case: already at the goal.
	if startWaypoint == goalWaypoint {
		if goalYaw == nil || math.Abs(graph.AngleDiff(start.yaw, *goalYaw)) <= yawTolerance {
			if goalYaw != nil {
				*goalYaw = start.yaw
			}
			return trajectory.New(s.mapName), true
		}
		final := s.rotateInPlace(start, graph.NormalizeAngle(*goalYaw))
		if final == nil {
			return nil, false
		}
		*goalYaw = final.yaw
		return s.assemble(final), true
	}

	open := openSet{start}
	heap.Init(&open)

	for open.Len() > 0 {
		n := heap.Pop(&open).(*node)
		key := keyOf(n)
		if s.visited[key] {
			continue
		}
		s.visited[key] = true

		if n.waypoint == goalWaypoint {
			final := n
			if goalYaw != nil && math.Abs(graph.AngleDiff(n.yaw, *goalYaw)) > yawTolerance {
				final = s.rotateInPlace(n, graph.NormalizeAngle(*goalYaw))
				if final == nil {
					continue // goal reached but the docking turn is blocked; keep searching
				}
			}
			if goalYaw != nil {
				*goalYaw = final.yaw
			}
			return s.assemble(final), true
		}

		for _, laneIdx := range s.opts.graph.LanesFrom(n.waypoint) {
			next := s.expand(n, s.opts.graph.Lane(laneIdx))
			if next == nil || s.visited[keyOf(next)] {
				continue
			}
			if next.arrival.Sub(s.initialTime) > horizon {
				continue
			}
			heap.Push(&open, next)
		}
	}
	return nil, false
}

// #endregion solver

// #region expand
// expand attempts to traverse one lane from n, delaying departure at holding
// points until the motion is clear of every scheduled trajectory. Returns nil
// when the lane cannot be traversed conflict-free within the wait budget.
func (s *solver) expand(n *node, lane graph.Lane) *node {
	g := s.opts.graph
	from := g.Waypoint(lane.From).Location
	to := g.Waypoint(lane.To).Location
	dx, dy := to[0]-from[0], to[1]-from[1]
	dist := math.Hypot(dx, dy)
	laneYaw := math.Atan2(dy, dx)

	travelYaw := laneYaw
	if lane.Entry != nil {
		travelYaw = lane.Entry.Apply(laneYaw)
	}
	arrivalYaw := travelYaw
	if lane.Exit != nil {
		arrivalYaw = lane.Exit.Apply(travelYaw)
	}

	maxWait := 0
	if g.Waypoint(lane.From).HoldingPoint {
		maxWait = maxWaitSteps
	}

	for wait := 0; wait <= maxWait; wait++ {
		depart := n.arrival.Add(time.Duration(wait) * waitStep)
		if depart.Sub(s.initialTime) > horizon {
			return nil
		}

		var run []sample
		if wait > 0 {
			run = append(run, sample{at: depart, pose: n.last().pose})
		}
		cur := depart
		yaw := n.yaw

		// Turn to face the lane, traverse it, then settle into any exit
		// orientation the lane demands.
		run, cur, yaw = s.appendRotation(run, cur, from, yaw, travelYaw)
		run, cur = s.appendTranslation(run, cur, from, dx/dist, dy/dist, dist, yaw)
		run, cur, yaw = s.appendRotation(run, cur, to, yaw, arrivalYaw)

		if !s.clear(n.last(), run) {
			continue
		}
		s.counter++
		return &node{
			waypoint: lane.To,
			yaw:      yaw,
			arrival:  cur,
			samples:  run,
			parent:   n,
			order:    s.counter,
		}
	}
	return nil
}

// rotateInPlace appends an in-place rotation to targetYaw at n's waypoint,
// waiting out conflicts only when the waypoint is a holding point.
func (s *solver) rotateInPlace(n *node, targetYaw float64) *node {
	if math.Abs(graph.AngleDiff(targetYaw, n.yaw)) <= yawTolerance {
		return n
	}
	loc := s.opts.graph.Waypoint(n.waypoint).Location
	maxWait := 0
	if s.opts.graph.Waypoint(n.waypoint).HoldingPoint {
		maxWait = maxWaitSteps
	}
	for wait := 0; wait <= maxWait; wait++ {
		depart := n.arrival.Add(time.Duration(wait) * waitStep)
		if depart.Sub(s.initialTime) > horizon {
			return nil
		}
		var run []sample
		if wait > 0 {
			run = append(run, sample{at: depart, pose: n.last().pose})
		}
		run, cur, yaw := s.appendRotation(run, depart, loc, n.yaw, targetYaw)
		if !s.clear(n.last(), run) {
			continue
		}
		s.counter++
		return &node{
			waypoint: n.waypoint,
			yaw:      yaw,
			arrival:  cur,
			samples:  run,
			parent:   n,
			order:    s.counter,
		}
	}
	return nil
}

// appendRotation emits the phase samples of an in-place turn from yaw to
// targetYaw at the given location. No-op when the yaws already match.
func (s *solver) appendRotation(run []sample, cur time.Time, loc [2]float64, yaw, targetYaw float64) ([]sample, time.Time, float64) {
	delta := graph.AngleDiff(targetYaw, yaw)
	if math.Abs(delta) <= yawTolerance {
		return run, cur, yaw
	}
	phases := s.opts.traits.RotatePhases(delta)
	var end time.Time
	for i, ph := range phases {
		end = cur.Add(seconds(ph.Elapsed))
		p := pose(loc, yaw+ph.Progress)
		if i == len(phases)-1 {
			p[2] = graph.NormalizeAngle(targetYaw)
		}
		run = append(run, sample{at: end, pose: p, vel: [3]float64{0, 0, ph.Velocity}})
	}
	return run, end, graph.NormalizeAngle(targetYaw)
}

// appendTranslation emits the phase samples of a straight rest-to-rest move
// of dist metres along the unit direction (ux, uy), holding yaw fixed.
func (s *solver) appendTranslation(run []sample, cur time.Time, from [2]float64, ux, uy, dist, yaw float64) ([]sample, time.Time) {
	end := cur
	for _, ph := range s.opts.traits.MovePhases(dist) {
		end = cur.Add(seconds(ph.Elapsed))
		run = append(run, sample{
			at:   end,
			pose: [3]float64{from[0] + ux*ph.Progress, from[1] + uy*ph.Progress, yaw},
			vel:  [3]float64{ux * ph.Velocity, uy * ph.Velocity, 0},
		})
	}
	return run, end
}

// #endregion expand

// #region conflict-check
// clear reports whether the candidate run, anchored at the state it departs
// from, avoids every scheduled trajectory. The anchor sample is included so
// the stationary stretch before a delayed departure is checked too.
func (s *solver) clear(anchor sample, run []sample) bool {
	if len(s.obstacles) == 0 {
		return true
	}
	cand := trajectory.New(s.mapName)
	s.insertSample(cand, anchor)
	for _, smp := range run {
		s.insertSample(cand, smp)
	}
	for _, obstacle := range s.obstacles {
		if len(conflict.Between(cand, obstacle)) > 0 {
			return false
		}
	}
	return true
}

func (s *solver) insertSample(t *trajectory.Trajectory, smp sample) {
	t.Insert(smp.at, s.opts.profile, smp.pose, smp.vel)
}

// #endregion conflict-check

// #region assemble
// assemble concatenates the sample runs along the parent chain into the
// solution trajectory.
func (s *solver) assemble(n *node) *trajectory.Trajectory {
	var chain []*node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	out := trajectory.New(s.mapName)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, smp := range chain[i].samples {
			s.insertSample(out, smp)
		}
	}
	return out
}

func pose(loc [2]float64, yaw float64) [3]float64 {
	return [3]float64{loc[0], loc[1], yaw}
}

func seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}

// #endregion assemble
