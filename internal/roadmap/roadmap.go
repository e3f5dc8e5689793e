// Package roadmap loads traffic maps from YAML: waypoints, lanes with optional
// orientation constraints, vehicle kinematics, and the vehicle footprint. The
// file format is the hand-editable companion to the in-memory graph.
package roadmap

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/fleet-traffic/internal/geometry"
	"github.com/danielpatrickdp/fleet-traffic/internal/graph"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
	"github.com/danielpatrickdp/fleet-traffic/internal/vehicle"
)

// #region schema
type waypointSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Holding bool    `yaml:"holding"`
}

type laneSpec struct {
	From     int       `yaml:"from"`
	To       int       `yaml:"to"`
	EntryYaw []float64 `yaml:"entry_yaws"`
	ExitYaw  []float64 `yaml:"exit_yaws"`
}

type limitsSpec struct {
	Velocity     float64 `yaml:"velocity"`
	Acceleration float64 `yaml:"acceleration"`
}

type vehicleSpec struct {
	Linear     limitsSpec `yaml:"linear"`
	Rotational limitsSpec `yaml:"rotational"`
}

type footprintSpec struct {
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
}

type roadmapSpec struct {
	Map       string         `yaml:"map"`
	Waypoints []waypointSpec `yaml:"waypoints"`
	Lanes     []laneSpec     `yaml:"lanes"`
	Vehicle   vehicleSpec    `yaml:"vehicle"`
	Footprint footprintSpec  `yaml:"footprint"`
}

// #endregion schema

// #region roadmap
// Roadmap is a fully validated traffic map ready to hand to the planner.
type Roadmap struct {
	MapName string
	Graph   *graph.Graph
	Traits  vehicle.Traits
	Profile *trajectory.Profile
}

// ParseRoadmap decodes and validates a YAML roadmap payload.
func ParseRoadmap(data []byte) (*Roadmap, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("roadmap: payload is empty")
	}
	var spec roadmapSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("roadmap: decode: %w", err)
	}
	return buildRoadmap(spec)
}

// LoadRoadmapFile reads a YAML roadmap from disk.
func LoadRoadmapFile(path string) (*Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: read %s: %w", path, err)
	}
	rm, err := ParseRoadmap(data)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %s: %w", path, err)
	}
	return rm, nil
}

// #endregion roadmap

// #region build
func buildRoadmap(spec roadmapSpec) (*Roadmap, error) {
	if spec.Map == "" {
		return nil, fmt.Errorf("roadmap: missing map name")
	}
	if len(spec.Waypoints) == 0 {
		return nil, fmt.Errorf("roadmap: no waypoints")
	}

	traits := vehicle.Traits{
		Linear: vehicle.Limits{
			Velocity:     spec.Vehicle.Linear.Velocity,
			Acceleration: spec.Vehicle.Linear.Acceleration,
		},
		Rotational: vehicle.Limits{
			Velocity:     spec.Vehicle.Rotational.Velocity,
			Acceleration: spec.Vehicle.Rotational.Acceleration,
		},
	}
	if err := traits.Validate(); err != nil {
		return nil, fmt.Errorf("roadmap: vehicle: %w", err)
	}

	profile, err := buildProfile(spec.Footprint)
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for _, wp := range spec.Waypoints {
		g.AddWaypoint(spec.Map, [2]float64{wp.X, wp.Y}, wp.Holding)
	}
	for i, lane := range spec.Lanes {
		entry, err := buildConstraint(lane.EntryYaw)
		if err != nil {
			return nil, fmt.Errorf("roadmap: lane %d entry: %w", i, err)
		}
		exit, err := buildConstraint(lane.ExitYaw)
		if err != nil {
			return nil, fmt.Errorf("roadmap: lane %d exit: %w", i, err)
		}
		if _, err := g.AddLaneConstrained(lane.From, lane.To, entry, exit); err != nil {
			return nil, fmt.Errorf("roadmap: lane %d: %w", i, err)
		}
	}

	return &Roadmap{
		MapName: spec.Map,
		Graph:   g,
		Traits:  traits,
		Profile: profile,
	}, nil
}

// buildConstraint maps an empty yaw list to "unconstrained".
func buildConstraint(yaws []float64) (*graph.OrientationConstraint, error) {
	if len(yaws) == 0 {
		return nil, nil
	}
	return graph.NewOrientationConstraint(yaws...)
}

func buildProfile(spec footprintSpec) (*trajectory.Profile, error) {
	var shape geometry.Shape
	switch spec.Kind {
	case "circle":
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("roadmap: footprint: circle radius must be positive")
		}
		shape = geometry.Circle{Radius: spec.Radius}
	case "box":
		if spec.Width <= 0 || spec.Depth <= 0 {
			return nil, fmt.Errorf("roadmap: footprint: box width and depth must be positive")
		}
		shape = geometry.Box{Width: spec.Width, Depth: spec.Depth}
	case "":
		return nil, fmt.Errorf("roadmap: footprint: missing kind")
	default:
		return nil, fmt.Errorf("roadmap: footprint: unknown kind %q", spec.Kind)
	}
	return trajectory.NewStrictProfile(shape), nil
}

// #endregion build
