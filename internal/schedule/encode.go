package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/fleet-traffic/internal/geometry"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
)

// #region specs
type shapeSpec struct {
	Kind   string  `json:"kind"` // "circle" | "box"
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
}

type profileSpec struct {
	Shape   shapeSpec `json:"shape"`
	Agency  string    `json:"agency"`
	QueueID string    `json:"queue_id,omitempty"`
}

type segmentSpec struct {
	FinishTime time.Time   `json:"finish_time"`
	Position   [3]float64  `json:"position"`
	Velocity   [3]float64  `json:"velocity"`
	Profile    profileSpec `json:"profile"`
}

type trajectorySpec struct {
	MapName  string        `json:"map_name"`
	Segments []segmentSpec `json:"segments"`
}

// #endregion specs

// #region encode
func encodeShape(s geometry.Shape) (shapeSpec, error) {
	switch shape := s.(type) {
	case geometry.Circle:
		return shapeSpec{Kind: "circle", Radius: shape.Radius}, nil
	case geometry.Box:
		return shapeSpec{Kind: "box", Width: shape.Width, Depth: shape.Depth}, nil
	}
	return shapeSpec{}, fmt.Errorf("encode shape: unknown kind %T", s)
}

func encodeProfile(p *trajectory.Profile) (profileSpec, error) {
	if p == nil {
		return profileSpec{}, fmt.Errorf("encode profile: segment has no profile")
	}
	shape, err := encodeShape(p.Shape())
	if err != nil {
		return profileSpec{}, err
	}
	spec := profileSpec{Shape: shape, Agency: p.Agency().String()}
	if id, ok := p.QueueID(); ok {
		spec.QueueID = id
	}
	return spec, nil
}

// EncodeTrajectory serializes a trajectory for storage. Profile aliasing
// across segments is not preserved: each stored segment carries its own
// profile record.
func EncodeTrajectory(t *trajectory.Trajectory) ([]byte, error) {
	spec := trajectorySpec{MapName: t.MapName()}
	for it := t.Begin(); !it.Equal(t.End()); it = it.Next() {
		seg := it.Segment()
		profile, err := encodeProfile(seg.Profile())
		if err != nil {
			return nil, fmt.Errorf("encode trajectory: %w", err)
		}
		spec.Segments = append(spec.Segments, segmentSpec{
			FinishTime: seg.FinishTime(),
			Position:   seg.FinishPosition(),
			Velocity:   seg.FinishVelocity(),
			Profile:    profile,
		})
	}
	return json.Marshal(spec)
}

// #endregion encode

// #region decode
func decodeShape(spec shapeSpec) (geometry.Shape, error) {
	switch spec.Kind {
	case "circle":
		return geometry.Circle{Radius: spec.Radius}, nil
	case "box":
		return geometry.Box{Width: spec.Width, Depth: spec.Depth}, nil
	}
	return nil, fmt.Errorf("decode shape: unknown kind %q", spec.Kind)
}

func decodeProfile(spec profileSpec) (*trajectory.Profile, error) {
	shape, err := decodeShape(spec.Shape)
	if err != nil {
		return nil, err
	}
	switch spec.Agency {
	case "strict":
		return trajectory.NewStrictProfile(shape), nil
	case "autonomous":
		return trajectory.NewAutonomousProfile(shape), nil
	case "queued":
		return trajectory.NewQueuedProfile(shape, spec.QueueID)
	}
	return nil, fmt.Errorf("decode profile: unknown agency %q", spec.Agency)
}

// DecodeTrajectory rebuilds a trajectory from its stored form.
func DecodeTrajectory(data []byte) (*trajectory.Trajectory, error) {
	var spec trajectorySpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode trajectory: %w", err)
	}
	t := trajectory.New(spec.MapName)
	for i, seg := range spec.Segments {
		profile, err := decodeProfile(seg.Profile)
		if err != nil {
			return nil, fmt.Errorf("decode trajectory segment %d: %w", i, err)
		}
		res := t.Insert(seg.FinishTime, profile, seg.Position, seg.Velocity)
		if !res.Inserted {
			return nil, fmt.Errorf("decode trajectory segment %d: duplicate finish time %s",
				i, seg.FinishTime)
		}
	}
	return t, nil
}

// #endregion decode
