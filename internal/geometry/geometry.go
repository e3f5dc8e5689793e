// Package geometry provides the closed set of footprint shapes used for
// trajectory conflict detection: circles and axis-defined boxes, posed in the
// plane with a yaw angle. The capability surface is deliberately small:
// bounding radius, point containment, and pairwise overlap at given poses.
package geometry

import "math"

// #region shape
// Shape is a vehicle footprint. The set of implementations is closed; overlap
// logic lives in this package so callers never inspect the concrete kind.
type Shape interface {
	// BoundingRadius returns the radius of the smallest circle centered on the
	// shape's origin that encloses the footprint.
	BoundingRadius() float64

	// ContainsPoint reports whether the local-frame offset (dx, dy) lies
	// inside the footprint.
	ContainsPoint(dx, dy float64) bool

	sealed()
}

// #endregion shape

// #region circle
// Circle is a circular footprint of the given radius, in metres.
type Circle struct {
	Radius float64
}

func (c Circle) BoundingRadius() float64 { return c.Radius }

func (c Circle) ContainsPoint(dx, dy float64) bool {
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (Circle) sealed() {}

// #endregion circle

// #region box
// Box is a rectangular footprint: Width spans the local x axis, Depth the
// local y axis, both in metres and centered on the origin.
type Box struct {
	Width float64
	Depth float64
}

func (b Box) BoundingRadius() float64 {
	return math.Hypot(b.Width/2, b.Depth/2)
}

func (b Box) ContainsPoint(dx, dy float64) bool {
	return math.Abs(dx) <= b.Width/2 && math.Abs(dy) <= b.Depth/2
}

func (Box) sealed() {}

// #endregion box

// #region overlap
// Overlap reports whether shape a posed at (ax, ay, ayaw) intersects shape b
// posed at (bx, by, byaw). Circle pairs are exact; circle-box clamps the
// circle center into the box frame; box pairs use a separating-axis test.
func Overlap(a Shape, ax, ay, ayaw float64, b Shape, bx, by, byaw float64) bool {
	// Cheap rejection on bounding circles first.
	dx, dy := bx-ax, by-ay
	sum := a.BoundingRadius() + b.BoundingRadius()
	if dx*dx+dy*dy > sum*sum {
		return false
	}

	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			return true // bounding-circle test above was exact
		case Box:
			return circleBoxOverlap(sa, ax, ay, sb, bx, by, byaw)
		}
	case Box:
		switch sb := b.(type) {
		case Circle:
			return circleBoxOverlap(sb, bx, by, sa, ax, ay, ayaw)
		case Box:
			return boxBoxOverlap(sa, ax, ay, ayaw, sb, bx, by, byaw)
		}
	}
	return false
}

// circleBoxOverlap clamps the circle center into the box's local frame.
func circleBoxOverlap(c Circle, cx, cy float64, b Box, bx, by, byaw float64) bool {
	// Circle center in the box frame.
	dx, dy := rotate(cx-bx, cy-by, -byaw)
	qx := clamp(dx, -b.Width/2, b.Width/2)
	qy := clamp(dy, -b.Depth/2, b.Depth/2)
	ex, ey := dx-qx, dy-qy
	return ex*ex+ey*ey <= c.Radius*c.Radius
}

// boxBoxOverlap runs a separating-axis test over both boxes' edge normals.
func boxBoxOverlap(a Box, ax, ay, ayaw float64, b Box, bx, by, byaw float64) bool {
	ca := corners(a, ax, ay, ayaw)
	cb := corners(b, bx, by, byaw)
	for _, yaw := range []float64{ayaw, ayaw + math.Pi/2, byaw, byaw + math.Pi/2} {
		nx, ny := math.Cos(yaw), math.Sin(yaw)
		aMin, aMax := project(ca, nx, ny)
		bMin, bMax := project(cb, nx, ny)
		if aMax < bMin || bMax < aMin {
			return false
		}
	}
	return true
}

func corners(b Box, x, y, yaw float64) [4][2]float64 {
	hw, hd := b.Width/2, b.Depth/2
	local := [4][2]float64{{hw, hd}, {-hw, hd}, {-hw, -hd}, {hw, -hd}}
	var out [4][2]float64
	for i, p := range local {
		rx, ry := rotate(p[0], p[1], yaw)
		out[i] = [2]float64{x + rx, y + ry}
	}
	return out
}

func project(pts [4][2]float64, nx, ny float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range pts {
		d := p[0]*nx + p[1]*ny
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func rotate(x, y, yaw float64) (float64, float64) {
	s, c := math.Sincos(yaw)
	return x*c - y*s, x*s + y*c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion overlap
