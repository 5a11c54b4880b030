package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target from Position.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical field of view in degrees
	Near     float64
	Far      float64
}

// DefaultCamera returns a camera 3000 units in front of the origin with a
// 40 degree field of view.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl64.Vec3{0, 0, 3000},
		Up:       mgl64.Vec3{0, 1, 0},
		FOV:      40,
		Near:     0.1,
		Far:      10000,
	}
}

// Projection is a world point mapped onto a viewport.
type Projection struct {
	Index int
	// X and Y are viewport coordinates with the origin at the top left.
	X, Y float64
	// Scale is the number of viewport units per world unit at the point's
	// depth.
	Scale float64
	// Depth is the distance from the camera along its view axis.
	Depth float64
}

// Project maps p onto a width x height viewport. It reports false when p
// lies outside the near and far planes or the viewport is empty.
func (c Camera) Project(p mgl64.Vec3, width, height float64) (Projection, bool) {
	if width <= 0 || height <= 0 {
		return Projection{}, false
	}
	fov := mgl64.DegToRad(c.FOV)
	view := mgl64.LookAtV(c.Position, c.Target, c.Up)
	proj := mgl64.Perspective(fov, width/height, c.Near, c.Far)

	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	depth := clip.W()
	if depth < c.Near || depth > c.Far {
		return Projection{}, false
	}
	ndc := clip.Vec3().Mul(1 / depth)

	focal := 1 / math.Tan(fov/2)
	return Projection{
		X:     (ndc.X() + 1) / 2 * width,
		Y:     (1 - ndc.Y()) / 2 * height,
		Scale: focal / depth * height / 2,
		Depth: depth,
	}, true
}

// ProjectAll projects every point and returns the visible ones ordered from
// back to front. Index refers to the position in points.
func (c Camera) ProjectAll(points []mgl64.Vec3, width, height float64) []Projection {
	out := make([]Projection, 0, len(points))
	for i, p := range points {
		if pr, ok := c.Project(p, width, height); ok {
			pr.Index = i
			out = append(out, pr)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Depth > out[b].Depth })
	return out
}

// ProjectCard projects the corners of a width x height rectangle centred on
// center and turned by rot, which maps the card's local axes to world axes.
// Corners are returned counter-clockwise from the bottom left, as seen from
// the card's front (+z). It reports false unless every corner is visible.
func (c Camera) ProjectCard(center mgl64.Vec3, rot mgl64.Mat3, size mgl64.Vec2, width, height float64) ([4]Projection, bool) {
	hw, hh := size.X()/2, size.Y()/2
	local := [4]mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}

	var out [4]Projection
	for i, l := range local {
		p, ok := c.Project(center.Add(rot.Mul3x1(l)), width, height)
		if !ok {
			return out, false
		}
		p.Index = i
		out[i] = p
	}
	return out, true
}

// Orbit returns the camera turned around its target by yaw radians about
// the up axis and then pitch radians about the camera's right axis. The
// distance to the target is preserved.
func (c Camera) Orbit(yaw, pitch float64) Camera {
	offset := c.Position.Sub(c.Target)
	up := c.Up.Normalize()

	offset = mgl64.HomogRotate3D(yaw, up).Mul4x1(offset.Vec4(0)).Vec3()
	// Looking straight along the up axis leaves no right axis to pitch about.
	if right := up.Cross(offset); right.Len() > 1e-9 {
		offset = mgl64.HomogRotate3D(pitch, right.Normalize()).Mul4x1(offset.Vec4(0)).Vec3()
	}

	c.Position = c.Target.Add(offset)
	return c
}
