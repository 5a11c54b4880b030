package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/periodix/pkg/dataset"
)

// Table places each record at its column and row, facing the viewer.
func Table(records dataset.Dataset, opts ...Option) Layout {
	return Layout{Name: NameTable, Targets: table(records, buildParams(opts))}
}

// Sphere distributes n elements evenly over a sphere, facing outward.
func Sphere(n int, opts ...Option) Layout {
	return Layout{Name: NameSphere, Targets: sphere(n, buildParams(opts))}
}

// Helix winds n elements around the Y axis, facing away from it.
func Helix(n int, opts ...Option) Layout {
	return Layout{Name: NameHelix, Targets: helix(n, buildParams(opts))}
}

// Grid stacks n elements into layers of columns x rows cells, facing the viewer.
func Grid(n int, opts ...Option) Layout {
	return Layout{Name: NameGrid, Targets: grid(n, buildParams(opts))}
}

func table(records dataset.Dataset, p Params) []Target {
	targets := make([]Target, len(records))
	for i, r := range records {
		targets[i].Position = mgl64.Vec3{
			float64(r.Column)*p.ColumnSpacing - p.TableOffset.X(),
			-float64(r.Row)*p.RowSpacing + p.TableOffset.Y(),
			0,
		}
	}
	return targets
}

func sphere(n int, p Params) []Target {
	n = max(n, 0)
	targets := make([]Target, n)
	spread := math.Sqrt(float64(n) * math.Pi)
	for i := range targets {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spread * phi
		pos := Spherical(p.SphereRadius, phi, theta)
		targets[i] = Target{
			Position: pos,
			Rotation: LookAt(pos, pos.Mul(p.LookScale)),
		}
	}
	return targets
}

func helix(n int, p Params) []Target {
	n = max(n, 0)
	targets := make([]Target, n)
	for i := range targets {
		theta := float64(i)*p.HelixAngleStep + math.Pi
		y := -float64(i)*p.HelixRise + p.HelixTop
		pos := Cylindrical(p.HelixRadius, theta, y)
		look := mgl64.Vec3{pos.X() * p.LookScale, pos.Y(), pos.Z() * p.LookScale}
		targets[i] = Target{
			Position: pos,
			Rotation: LookAt(pos, look),
		}
	}
	return targets
}

func grid(n int, p Params) []Target {
	n = max(n, 0)
	targets := make([]Target, n)
	layer := p.GridColumns * p.GridRows
	for i := range targets {
		col := i % p.GridColumns
		row := (i / p.GridColumns) % p.GridRows
		depth := i / layer
		targets[i].Position = mgl64.Vec3{
			p.GridOrigin.X() + float64(col)*p.GridSpacing.X(),
			p.GridOrigin.Y() - float64(row)*p.GridSpacing.Y(),
			p.GridOrigin.Z() + float64(depth)*p.GridSpacing.Z(),
		}
	}
	return targets
}
