package layout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
)

// Layout names.
const (
	NameTable  = "table"
	NameSphere = "sphere"
	NameHelix  = "helix"
	NameGrid   = "grid"
)

var names = []string{NameTable, NameSphere, NameHelix, NameGrid}

// Names returns the supported layout names in display order.
func Names() []string {
	return append([]string(nil), names...)
}

// Valid reports whether name is a supported layout.
func Valid(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Transform is a position and an XYZ Euler rotation in radians.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Target is the transform an element should reach in a layout.
type Target = Transform

// Layout is a named set of targets, index-aligned with the dataset it was
// generated from.
type Layout struct {
	Name    string
	Targets []Target
}

// Len returns the number of targets.
func (l Layout) Len() int { return len(l.Targets) }

// Params holds the constants used by the generators.
type Params struct {
	ColumnSpacing float64
	RowSpacing    float64
	TableOffset   mgl64.Vec2

	SphereRadius float64

	HelixRadius    float64
	HelixAngleStep float64
	HelixRise      float64
	HelixTop       float64

	GridColumns int
	GridRows    int
	GridSpacing mgl64.Vec3
	GridOrigin  mgl64.Vec3

	LookScale float64
}

// DefaultParams returns the constants of the classic periodic table demo.
func DefaultParams() Params {
	return Params{
		ColumnSpacing:  140,
		RowSpacing:     180,
		TableOffset:    mgl64.Vec2{1330, 990},
		SphereRadius:   800,
		HelixRadius:    900,
		HelixAngleStep: 0.175,
		HelixRise:      8,
		HelixTop:       450,
		GridColumns:    5,
		GridRows:       5,
		GridSpacing:    mgl64.Vec3{400, 400, 1000},
		GridOrigin:     mgl64.Vec3{-800, 800, -2000},
		LookScale:      2,
	}
}

// Option configures the generators.
type Option func(*Params)

// WithTableSpacing sets the column and row pitch of the table layout.
func WithTableSpacing(column, row float64) Option {
	return func(p *Params) { p.ColumnSpacing, p.RowSpacing = column, row }
}

// WithTableOffset sets the offset subtracted from x and added to y so the
// table is centered on the origin.
func WithTableOffset(x, y float64) Option {
	return func(p *Params) { p.TableOffset = mgl64.Vec2{x, y} }
}

// WithSphereRadius sets the sphere radius.
func WithSphereRadius(r float64) Option {
	return func(p *Params) { p.SphereRadius = r }
}

// WithHelix sets the helix radius, the angle between consecutive elements,
// the vertical distance between consecutive elements and the height of the
// first element.
func WithHelix(radius, angleStep, rise, top float64) Option {
	return func(p *Params) {
		p.HelixRadius, p.HelixAngleStep, p.HelixRise, p.HelixTop = radius, angleStep, rise, top
	}
}

// WithGrid sets the grid dimensions and cell spacing. Non-positive column or
// row counts are ignored.
func WithGrid(columns, rows int, spacing mgl64.Vec3) Option {
	return func(p *Params) {
		if columns > 0 {
			p.GridColumns = columns
		}
		if rows > 0 {
			p.GridRows = rows
		}
		p.GridSpacing = spacing
	}
}

// WithGridOrigin sets the position of the first grid cell.
func WithGridOrigin(origin mgl64.Vec3) Option {
	return func(p *Params) { p.GridOrigin = origin }
}

// WithLookScale sets the factor applied to the look-at point of the sphere
// and helix layouts.
func WithLookScale(s float64) Option {
	return func(p *Params) { p.LookScale = s }
}

func buildParams(opts []Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Generate computes the named layout for records.
// It returns a CONFIGURATION error when name is not a supported layout.
func Generate(records dataset.Dataset, name string, opts ...Option) (Layout, error) {
	p := buildParams(opts)
	switch name {
	case NameTable:
		return Layout{Name: name, Targets: table(records, p)}, nil
	case NameSphere:
		return Layout{Name: name, Targets: sphere(len(records), p)}, nil
	case NameHelix:
		return Layout{Name: name, Targets: helix(len(records), p)}, nil
	case NameGrid:
		return Layout{Name: name, Targets: grid(len(records), p)}, nil
	default:
		return Layout{}, errors.Configuration("unknown layout %q (want one of %v)", name, names)
	}
}

// All computes every supported layout for records, keyed by name.
func All(records dataset.Dataset, opts ...Option) map[string]Layout {
	all := make(map[string]Layout, len(names))
	for _, name := range names {
		l, _ := Generate(records, name, opts...)
		all[name] = l
	}
	return all
}
