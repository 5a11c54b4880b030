package layout

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
)

const tol = 1e-9

// vecWithin reports whether a and b agree per component within abs. Near
// zero, float noise such as cos(pi/2) defeats relative comparisons.
func vecWithin(a, b mgl64.Vec3, abs float64) bool {
	for k := range a {
		if !scalar.EqualWithinAbs(a[k], b[k], abs) {
			return false
		}
	}
	return true
}

func matWithin(a, b mgl64.Mat3, abs float64) bool {
	for k := range a {
		if !scalar.EqualWithinAbs(a[k], b[k], abs) {
			return false
		}
	}
	return true
}

func records(t *testing.T, n int) dataset.Dataset {
	t.Helper()
	d, err := dataset.Builtin().Take(n)
	if err != nil {
		t.Fatalf("Take(%d): %v", n, err)
	}
	return d
}

func TestGenerateTargetCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 25, 26, 118} {
		d := records(t, n)
		for _, name := range Names() {
			l, err := Generate(d, name)
			if err != nil {
				t.Fatalf("Generate(%d, %q) error = %v", n, name, err)
			}
			if l.Len() != n {
				t.Errorf("Generate(%d, %q) targets = %d, want %d", n, name, l.Len(), n)
			}
			if l.Name != name {
				t.Errorf("Name = %q, want %q", l.Name, name)
			}
		}
	}
}

func TestGenerateUnknownName(t *testing.T) {
	_, err := Generate(records(t, 10), "cube")
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("Generate(cube) error = %v, want CONFIGURATION", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	d := dataset.Builtin()
	for _, name := range Names() {
		a, _ := Generate(d, name)
		b, _ := Generate(d, name)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Generate(%q) not deterministic (-first +second):\n%s", name, diff)
		}
	}
}

func TestAll(t *testing.T) {
	d := dataset.Builtin()
	all := All(d)
	if len(all) != 4 {
		t.Fatalf("len(All()) = %d, want 4", len(all))
	}
	for _, name := range Names() {
		single, _ := Generate(d, name)
		if diff := cmp.Diff(single, all[name]); diff != "" {
			t.Errorf("All()[%q] differs from Generate (-want +got):\n%s", name, diff)
		}
	}
}

func TestNegativeCountIsEmpty(t *testing.T) {
	for _, l := range []Layout{Sphere(-3), Helix(-3), Grid(-3)} {
		if l.Len() != 0 {
			t.Errorf("%s(-3) targets = %d, want 0", l.Name, l.Len())
		}
	}
}

func TestTable(t *testing.T) {
	d := dataset.Dataset{
		{Symbol: "H", Column: 1, Row: 1},
		{Symbol: "He", Column: 18, Row: 1},
		{Symbol: "Lr", Column: 18, Row: 10},
	}
	l := Table(d)

	want := []mgl64.Vec3{
		{140 - 1330, -180 + 990, 0},
		{18*140 - 1330, -180 + 990, 0},
		{18*140 - 1330, -10*180 + 990, 0},
	}
	for i, w := range want {
		if l.Targets[i].Position != w {
			t.Errorf("Targets[%d].Position = %v, want %v", i, l.Targets[i].Position, w)
		}
		if l.Targets[i].Rotation != (mgl64.Vec3{}) {
			t.Errorf("Targets[%d].Rotation = %v, want identity", i, l.Targets[i].Rotation)
		}
	}
}

func TestTableWithOptions(t *testing.T) {
	l := Table(dataset.Dataset{{Symbol: "X", Column: 2, Row: 3}}, WithTableSpacing(10, 20), WithTableOffset(5, 7))
	want := mgl64.Vec3{2*10 - 5, -3*20 + 7, 0}
	if got := l.Targets[0].Position; got != want {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestSphereRadius(t *testing.T) {
	for _, n := range []int{1, 2, 7, 118, 500} {
		for _, r := range []float64{800, 1} {
			l := Sphere(n, WithSphereRadius(r))
			for i, tg := range l.Targets {
				if d := tg.Position.Len(); !scalar.EqualWithinAbsOrRel(d, r, tol, tol) {
					t.Errorf("Sphere(%d, r=%v)[%d] distance = %v, want %v", n, r, i, d, r)
				}
			}
		}
	}
}

func TestSphereFacesOutward(t *testing.T) {
	l := Sphere(118)
	for i, tg := range l.Targets {
		forward := RotationMatrix(tg.Rotation).Mul3x1(mgl64.Vec3{0, 0, 1})
		if !vecWithin(forward, tg.Position.Normalize(), 1e-9) {
			t.Errorf("Sphere[%d] forward = %v, want %v", i, forward, tg.Position.Normalize())
		}
	}
}

func TestHelixFirstElement(t *testing.T) {
	l := Helix(3)
	want := Cylindrical(900, math.Pi, 450)
	if got := l.Targets[0].Position; got != want {
		t.Errorf("Helix[0].Position = %v, want %v", got, want)
	}

	p := l.Targets[0].Position
	azimuth := math.Atan2(p.X(), p.Z())
	if !scalar.EqualWithinAbs(math.Abs(azimuth), math.Pi, tol) {
		t.Errorf("Helix[0] azimuth = %v, want pi", azimuth)
	}
	if p.Y() != 450 {
		t.Errorf("Helix[0] height = %v, want 450", p.Y())
	}
}

func TestHelixSteps(t *testing.T) {
	l := Helix(50, WithHelix(100, 0.5, 10, 0))
	for i, tg := range l.Targets {
		p := tg.Position
		if r := math.Hypot(p.X(), p.Z()); !scalar.EqualWithinAbs(r, 100, tol) {
			t.Errorf("Helix[%d] radius = %v, want 100", i, r)
		}
		if want := -10 * float64(i); p.Y() != want {
			t.Errorf("Helix[%d] height = %v, want %v", i, p.Y(), want)
		}
	}
}

func TestHelixFacesAwayFromAxis(t *testing.T) {
	l := Helix(118)
	for i, tg := range l.Targets {
		p := tg.Position
		outward := mgl64.Vec3{p.X(), 0, p.Z()}.Normalize()
		forward := RotationMatrix(tg.Rotation).Mul3x1(mgl64.Vec3{0, 0, 1})
		if !vecWithin(forward, outward, 1e-9) {
			t.Errorf("Helix[%d] forward = %v, want %v", i, forward, outward)
		}
	}
}

func TestGrid(t *testing.T) {
	l := Grid(60)
	tests := []struct {
		index int
		want  mgl64.Vec3
	}{
		{0, mgl64.Vec3{-800, 800, -2000}},
		{4, mgl64.Vec3{800, 800, -2000}},
		{5, mgl64.Vec3{-800, 400, -2000}},
		{24, mgl64.Vec3{800, -800, -2000}},
		{25, mgl64.Vec3{-800, 800, -1000}},
		{57, mgl64.Vec3{0, 400, 0}},
	}
	for _, tt := range tests {
		tg := l.Targets[tt.index]
		if tg.Position != tt.want {
			t.Errorf("Grid[%d].Position = %v, want %v", tt.index, tg.Position, tt.want)
		}
		if tg.Rotation != (mgl64.Vec3{}) {
			t.Errorf("Grid[%d].Rotation = %v, want identity", tt.index, tg.Rotation)
		}
	}
}

func TestGridIndependentOfCount(t *testing.T) {
	small, large := Grid(10), Grid(118)
	if diff := cmp.Diff(small.Targets, large.Targets[:10]); diff != "" {
		t.Errorf("Grid prefix depends on n (-small +large):\n%s", diff)
	}
}

func TestWithGridIgnoresNonPositive(t *testing.T) {
	l := Grid(3, WithGrid(0, -1, mgl64.Vec3{1, 1, 1}), WithGridOrigin(mgl64.Vec3{}))
	want := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	for i, w := range want {
		if l.Targets[i].Position != w {
			t.Errorf("Grid[%d] = %v, want %v", i, l.Targets[i].Position, w)
		}
	}
}

func TestValid(t *testing.T) {
	for _, name := range Names() {
		if !Valid(name) {
			t.Errorf("Valid(%q) = false", name)
		}
	}
	if Valid("cube") {
		t.Error("Valid(cube) = true")
	}
}
