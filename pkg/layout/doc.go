// Package layout computes target transforms for the four periodix layouts.
//
// # Overview
//
// A [Layout] assigns one [Target] (position plus Euler rotation) to every
// element of a dataset. Four layouts exist:
//
//   - table: records placed on their column/row grid, facing the viewer
//   - sphere: an even Fibonacci-style distribution on a sphere, each element
//     facing away from the center
//   - helix: a single spiral around the Y axis, each element facing away
//     from the axis
//   - grid: a 5x5xK block of cells, facing the viewer
//
// Every generator is a pure function of its inputs. Calling [Generate] twice
// with the same dataset and options yields bit-identical targets, so layouts
// can be computed once at startup and shared read-only.
//
// # Generating Layouts
//
// Use [Generate] for a single layout by name, or [All] to compute every
// layout at once:
//
//	l, err := layout.Generate(records, layout.NameSphere)
//	all := layout.All(records, layout.WithSphereRadius(600))
//
// Unknown names fail with a CONFIGURATION error from [errors].
//
// The generators are also exported individually. [Table] needs the records'
// placement fields; [Sphere], [Helix] and [Grid] only need the element count.
//
// # Options
//
//   - [WithTableSpacing]: column and row pitch of the table (default 140, 180)
//   - [WithTableOffset]: centering offset of the table (default 1330, 990)
//   - [WithSphereRadius]: sphere radius (default 800)
//   - [WithHelix]: helix radius, angular step, vertical step and top (default 900, 0.175, 8, 450)
//   - [WithGrid]: grid columns, rows and cell spacing (default 5, 5, (400, 400, 1000))
//   - [WithGridOrigin]: position of the first grid cell (default (-800, 800, -2000))
//   - [WithLookScale]: factor applied to the look-at point of sphere and helix (default 2)
//
// # Orientation
//
// Sphere and helix targets are oriented with [LookAt], which turns an
// element's +Z axis toward a point and reports the rotation as XYZ Euler
// angles. The point is the element's own position scaled by the look scale
// (the helix keeps its height unscaled), so elements face outward.
//
// [errors]: github.com/matzehuels/periodix/pkg/errors
package layout
