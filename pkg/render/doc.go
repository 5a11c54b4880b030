// Package render projects scene transforms onto a 2D viewport.
//
// # Overview
//
// Layouts place elements in world space around the origin. A [Camera]
// looks at that space through a perspective projection and maps every
// element onto viewport coordinates, together with the pixel scale at the
// element's depth so that front elements draw larger than back ones.
//
// The default camera matches the classic periodic table demo: a 40 degree
// vertical field of view, positioned 3000 units in front of the origin.
//
//	cam := render.DefaultCamera()
//	for _, p := range cam.ProjectAll(positions, 800, 600) {
//	    // draw element p.Index at (p.X, p.Y), sized by p.Scale
//	}
//
// # Depth Order
//
// [Camera.ProjectAll] returns visible points sorted back to front, which is
// the order a painter's algorithm draws them in. Both the terminal viewer
// and the windowed viewer rely on it.
//
// # Orbit
//
// [Camera.Orbit] turns the camera around its target, which lets viewers
// inspect the sphere and helix from the side.
package render
