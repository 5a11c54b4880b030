// Package pkg provides the core libraries for periodix, an animated 3D
// arrangement of periodic table elements.
//
// # Overview
//
// Periodix places one element per dataset record at a target transform
// computed by a named layout (table, sphere, helix or grid), then moves
// the elements between layouts with eased tweens advanced by a tick clock.
// The pkg directory is organized as follows:
//
//  1. [dataset] - Records (symbol, name, mass, grid cell) and their loaders
//  2. [layout] - Target transform generators for every layout
//  3. [tween] - Easing curves and the duration-bounded Vec3 tween
//  4. [scene] - Live element transforms and the transition controller
//  5. [frame] - The tick loop that drives scenes and other subscribers
//  6. [render] - Perspective camera projection for viewers
//  7. [export] - JSON snapshots and Graphviz DOT/SVG renderings
//  8. [observability] - Transition and frame hooks for logs and metrics
//
// # Architecture
//
// The typical data flow through periodix:
//
//	Dataset (built-in, JSON, YAML or TOML)
//	         ↓
//	    [layout] package (targets for every layout)
//	         ↓
//	    [scene] package (TransitionTo starts tweens, Tick advances them)
//	         ↓
//	    [frame] package (one Tick per frame)
//	         ↓
//	    [render] camera, [export] snapshot, HTTP status
//
// # Quick Start
//
// Animate the built-in table into a helix and read the settled positions:
//
//	import (
//	    "time"
//
//	    "github.com/matzehuels/periodix/pkg/dataset"
//	    "github.com/matzehuels/periodix/pkg/layout"
//	    "github.com/matzehuels/periodix/pkg/scene"
//	)
//
//	s, err := scene.New(dataset.Builtin(), scene.WithSeed(1))
//	if err != nil {
//	    return err
//	}
//	if err := s.TransitionTo(layout.NameHelix, 2*time.Second); err != nil {
//	    return err
//	}
//	for !s.Settled() {
//	    s.Tick(time.Second / 60)
//	}
//	for _, el := range s.Elements() {
//	    fmt.Println(el.Record.Symbol, el.Transform.Position)
//	}
//
// # Concurrency
//
// A [scene.Scene] is not safe for concurrent use. Callers that share one
// across goroutines hand work to the goroutine running its [frame.Loop]
// with [frame.Loop.Do] or [frame.Loop.Post].
//
// # Error Handling
//
// Packages return errors from [errors], which carry a machine readable
// code (CONFIGURATION, INVALID_ARGUMENT, NOT_FOUND, ...) next to the
// message. Use [errors.Is] to check codes and [errors.UserMessage] for CLI
// output.
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/dataset
// [layout]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/layout
// [tween]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/tween
// [scene]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/scene
// [scene.Scene]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/scene#Scene
// [frame]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/frame
// [frame.Loop]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/frame#Loop
// [frame.Loop.Do]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/frame#Loop.Do
// [frame.Loop.Post]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/frame#Loop.Post
// [render]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/render
// [export]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/export
// [observability]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/errors
// [errors.Is]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/errors#Is
// [errors.UserMessage]: https://pkg.go.dev/github.com/matzehuels/periodix/pkg/errors#UserMessage
package pkg
