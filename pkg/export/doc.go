// Package export serializes layouts and live scenes.
//
// A [Snapshot] is a flat list of element transforms plus the name of the
// layout they belong to. It is built from a precomputed layout with
// [FromLayout] or from a running scene with [FromScene], and written as
// JSON with [MarshalSnapshot] or [WriteSnapshotFile].
//
// For a quick look without a 3D viewer, [ToDOT] projects a snapshot onto one
// plane and emits a Graphviz graph with pinned node positions, which
// [RenderSVG] renders through the neato engine:
//
//	snap, _ := export.FromLayout(records, l)
//	svg, err := export.RenderSVG(export.ToDOT(snap, export.DOTOptions{}))
package export
