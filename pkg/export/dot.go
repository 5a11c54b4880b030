package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Plane selects the two world axes a snapshot is projected onto.
type Plane string

const (
	PlaneXY Plane = "xy" // front view
	PlaneXZ Plane = "xz" // top view
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Plane is the projection plane. Defaults to PlaneXY.
	Plane Plane
	// Scale converts world units to points. Defaults to 0.25.
	Scale float64
}

// ToDOT converts a snapshot to a Graphviz graph in which every element is a
// node pinned at its projected position.
func ToDOT(s Snapshot, opts DOTOptions) string {
	if opts.Scale <= 0 {
		opts.Scale = 0.25
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", s.Layout)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=\"#00ffff30\", color=\"#00ffff\", fontsize=14, width=0.6, height=0.75, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, el := range s.Elements {
		x, y := project(el, opts)
		fmt.Fprintf(&buf, "  e%d [label=%q, tooltip=%q, pos=\"%.2f,%.2f!\"];\n",
			el.Index, el.Symbol, el.Name, x, y)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func project(el Element, opts DOTOptions) (float64, float64) {
	p := el.Position.Mul(opts.Scale)
	if opts.Plane == PlaneXZ {
		return p.X(), 0 - p.Z()
	}
	return p.X(), p.Y()
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine, which
// keeps pinned node positions.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
