package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/export"
	"github.com/matzehuels/periodix/pkg/layout"
)

// Export formats.
const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

type exportOptions struct {
	format string
	output string
	plane  string
	scale  float64
}

// exportCommand creates the export command for writing one layout to a file.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOptions{format: formatJSON, plane: string(export.PlaneXY), scale: 0.25}

	cmd := &cobra.Command{
		Use:   "export <layout>",
		Short: "Write a layout as JSON, Graphviz DOT or SVG",
		Long: `Write a layout as JSON, Graphviz DOT or SVG.

JSON holds the full target transform of every element. DOT and SVG pin each
element at its position projected onto the xy (front) or xz (top) plane;
SVG is rendered with Graphviz's neato engine.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayouts(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: <layout>.<format>)")
	cmd.Flags().StringVar(&opts.plane, "plane", opts.plane, "projection plane for dot/svg: xy, xz")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "points per world unit for dot/svg")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFixed(formatJSON, formatDOT, formatSVG))
	_ = cmd.RegisterFlagCompletionFunc("plane", completeFixed(string(export.PlaneXY), string(export.PlaneXZ)))

	return cmd
}

// runExport generates the layout and writes it in the requested format.
func (c *CLI) runExport(ctx context.Context, name string, opts exportOptions) error {
	format := strings.ToLower(opts.format)
	switch format {
	case formatJSON, formatDOT, formatSVG:
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want json, dot or svg)", opts.format)
	}
	plane := export.Plane(strings.ToLower(opts.plane))
	if plane != export.PlaneXY && plane != export.PlaneXZ {
		return errors.New(errors.ErrCodeUnsupported, "unsupported plane %q (want xy or xz)", opts.plane)
	}
	if format == formatJSON && (plane != export.PlaneXY || opts.scale != 0.25) {
		printWarning("--plane and --scale only apply to dot and svg")
	}

	records, err := c.records()
	if err != nil {
		return err
	}
	l, err := layout.Generate(records, name)
	if err != nil {
		return err
	}
	snap, err := export.FromLayout(records, l)
	if err != nil {
		return err
	}

	data, err := c.encodeSnapshot(ctx, snap, format, export.DOTOptions{Plane: plane, Scale: opts.scale})
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	path := opts.output
	if path == "" {
		path = name + "." + format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	printSuccess("Exported %s layout", name)
	printFile(path)
	printStats(len(snap.Elements), snap.Layout, snap.Settled)
	if format == formatDOT {
		printNewline()
		printNextStep("Render", "neato -Tsvg -O "+path)
	}
	return nil
}

func (c *CLI) encodeSnapshot(ctx context.Context, snap export.Snapshot, format string, dotOpts export.DOTOptions) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(export.ToDOT(snap, dotOpts)), nil
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		prog := newProgress(c.Logger)
		svg, err := export.RenderSVG(export.ToDOT(snap, dotOpts))
		if err != nil {
			spinner.StopWithError("Render failed")
			return nil, err
		}
		spinner.StopWithSuccess("Rendered SVG")
		prog.done(fmt.Sprintf("Rendered %d elements", len(snap.Elements)))
		return svg, nil
	default:
		data, err := export.MarshalSnapshot(snap)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
