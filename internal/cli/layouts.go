package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/export"
	"github.com/matzehuels/periodix/pkg/layout"
)

// layoutsCommand creates the layouts command for inspecting layout targets.
func (c *CLI) layoutsCommand() *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "layouts [name]",
		Short: "Print the target transforms of one or all layouts",
		Long: `Print the target transforms of one or all layouts.

Without an argument every layout (table, sphere, helix, grid) is printed.
Positions are world units; rotations are XYZ Euler angles in radians.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeLayouts(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := layout.Names()
			if len(args) == 1 {
				names = args
			}
			return c.runLayouts(cmd.Context(), cmd.OutOrStdout(), names, asJSON, limit)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print snapshots as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print only the first n elements of each layout (0: all)")

	return cmd
}

// runLayouts generates the named layouts for the configured dataset and
// writes them to w.
func (c *CLI) runLayouts(_ context.Context, w io.Writer, names []string, asJSON bool, limit int) error {
	records, err := c.records()
	if err != nil {
		return err
	}

	snaps := make([]export.Snapshot, 0, len(names))
	for _, name := range names {
		l, err := layout.Generate(records, name)
		if err != nil {
			return err
		}
		snap, err := export.FromLayout(records, l)
		if err != nil {
			return err
		}
		if limit > 0 && limit < len(snap.Elements) {
			snap.Elements = snap.Elements[:limit]
		}
		snaps = append(snaps, snap)
	}

	if asJSON {
		return writeSnapshotsJSON(w, snaps)
	}
	for i, snap := range snaps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, StyleTitle.Render(snap.Layout)+" "+StyleDim.Render(fmt.Sprintf("(%d of %d elements)", len(snap.Elements), records.Len())))
		fmt.Fprintln(w, targetTable(snap, records))
	}
	return nil
}

func writeSnapshotsJSON(w io.Writer, snaps []export.Snapshot) error {
	var data []byte
	var err error
	if len(snaps) == 1 {
		data, err = export.MarshalSnapshot(snaps[0])
	} else {
		data, err = json.MarshalIndent(snaps, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// targetTable renders one snapshot as a bordered table.
func targetTable(snap export.Snapshot, records dataset.Dataset) string {
	rows := make([][]string, 0, len(snap.Elements))
	for _, el := range snap.Elements {
		mass := ""
		if el.Index < records.Len() {
			mass = records[el.Index].Mass
		}
		rows = append(rows, []string{
			fmt.Sprint(el.Index),
			el.Symbol,
			el.Name,
			mass,
			formatVec(el.Position[:], "%.1f"),
			formatVec(el.Rotation[:], "%.3f"),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Symbol", "Name", "Mass", "Position", "Rotation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 1:
				return base.Bold(true).Foreground(colorCyan)
			case col >= 4:
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorGray)
			}
		}).
		Render()
}

func formatVec(v []float64, verb string) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf(verb, f)
	}
	return strings.Join(parts, "  ")
}
