package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/formats"
	"github.com/healthexplorer/healthview/types"
)

var (
	rowsClusters []int
	rowsMethod   string
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List the country table for the visible clusters",
	Long: `Rows assembles the row-per-country table and filters it down to the
visible clusters. Coordinates come from one projection method; indicator
values render with their display format and "N/A" for missing data.`,
	Args: cobra.NoArgs,
	RunE: runRows,
}

func init() {
	rowsCmd.Flags().IntSliceVar(&rowsClusters, "clusters", nil, "Visible cluster ids (default: all)")
	rowsCmd.Flags().StringVarP(&rowsMethod, "method", "m", "", "Projection method for coordinates (default: first)")
}

func runRows(cmd *cobra.Command, args []string) error {
	loader, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	method := rowsMethod
	if method == "" {
		methods := ds.Methods()
		if len(methods) == 0 {
			return NewLookupError(cmd.Name(), &types.NotFoundError{Kind: "method", Name: "any"})
		}
		method = methods[0]
	}
	if _, ok := ds.Embeddings[method]; !ok {
		return NewLookupError(cmd.Name(),
			&types.NotFoundError{Kind: "method", Name: method},
			"Run 'healthview methods' to see available projections",
		)
	}

	visible := parseVisible(rowsClusters)
	tableRows := dataview.BuildRows(ds)
	if visible != nil {
		tableRows = dataview.FilterRows(tableRows, visible)
	}
	specs := loader.Specs()

	headers := []string{"Country", "Cluster", "Name", method + " X", method + " Y"}
	for _, spec := range specs {
		headers = append(headers, spec.Name)
	}

	cells := make([][]string, 0, len(tableRows))
	for _, row := range tableRows {
		p := row.Coords[method]
		line := []string{
			row.Country,
			strconv.Itoa(row.Cluster),
			row.ClusterName,
			strconv.FormatFloat(p.X, 'f', 2, 64),
			strconv.FormatFloat(p.Y, 'f', 2, 64),
		}
		for _, spec := range specs {
			line = append(line, formats.FormatValue(spec, row.Indicators[spec.Name]))
		}
		cells = append(cells, line)
	}

	formatter := NewOutputFormatter(format, quiet)
	return formatter.Print(cmd.OutOrStdout(), headers, cells, tableRows)
}
