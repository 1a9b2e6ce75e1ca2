package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/render"
)

var (
	renderOut       string
	renderClusters  []int
	renderHighlight string
	renderWidth     int
	renderHeight    int
)

var renderCmd = &cobra.Command{
	Use:   "render <method>",
	Short: "Render a cluster scatter of one projection to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output PNG path (default: scatter_<method>.png)")
	renderCmd.Flags().IntSliceVar(&renderClusters, "clusters", nil, "Visible cluster ids (default: all)")
	renderCmd.Flags().StringVar(&renderHighlight, "highlight", "", "Country to emphasize")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Image height in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	method := args[0]

	_, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	rows := dataview.BuildRows(ds)
	if visible := parseVisible(renderClusters); visible != nil {
		rows = dataview.FilterRows(rows, visible)
	}

	out := renderOut
	if out == "" {
		out = "scatter_" + sanitizeMethodName(method) + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	opts := render.Options{
		Width:     renderWidth,
		Height:    renderHeight,
		Highlight: renderHighlight,
	}
	if err := render.Scatter(ds, rows, method, f, opts); err != nil {
		return NewLookupError(cmd.Name(), err,
			"Run 'healthview methods' to see available projections",
		)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	}
	return nil
}

// sanitizeMethodName makes a method name safe for a filename ("t-SNE" stays
// readable as "t-sne").
func sanitizeMethodName(method string) string {
	return strings.ToLower(strings.ReplaceAll(method, " ", "-"))
}

var compareOutDir string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Render every projection method side by side",
	Long: `Compare writes one scatter PNG per projection method into a directory,
so the methods can be viewed side by side.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareOutDir, "out-dir", "o", ".", "Directory for the per-method PNGs")
}

func runCompare(cmd *cobra.Command, args []string) error {
	_, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(compareOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rows := dataview.BuildRows(ds)
	err = render.ComparisonGrid(ds, rows, func(method string) (io.WriteCloser, error) {
		path := filepath.Join(compareOutDir, "scatter_"+sanitizeMethodName(method)+".png")
		return os.Create(path)
	})
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d projections to %s\n", len(ds.Methods()), compareOutDir)
	}
	return nil
}
