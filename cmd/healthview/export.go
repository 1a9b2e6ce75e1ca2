package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/export"
)

var (
	exportOut      string
	exportTitle    string
	exportSnapshot string
	exportClusters []int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current view as an xlsx workbook",
	Long: `Export writes an xlsx workbook with the filtered country table, the
cluster profiles and export metadata. Each export is stamped with a
snapshot id; a fresh one is generated unless --snapshot is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default: <snapshot>-<title>.xlsx)")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Title used in the suggested filename")
	exportCmd.Flags().StringVar(&exportSnapshot, "snapshot", "", "Snapshot id (default: generated)")
	exportCmd.Flags().IntSliceVar(&exportClusters, "clusters", nil, "Visible cluster ids (default: all)")
}

func runExport(cmd *cobra.Command, args []string) error {
	loader, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	opts := export.Options{
		Snapshot: exportSnapshot,
		Source:   loader.Path(),
		Visible:  parseVisible(exportClusters),
		Title:    exportTitle,
	}

	// The filename may depend on the generated snapshot id, so write to a
	// temp file first when no explicit output path was given.
	out := exportOut
	if out == "" {
		tmp, err := os.CreateTemp(".", "healthview-export-*.xlsx")
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		result, werr := export.Workbook(ds, loader.Specs(), tmp, opts)
		_ = tmp.Close()
		if werr != nil {
			_ = os.Remove(tmp.Name())
			return NewLookupError(cmd.Name(), werr)
		}
		if err := os.Rename(tmp.Name(), result.Filename); err != nil {
			return fmt.Errorf("failed to place workbook: %w", err)
		}
		return reportExport(cmd, result, result.Filename)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	result, err := export.Workbook(ds, loader.Specs(), f, opts)
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}
	return reportExport(cmd, result, out)
}

func reportExport(cmd *cobra.Command, result export.Result, path string) error {
	if quiet {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (snapshot %s, %d countries, %d clusters)\n",
		path, result.Snapshot, result.Countries, result.Clusters)
	return nil
}
