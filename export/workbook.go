// Package export writes dataset views out as spreadsheet workbooks and JSON
// snapshots, for sharing outside the interactive layer.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/formats"
	"github.com/healthexplorer/healthview/types"
)

const (
	countriesSheet = "Countries"
	profilesSheet  = "Cluster Profiles"
	metaSheet      = "Meta"
)

// Workbook writes an xlsx workbook to w with three sheets: the filtered
// country table (indicator cells formatted per descriptor), the cluster
// profiles, and export metadata. Missing values render as "N/A".
func Workbook(ds *types.Dataset, specs []types.IndicatorSpec, w io.Writer, opts Options) (Result, error) {
	snapshot := opts.Snapshot
	if snapshot == "" {
		snapshot = uuid.New().String()
	}

	rows := dataview.BuildRows(ds)
	if opts.Visible != nil {
		rows = dataview.FilterRows(rows, opts.Visible)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeCountriesSheet(f, ds, specs, rows); err != nil {
		return Result{}, err
	}
	clusters, err := writeProfilesSheet(f, ds, specs, opts.Visible)
	if err != nil {
		return Result{}, err
	}
	if err := writeMetaSheet(f, ds, snapshot, opts.Source); err != nil {
		return Result{}, err
	}

	// Drop the default sheet so Countries opens first
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return Result{}, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return Result{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return Result{
		Snapshot:  snapshot,
		Filename:  generateFilename(snapshot, opts.Title),
		Countries: len(rows),
		Clusters:  clusters,
	}, nil
}

func writeCountriesSheet(f *excelize.File, ds *types.Dataset, specs []types.IndicatorSpec, rows []types.Row) error {
	if _, err := f.NewSheet(countriesSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", countriesSheet, err)
	}

	header := []interface{}{"Country", "Cluster", "Cluster Name"}
	for _, method := range ds.Methods() {
		header = append(header, method+" X", method+" Y")
	}
	for _, spec := range specs {
		header = append(header, spec.Name)
	}
	if err := setRow(f, countriesSheet, 1, header); err != nil {
		return err
	}

	for i, row := range rows {
		cells := []interface{}{row.Country, row.Cluster, row.ClusterName}
		for _, method := range ds.Methods() {
			p := row.Coords[method]
			cells = append(cells, p.X, p.Y)
		}
		for _, spec := range specs {
			cells = append(cells, formats.FormatValue(spec, row.Indicators[spec.Name]))
		}
		if err := setRow(f, countriesSheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeProfilesSheet(f *excelize.File, ds *types.Dataset, specs []types.IndicatorSpec, visible map[int]bool) (int, error) {
	if _, err := f.NewSheet(profilesSheet); err != nil {
		return 0, fmt.Errorf("failed to create %s sheet: %w", profilesSheet, err)
	}

	header := []interface{}{"Cluster", "Name", "Countries"}
	for _, spec := range specs {
		header = append(header, "Avg "+spec.Name)
	}
	if err := setRow(f, profilesSheet, 1, header); err != nil {
		return 0, err
	}

	line := 2
	for _, clusterID := range ds.ClusterIDs() {
		if visible != nil && !visible[clusterID] {
			continue
		}
		summary, err := dataview.ClusterSummary(ds, clusterID)
		if err != nil {
			return 0, err
		}

		cells := []interface{}{summary.ID, summary.Name, summary.Count}
		for _, spec := range specs {
			if summary.Averages == nil {
				cells = append(cells, formats.NotAvailable)
				continue
			}
			cells = append(cells, formats.FormatValue(spec, summary.Averages[spec.Name]))
		}
		if err := setRow(f, profilesSheet, line, cells); err != nil {
			return 0, err
		}
		line++
	}
	return line - 2, nil
}

func writeMetaSheet(f *excelize.File, ds *types.Dataset, snapshot, source string) error {
	if _, err := f.NewSheet(metaSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", metaSheet, err)
	}

	meta := [][]interface{}{
		{"Snapshot", snapshot},
		{"Source", source},
		{"Exported", time.Now().UTC().Format(time.RFC3339)},
		{"Countries", len(ds.Countries)},
		{"Methods", joinMethods(ds)},
	}
	for i, pair := range meta {
		if err := setRow(f, metaSheet, i+1, pair); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, line int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", line, sheet, err)
	}
	return nil
}

func joinMethods(ds *types.Dataset) string {
	out := ""
	for i, method := range ds.Methods() {
		if i > 0 {
			out += ", "
		}
		out += method
	}
	return out
}
