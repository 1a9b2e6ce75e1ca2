package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/formats"
)

var detailCmd = &cobra.Command{
	Use:   "detail <country>",
	Short: "Show one country's cluster and indicator values",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetail,
}

func runDetail(cmd *cobra.Command, args []string) error {
	country := strings.Join(args, " ")

	loader, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	detail, err := dataview.CountryDetail(ds, country)
	if err != nil {
		return NewLookupError(cmd.Name(), err,
			"Run 'healthview find <query>' to search country names",
		)
	}

	headers := []string{"Country", "Cluster", "Name"}
	line := []string{detail.Country, strconv.Itoa(detail.Cluster), detail.ClusterName}
	for _, spec := range loader.Specs() {
		headers = append(headers, spec.Name)
		line = append(line, formats.FormatValue(spec, detail.Indicators[spec.Name]))
	}

	formatter := NewOutputFormatter(format, quiet)
	return formatter.Print(cmd.OutOrStdout(), headers, [][]string{line}, detail)
}
