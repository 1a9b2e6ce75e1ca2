package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/formats"
	"github.com/healthexplorer/healthview/types"
)

var summaryComputed bool

var summaryCmd = &cobra.Command{
	Use:   "summary [cluster-id]",
	Short: "Show cluster profiles",
	Long: `Summary shows a cluster's label, member count and per-indicator averages,
or every cluster's profile when no id is given. Averages come from the
artifact when it carries them; with --computed they are derived from the raw
values instead, skipping missing entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryComputed, "computed", false,
		"Compute averages from raw values when the artifact has none")
}

func runSummary(cmd *cobra.Command, args []string) error {
	var opts []dataview.LoaderOption
	if summaryComputed {
		opts = append(opts, dataview.WithComputedAverages())
	}
	loader, ds, err := loadArtifact(cmd, opts...)
	if err != nil {
		return err
	}

	clusterIDs := ds.ClusterIDs()
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return NewConfigError(cmd.Name(), "cluster id must be an integer",
				"Run 'healthview summary' to see every cluster",
			)
		}
		clusterIDs = []int{id}
	}

	summaries := make([]types.ClusterSummary, 0, len(clusterIDs))
	for _, id := range clusterIDs {
		summary, err := loader.ClusterSummary(ds, id)
		if err != nil {
			return NewLookupError(cmd.Name(), err,
				"Run 'healthview summary' to see every cluster",
			)
		}
		summaries = append(summaries, summary)
	}

	specs := loader.Specs()
	headers := []string{"Cluster", "Name", "Countries"}
	for _, spec := range specs {
		headers = append(headers, "Avg "+spec.Name)
	}

	cells := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		line := []string{strconv.Itoa(summary.ID), summary.Name, strconv.Itoa(summary.Count)}
		for _, spec := range specs {
			if summary.Averages == nil {
				line = append(line, formats.NotAvailable)
				continue
			}
			line = append(line, formats.FormatValue(spec, summary.Averages[spec.Name]))
		}
		cells = append(cells, line)
	}

	formatter := NewOutputFormatter(format, quiet)
	raw := interface{}(summaries)
	if len(args) == 1 && len(summaries) == 1 {
		raw = summaries[0]
	}
	return formatter.Print(cmd.OutOrStdout(), headers, cells, raw)
}
