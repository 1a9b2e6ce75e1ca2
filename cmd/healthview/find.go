package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/search"
	"github.com/healthexplorer/healthview/types"
)

var (
	findExact         bool
	findCaseSensitive bool
	findMax           int
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search country names",
	Long: `Find searches the country list, ranking exact matches above prefix
matches above substring matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findExact, "exact", false, "Require the whole name to match")
	findCmd.Flags().BoolVar(&findCaseSensitive, "case-sensitive", false, "Match case exactly")
	findCmd.Flags().IntVar(&findMax, "max", 0, "Maximum number of results (0 = unlimited)")
}

// datasetCountries adapts a loaded dataset to the search provider interface.
type datasetCountries struct {
	ds *types.Dataset
}

func (p datasetCountries) Countries() ([]string, error) {
	return p.ds.Countries, nil
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	_, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	options := search.SearchOptions{
		Query:         query,
		CaseSensitive: findCaseSensitive,
		ExactMatch:    findExact,
	}
	if findMax > 0 {
		options.MaxResults = &findMax
	}

	engine := search.NewEngine(datasetCountries{ds: ds})
	results, err := engine.Search(options)
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}

	headers := []string{"Country", "Cluster", "Match", "Score"}
	cells := make([][]string, 0, len(results))
	for _, result := range results {
		cells = append(cells, []string{
			result.Country,
			ds.Label(ds.Clusters[result.Index]),
			string(result.MatchType),
			strconv.FormatFloat(result.Score, 'f', 1, 64),
		})
	}

	formatter := NewOutputFormatter(format, quiet)
	return formatter.Print(cmd.OutOrStdout(), headers, cells, results)
}
