package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/healthexplorer/healthview/store"
)

var storeDBPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Materialize the artifact into a SQLite database",
	Long: `Import loads the artifact and materializes the country table into a
SQLite database, one column per coordinate and indicator. The table is a
derived view: re-importing replaces it wholesale.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

var (
	queryClusters []int
	queryMin      []string
	queryMax      []string
	queryOrderBy  string
	queryDesc     bool
	queryLimit    int
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a materialized SQLite database",
	Long: `Query filters the materialized country table by cluster and numeric
bounds. Bounds use column names as reported by import, e.g.:

  healthview query --db view.db --min gdp_per_capita=1000 --order-by life_expectancy --desc`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	importCmd.Flags().StringVar(&storeDBPath, "db", "", "SQLite database path (required)")
	_ = importCmd.MarkFlagRequired("db")

	queryCmd.Flags().StringVar(&storeDBPath, "db", "", "SQLite database path (required)")
	queryCmd.Flags().IntSliceVar(&queryClusters, "cluster", nil, "Restrict to these cluster ids")
	queryCmd.Flags().StringArrayVar(&queryMin, "min", nil, "Lower bound as column=value (repeatable)")
	queryCmd.Flags().StringArrayVar(&queryMax, "max", nil, "Upper bound as column=value (repeatable)")
	queryCmd.Flags().StringVar(&queryOrderBy, "order-by", "", "Column to sort on")
	queryCmd.Flags().BoolVar(&queryDesc, "desc", false, "Sort descending")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of rows (0 = unlimited)")
	_ = queryCmd.MarkFlagRequired("db")
}

func runImport(cmd *cobra.Command, args []string) error {
	_, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	s, err := store.Open(storeDBPath)
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}
	defer func() { _ = s.Close() }()

	if err := s.ImportDataset(ds); err != nil {
		return NewLookupError(cmd.Name(), err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d countries into %s\n", len(ds.Countries), storeDBPath)
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeDBPath)
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}
	defer func() { _ = s.Close() }()

	minValues, err := parseBounds(queryMin)
	if err != nil {
		return NewConfigError(cmd.Name(), err.Error(), "Use column=value, e.g. --min gdp_per_capita=1000")
	}
	maxValues, err := parseBounds(queryMax)
	if err != nil {
		return NewConfigError(cmd.Name(), err.Error(), "Use column=value, e.g. --max infant_mortality=10")
	}

	records, err := s.List(store.ListOptions{
		Clusters:   queryClusters,
		MinValues:  minValues,
		MaxValues:  maxValues,
		OrderBy:    queryOrderBy,
		Descending: queryDesc,
		Limit:      queryLimit,
	})
	if err != nil {
		return NewLookupError(cmd.Name(), err)
	}

	numericCols := s.Columns()[3:]
	headers := append([]string{"Country", "Cluster", "Name"}, numericCols...)
	cells := make([][]string, 0, len(records))
	for _, record := range records {
		line := []string{record.Country, strconv.Itoa(record.Cluster), record.ClusterName}
		for _, col := range numericCols {
			v := record.Values[col]
			if v == nil {
				line = append(line, "N/A")
				continue
			}
			line = append(line, strconv.FormatFloat(*v, 'f', -1, 64))
		}
		cells = append(cells, line)
	}

	formatter := NewOutputFormatter(format, quiet)
	return formatter.Print(cmd.OutOrStdout(), headers, cells, records)
}

// parseBounds parses repeated column=value pairs into a bounds map.
func parseBounds(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	bounds := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		col, raw, ok := strings.Cut(pair, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid bound %q", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bound value %q", raw)
		}
		bounds[col] = v
	}
	return bounds, nil
}
