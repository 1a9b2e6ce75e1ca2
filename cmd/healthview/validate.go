package main

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the data artifact against the expected schema",
	Long: `Validate loads the data artifact, checks the required keys and verifies
that every per-country array lines up with the country list. A malformed
artifact reports what is wrong instead of producing misaligned views.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader, ds, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	slog.Info("artifact validated", "path", loader.Path(), "countries", len(ds.Countries))

	result := struct {
		Path       string `json:"path" yaml:"path"`
		Countries  int    `json:"countries" yaml:"countries"`
		Clusters   int    `json:"clusters" yaml:"clusters"`
		Methods    int    `json:"methods" yaml:"methods"`
		Indicators int    `json:"indicators" yaml:"indicators"`
	}{
		Path:       loader.Path(),
		Countries:  len(ds.Countries),
		Clusters:   len(ds.ClusterIDs()),
		Methods:    len(ds.Methods()),
		Indicators: len(ds.IndicatorNames()),
	}

	formatter := NewOutputFormatter(format, quiet)
	headers := []string{"Path", "Countries", "Clusters", "Methods", "Indicators"}
	rows := [][]string{{
		result.Path,
		strconv.Itoa(result.Countries),
		strconv.Itoa(result.Clusters),
		strconv.Itoa(result.Methods),
		strconv.Itoa(result.Indicators),
	}}
	return formatter.Print(cmd.OutOrStdout(), headers, rows, result)
}
