package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/healthexplorer/healthview/dataview"
	"github.com/healthexplorer/healthview/types"
)

var (
	// Global flags that apply to all commands
	dataPath string
	format   string
	quiet    bool
	noColor  bool
	logLevel string

	viperInst = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "healthview",
	Short: "Healthview CLI - Country dashboard data views",
	Long: `Healthview assembles country views from a dashboard data artifact:
a JSON file carrying country names, cluster assignments, 2D embeddings per
projection method and health indicator values.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (HEALTHVIEW_*)
3. Configuration files (custom path or default locations)

Configuration File Discovery:
  HEALTHVIEW_CONFIG=/path/to/config.yaml  # Custom config file path
  ./healthview.yaml                       # Current directory
  ~/.healthview/healthview.yaml           # User directory

Examples:
  # List the country table for visible clusters
  healthview --data dashboard_data.json rows --clusters 0,2

  # Cluster profile as JSON
  healthview --data dashboard_data.json summary 1 --format json

  # Environment variable instead of the flag
  export HEALTHVIEW_DATA=dashboard_data.json
  healthview detail Norway`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = viperInst.BindPFlags(cmd.Flags())

		// Flags win, then env, then config file
		dataPath = viperInst.GetString("data")
		format = viperInst.GetString("format")
		quiet = viperInst.GetBool("quiet")
		noColor = viperInst.GetBool("no-color")
		logLevel = viperInst.GetString("log-level")

		return initLogging(logLevel)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("data", "d", "", "Path to the dashboard data artifact (JSON)")
	flags.StringP("format", "f", "table", "Output format: table|json|yaml|csv")
	flags.BoolP("quiet", "q", false, "Suppress headers and extra output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "warn", "Log level: debug|info|warn|error")

	setupViperConfig()

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(queryCmd)
}

// setupViperConfig configures Viper with environment variables and config files
func setupViperConfig() {
	if configFile := os.Getenv("HEALTHVIEW_CONFIG"); configFile != "" {
		viperInst.SetConfigFile(configFile)
	} else {
		viperInst.SetConfigName("healthview")
		viperInst.SetConfigType("yaml")
		viperInst.AddConfigPath(".")
		viperInst.AddConfigPath("$HOME/.healthview")
	}

	viperInst.AutomaticEnv()
	viperInst.SetEnvPrefix("HEALTHVIEW")
	viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Read config file if it exists (ignore errors)
	_ = viperInst.ReadInConfig()
}

// loadArtifact loads the configured artifact through the loader, translating
// load failures into actionable CLI errors.
func loadArtifact(cmd *cobra.Command, opts ...dataview.LoaderOption) (*dataview.Loader, *types.Dataset, error) {
	if dataPath == "" {
		return nil, nil, NewConfigError(cmd.Name(), "no data artifact configured",
			"Pass --data <path> or set HEALTHVIEW_DATA",
		)
	}

	loader := dataview.NewLoader(dataPath, opts...)
	ds, err := loader.Load(cmd.Context())
	if err != nil {
		return nil, nil, NewArtifactError(cmd.Name(), dataPath, err)
	}
	return loader, ds, nil
}

// parseVisible turns a cluster id list into the toggle map the filters use.
// nil means every cluster stays visible.
func parseVisible(clusters []int) map[int]bool {
	if clusters == nil {
		return nil
	}
	visible := make(map[int]bool, len(clusters))
	for _, id := range clusters {
		visible[id] = true
	}
	return visible
}
