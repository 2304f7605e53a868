// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/hightemp/countrydb"
	"github.com/hightemp/countrydb/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	datasetFile string
	jsonOutput  bool
	keyFlag     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countrydb [value]",
	Short: "ISO-3166-1 country lookup by name, alpha-2, alpha-3 or numeric code",
	Long: `countrydb looks up ISO-3166-1 country records, including their ISO-4217
currency codes, in an embedded reference dataset.

For single lookups the key is guessed from the value shape, or forced
with --key:
  countrydb SE
  countrydb 752
  countrydb sverige
  countrydb --key alpha3 usa

For batch processing (read from stdin, one value per line):
  cat codes.txt | countrydb

The built-in table can be replaced with --dataset or the ` + config.DatasetEnv + `
environment variable (.csv, .json or .yaml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&datasetFile, "dataset", config.DefaultDatasetPath(), "dataset file replacing the built-in table (.csv, .json, .yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Lookup-specific flags
	rootCmd.Flags().StringVar(&keyFlag, "key", "", "lookup key: alpha2, alpha3, numeric or name (default: guess from the value)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// openRegistry returns a registry over the built-in table, or over the
// dataset file given with --dataset.
func openRegistry() (*countrydb.Registry, error) {
	if datasetFile == "" {
		return countrydb.New(), nil
	}
	records, err := countrydb.LoadFile(datasetFile)
	if err != nil {
		return nil, err
	}
	return countrydb.New(records...), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (commit %s, built %s)\n", config.AppName, Version, Commit, BuildTime)
	},
}
