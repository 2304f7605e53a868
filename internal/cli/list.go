package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hightemp/countrydb"
	"github.com/hightemp/countrydb/internal/output"
	"github.com/spf13/cobra"
)

var (
	listKey   string
	countOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all countries in the dataset",
	Long: `Lists every record in the dataset in storage order.

Examples:
  countrydb list                  # Tab-separated, one record per line
  countrydb list --json           # JSON array
  countrydb list --key numeric    # Prefix each line with the numeric code
  countrydb list --count          # Record count only`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listKey, "key", "", "prefix output with this key's value: alpha2, alpha3, numeric or name")
	listCmd.Flags().BoolVar(&countOnly, "count", false, "print the record count only")
}

// keyedEntry is one keyed-iteration pair in JSON output.
type keyedEntry struct {
	Value   string            `json:"value"`
	Country countrydb.Country `json:"country"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}

	if countOnly {
		fmt.Println(reg.Count())
		return nil
	}

	if listKey == "" {
		return listPlain(reg)
	}

	key, err := countrydb.ParseKey(listKey)
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}
	return listKeyed(reg, key)
}

func listPlain(reg *countrydb.Registry) error {
	if jsonOutput {
		data, err := json.MarshalIndent(reg.All(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for c := range reg.Countries() {
		fmt.Println(output.FormatCountryText(c))
	}
	return nil
}

func listKeyed(reg *countrydb.Registry, key countrydb.Key) error {
	seq, err := reg.Iter(key)
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}

	if jsonOutput {
		entries := make([]keyedEntry, 0, reg.Count())
		for v, c := range seq {
			entries = append(entries, keyedEntry{Value: v, Country: c})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for v, c := range seq {
		fmt.Printf("%s\t%s\n", v, output.FormatCountryText(c))
	}
	return nil
}
