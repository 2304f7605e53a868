package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hightemp/countrydb"
	"github.com/hightemp/countrydb/internal/batch"
	"github.com/hightemp/countrydb/internal/output"
	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}

	// Resolve the key flag up front so a bad key fails before any input is read
	var key countrydb.Key
	if keyFlag != "" {
		key, err = countrydb.ParseKey(keyFlag)
		if err != nil {
			exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
			return nil
		}
	}

	// Check if we have a value argument or should read from stdin
	if len(args) == 1 {
		// Single lookup
		return lookupSingle(reg, key, args[0])
	}

	// Check if stdin is a terminal
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	processor := batch.NewProcessor(reg, key)
	return processor.ProcessInput(os.Stdin, os.Stdout, jsonOutput)
}

func lookupSingle(reg *countrydb.Registry, key countrydb.Key, value string) error {
	if key == "" {
		key = batch.DetectKey(value)
	}

	country, err := batch.Lookup(reg, key, value)
	if err != nil {
		if errors.Is(err, countrydb.ErrNotFound) {
			exitWithCode(ExitNotFound, fmt.Sprintf("Error: %v", err))
		} else {
			exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		}
		return nil
	}

	result := output.NewLookupResult(value, key, country)

	// Output
	if jsonOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
	} else {
		fmt.Println(result.FormatText())
	}

	return nil
}
