// Package config provides application constants and defaults.
package config

import "os"

const (
	// AppName is the application name.
	AppName = "countrydb"

	// DatasetEnv is the environment variable holding a dataset override path.
	DatasetEnv = "COUNTRYDB_DATASET"

	// DefaultConcurrency is the default batch lookup concurrency.
	DefaultConcurrency = 4
)

// DefaultDatasetPath returns the dataset override path from the environment.
// Empty when unset; the built-in table is used in that case.
func DefaultDatasetPath() string {
	return os.Getenv(DatasetEnv)
}
