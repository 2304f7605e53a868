package countrydb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDataset is returned when a loaded dataset contains no records.
// A replacement dataset must be non-empty; an empty one would silently fall
// back to the built-in table in New.
var ErrEmptyDataset = errors.New("dataset contains no records")

// LoadFile loads a replacement dataset from a file, auto-detecting the format
// by extension. Supported extensions: .csv, .json, .yaml, .yml
func LoadFile(path string) ([]Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(data)
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported dataset file extension: %q", ext)
	}
}

// ParseCSV parses semicolon-separated records in the embedded dataset format:
// alpha2;alpha3;numeric;name;currencies.
func ParseCSV(data []byte) ([]Country, error) {
	countries := parseDataset(string(data))
	if len(countries) == 0 {
		return nil, ErrEmptyDataset
	}
	return countries, nil
}

// ParseJSON parses a JSON array of country records.
func ParseJSON(data []byte) ([]Country, error) {
	var countries []Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("parse json dataset: %w", err)
	}
	if len(countries) == 0 {
		return nil, ErrEmptyDataset
	}
	return countries, nil
}

// ParseYAML parses a YAML list of country records.
func ParseYAML(data []byte) ([]Country, error) {
	var countries []Country
	if err := yaml.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("parse yaml dataset: %w", err)
	}
	if len(countries) == 0 {
		return nil, ErrEmptyDataset
	}
	return countries, nil
}
