// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hightemp/countrydb"
)

// LookupResult contains the result of a country lookup.
type LookupResult struct {
	Query      string   `json:"query"`
	Key        string   `json:"key"`
	Name       string   `json:"name,omitempty"`
	Alpha2     string   `json:"alpha2,omitempty"`
	Alpha3     string   `json:"alpha3,omitempty"`
	Numeric    string   `json:"numeric,omitempty"`
	Currencies []string `json:"currencies,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// NewLookupResult builds a result for a found country.
func NewLookupResult(query string, key countrydb.Key, c countrydb.Country) *LookupResult {
	return &LookupResult{
		Query:      query,
		Key:        string(key),
		Name:       c.Name,
		Alpha2:     c.Alpha2,
		Alpha3:     c.Alpha3,
		Numeric:    c.Numeric,
		Currencies: c.Currencies,
	}
}

// FormatText formats result as tab-separated text.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\t-\t-\tERROR: %s", r.Query, r.Error)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s",
		r.Query,
		r.Alpha2,
		r.Alpha3,
		r.Numeric,
		r.Name,
		joinCurrencies(r.Currencies),
	)
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(b.Results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatCountryText formats a single record as tab-separated text.
func FormatCountryText(c countrydb.Country) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		c.Alpha2,
		c.Alpha3,
		c.Numeric,
		c.Name,
		joinCurrencies(c.Currencies),
	)
}

func joinCurrencies(currencies []string) string {
	if len(currencies) == 0 {
		return "-"
	}
	return strings.Join(currencies, ",")
}
