// Package batch handles batch country lookups from stdin.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hightemp/countrydb"
	"github.com/hightemp/countrydb/internal/config"
	"github.com/hightemp/countrydb/internal/output"
)

// Processor handles batch country lookups.
type Processor struct {
	reg         *countrydb.Registry
	key         countrydb.Key
	concurrency int
}

// NewProcessor creates a new batch processor. An empty key means the lookup
// key is detected per value.
func NewProcessor(reg *countrydb.Registry, key countrydb.Key) *Processor {
	return &Processor{
		reg:         reg,
		key:         key,
		concurrency: config.DefaultConcurrency,
	}
}

// ProcessInput reads lookup values from input and writes results to output.
func (p *Processor) ProcessInput(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var results []*output.LookupResult

	if jsonOutput {
		// Collect all results for JSON array output
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			result := p.processValue(line)
			results = append(results, result)
		}

		batch := &output.BatchResult{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
	} else {
		// Stream output line by line
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			result := p.processValue(line)
			fmt.Fprintln(w, result.FormatText())
		}
	}

	return scanner.Err()
}

// ProcessInputConcurrent processes values concurrently. Results keep input
// order. Safe because the registry is immutable after construction.
func (p *Processor) ProcessInputConcurrent(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([]*output.LookupResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, value string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = p.processValue(value)
		}(i, line)
	}

	wg.Wait()

	if jsonOutput {
		batch := &output.BatchResult{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
	} else {
		for _, result := range results {
			fmt.Fprintln(w, result.FormatText())
		}
	}

	return nil
}

func (p *Processor) processValue(value string) *output.LookupResult {
	key := p.key
	if key == "" {
		key = DetectKey(value)
	}

	country, err := Lookup(p.reg, key, value)
	if err != nil {
		return &output.LookupResult{
			Query: value,
			Key:   string(key),
			Error: err.Error(),
		}
	}

	return output.NewLookupResult(value, key, country)
}

// Lookup dispatches a lookup to the registry method selected by key.
func Lookup(reg *countrydb.Registry, key countrydb.Key, value string) (countrydb.Country, error) {
	switch key {
	case countrydb.KeyAlpha2:
		return reg.Alpha2(value)
	case countrydb.KeyAlpha3:
		return reg.Alpha3(value)
	case countrydb.KeyNumeric:
		return reg.Numeric(value)
	case countrydb.KeyName:
		return reg.Name(value)
	default:
		_, err := countrydb.ParseKey(string(key))
		return countrydb.Country{}, err
	}
}

// DetectKey guesses the lookup key for a raw query value: digits mean the
// numeric code, two or three letters mean alpha-2 or alpha-3, anything else
// is treated as a name.
func DetectKey(value string) countrydb.Key {
	v := strings.TrimSpace(value)
	switch {
	case v != "" && isDigits(v):
		return countrydb.KeyNumeric
	case len(v) == 2 && isLetters(v):
		return countrydb.KeyAlpha2
	case len(v) == 3 && isLetters(v):
		return countrydb.KeyAlpha3
	default:
		return countrydb.KeyName
	}
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
