package countrydb

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed countries.csv
var countriesData string

var (
	builtinOnce sync.Once
	builtinSet  []Country
)

// builtin returns the embedded ISO-3166-1 table, parsed on first use.
func builtin() []Country {
	builtinOnce.Do(func() {
		builtinSet = parseDataset(countriesData)
	})
	return builtinSet
}

// parseDataset parses semicolon-separated records:
// alpha2;alpha3;numeric;name;currencies. Currencies are comma-separated
// within the last field. Blank lines and '#' comments are skipped.
func parseDataset(data string) []Country {
	countries := make([]Country, 0, 256)

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 5 {
			continue
		}
		countries = append(countries, Country{
			Alpha2:     strings.ToUpper(strings.TrimSpace(fields[0])),
			Alpha3:     strings.ToUpper(strings.TrimSpace(fields[1])),
			Numeric:    strings.TrimSpace(fields[2]),
			Name:       strings.TrimSpace(fields[3]),
			Currencies: splitCurrencies(fields[4]),
		})
	}
	return countries
}

func splitCurrencies(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, strings.ToUpper(p))
		}
	}
	return result
}
