package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hightemp/countrydb"
)

var sverige = countrydb.Country{
	Name:       "Sverige",
	Alpha2:     "SE",
	Alpha3:     "SWE",
	Numeric:    "752",
	Currencies: []string{"SEK"},
}

func TestLookupResultFormatText(t *testing.T) {
	result := NewLookupResult("se", countrydb.KeyAlpha2, sverige)

	text := result.FormatText()

	// Check tab-separated format
	parts := strings.Split(text, "\t")
	if len(parts) != 6 {
		t.Errorf("Expected 6 tab-separated parts, got %d", len(parts))
	}

	if parts[0] != "se" {
		t.Errorf("Query = %s, expected se", parts[0])
	}
	if parts[1] != "SE" {
		t.Errorf("Alpha2 = %s, expected SE", parts[1])
	}
	if parts[2] != "SWE" {
		t.Errorf("Alpha3 = %s, expected SWE", parts[2])
	}
	if parts[3] != "752" {
		t.Errorf("Numeric = %s, expected 752", parts[3])
	}
	if parts[4] != "Sverige" {
		t.Errorf("Name = %s, expected Sverige", parts[4])
	}
	if parts[5] != "SEK" {
		t.Errorf("Currencies = %s, expected SEK", parts[5])
	}
}

func TestLookupResultFormatTextError(t *testing.T) {
	result := &LookupResult{
		Query: "XX",
		Key:   "alpha2",
		Error: `no country with alpha2 "XX"`,
	}

	text := result.FormatText()

	parts := strings.Split(text, "\t")
	if len(parts) != 6 {
		t.Errorf("Expected 6 tab-separated parts, got %d", len(parts))
	}
	if !strings.HasPrefix(parts[5], "ERROR: ") {
		t.Errorf("Last part = %s, expected ERROR prefix", parts[5])
	}
}

func TestLookupResultFormatJSON(t *testing.T) {
	result := NewLookupResult("se", countrydb.KeyAlpha2, sverige)

	jsonStr, err := result.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if decoded["query"] != "se" {
		t.Errorf("query = %v, expected se", decoded["query"])
	}
	if decoded["key"] != "alpha2" {
		t.Errorf("key = %v, expected alpha2", decoded["key"])
	}
	if decoded["name"] != "Sverige" {
		t.Errorf("name = %v, expected Sverige", decoded["name"])
	}
	if _, ok := decoded["error"]; ok {
		t.Error("error field should be omitted on success")
	}
}

func TestBatchResultFormatText(t *testing.T) {
	batch := &BatchResult{
		Results: []*LookupResult{
			NewLookupResult("se", countrydb.KeyAlpha2, sverige),
			{Query: "XX", Key: "alpha2", Error: "not found"},
		},
	}

	lines := strings.Split(batch.FormatText(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "ERROR") {
		t.Errorf("Second line = %s, expected an error line", lines[1])
	}
}

func TestBatchResultFormatJSON(t *testing.T) {
	batch := &BatchResult{
		Results: []*LookupResult{
			NewLookupResult("se", countrydb.KeyAlpha2, sverige),
		},
	}

	jsonStr, err := batch.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Errorf("Expected 1 element, got %d", len(decoded))
	}
}

func TestFormatCountryText(t *testing.T) {
	text := FormatCountryText(sverige)
	if text != "SE\tSWE\t752\tSverige\tSEK" {
		t.Errorf("FormatCountryText = %q", text)
	}

	// No currency renders as a dash
	text = FormatCountryText(countrydb.Country{Name: "Antarktis", Alpha2: "AQ", Alpha3: "ATA", Numeric: "010"})
	if !strings.HasSuffix(text, "\t-") {
		t.Errorf("FormatCountryText without currencies = %q, expected trailing dash", text)
	}
}
