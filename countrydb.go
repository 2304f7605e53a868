// Package countrydb provides ISO-3166-1 country records with their ISO-4217
// currency codes, and lookups by name, alpha-2, alpha-3 and numeric code.
package countrydb

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Country is a single ISO-3166-1 record.
type Country struct {
	Name       string   `json:"name"`
	Alpha2     string   `json:"alpha2"`
	Alpha3     string   `json:"alpha3"`
	Numeric    string   `json:"numeric"`
	Currencies []string `json:"currencies"`
}

// Key selects a lookup or iteration field.
type Key string

const (
	KeyAlpha2  Key = "alpha2"
	KeyAlpha3  Key = "alpha3"
	KeyNumeric Key = "numeric"
	KeyName    Key = "name"
)

// Keys returns all valid lookup keys.
func Keys() []Key {
	return []Key{KeyAlpha2, KeyAlpha3, KeyNumeric, KeyName}
}

func keyNames() []string {
	keys := Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}

// ParseKey parses a key name.
func ParseKey(s string) (Key, error) {
	switch Key(s) {
	case KeyAlpha2, KeyAlpha3, KeyNumeric, KeyName:
		return Key(s), nil
	default:
		return "", &KeyError{Name: s}
	}
}

// field returns the record field selected by key.
func (c Country) field(key Key) string {
	switch key {
	case KeyAlpha2:
		return c.Alpha2
	case KeyAlpha3:
		return c.Alpha3
	case KeyNumeric:
		return c.Numeric
	default:
		return c.Name
	}
}

// Registry holds an ordered set of country records. The records are fixed at
// construction; every method is a pure read, so a Registry is safe for
// concurrent use.
type Registry struct {
	countries []Country
}

// New returns a registry over the built-in dataset, or over the given records
// if any are supplied. Supplied records replace the built-in table entirely
// and are copied in order, so later mutation of the caller's slice does not
// affect the registry.
func New(records ...Country) *Registry {
	if len(records) == 0 {
		return &Registry{countries: builtin()}
	}
	cs := make([]Country, len(records))
	copy(cs, records)
	return &Registry{countries: cs}
}

// Name returns the first record whose name equals value, ignoring case.
func (r *Registry) Name(value string) (Country, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Country{}, &ArgumentError{Key: KeyName, Value: value, Reason: "must not be empty"}
	}
	return r.find(KeyName, value)
}

// Alpha2 returns the record with the given two-letter code, ignoring case.
func (r *Registry) Alpha2(code string) (Country, error) {
	code = strings.TrimSpace(code)
	if len(code) != 2 || !isAlpha(code) {
		return Country{}, &ArgumentError{Key: KeyAlpha2, Value: code, Reason: "must be exactly 2 letters"}
	}
	return r.find(KeyAlpha2, code)
}

// Alpha3 returns the record with the given three-letter code, ignoring case.
func (r *Registry) Alpha3(code string) (Country, error) {
	code = strings.TrimSpace(code)
	if len(code) != 3 || !isAlpha(code) {
		return Country{}, &ArgumentError{Key: KeyAlpha3, Value: code, Reason: "must be exactly 3 letters"}
	}
	return r.find(KeyAlpha3, code)
}

// Numeric returns the record with the given numeric code. The code may be
// given without zero padding: "4", "04" and "004" all match "004".
func (r *Registry) Numeric(code string) (Country, error) {
	code = strings.TrimSpace(code)
	if code == "" || !isDigits(code) {
		return Country{}, &ArgumentError{Key: KeyNumeric, Value: code, Reason: "must contain only digits"}
	}
	n, err := strconv.Atoi(code)
	if err != nil || n > 999 {
		return Country{}, &ArgumentError{Key: KeyNumeric, Value: code, Reason: "must be an integer in [0, 999]"}
	}
	return r.find(KeyNumeric, fmt.Sprintf("%03d", n))
}

// find scans records in storage order and returns the first match.
func (r *Registry) find(key Key, value string) (Country, error) {
	for _, c := range r.countries {
		if strings.EqualFold(c.field(key), value) {
			return c, nil
		}
	}
	return Country{}, &NotFoundError{Key: key, Value: value}
}

// All returns a copy of the dataset in storage order.
func (r *Registry) All() []Country {
	result := make([]Country, len(r.countries))
	copy(result, r.countries)
	return result
}

// Count returns the number of records.
func (r *Registry) Count() int {
	return len(r.countries)
}

// Countries returns a restartable sequence over all records in storage order.
func (r *Registry) Countries() iter.Seq[Country] {
	return func(yield func(Country) bool) {
		for _, c := range r.countries {
			if !yield(c) {
				return
			}
		}
	}
}

// Iter returns a restartable sequence of (key value, record) pairs in storage
// order. Duplicate key values in the dataset produce duplicate pairs; nothing
// is sorted or deduplicated.
func (r *Registry) Iter(key Key) (iter.Seq2[string, Country], error) {
	switch key {
	case KeyAlpha2, KeyAlpha3, KeyNumeric, KeyName:
	default:
		return nil, &KeyError{Name: string(key)}
	}
	return func(yield func(string, Country) bool) {
		for _, c := range r.countries {
			if !yield(c.field(key), c) {
				return
			}
		}
	}, nil
}

func isAlpha(s string) bool {
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
