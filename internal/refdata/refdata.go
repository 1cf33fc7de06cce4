// Package refdata holds the static country reference tables: metadata
// keyed by ISO 3166-1 alpha-2 code and the per-country language strings.
// The tables are built once at process start and shared read-only across
// all request handlers.
package refdata

import (
	"fmt"
	"strings"
)

// fallback is returned for country codes that are present on the record
// but missing from the table, so callers always get a metadata object
// when a code exists.
var fallback = Country{
	Name:          "Unknown",
	OfficialName:  "Unknown",
	ISOCode3:      "UNK",
	Capital:       "Unknown",
	ContinentCode: "XX",
	ContinentName: "Unknown",
	FlagEmoji:     "\U0001F3F3️",
}

// Table provides lookups over the embedded country tables. The zero
// value is not usable; construct with Load.
type Table struct {
	countries map[string]Country
	languages map[string]string
}

// Load returns the process-wide reference table.
func Load() *Table {
	return &Table{
		countries: countries,
		languages: languages,
	}
}

// Lookup returns the metadata for a country code, or ok=false when the
// code is empty or unknown. Codes are matched case-insensitively.
func (t *Table) Lookup(code string) (Country, bool) {
	c, ok := t.countries[strings.ToUpper(code)]
	return c, ok
}

// Metadata resolves a country code to metadata. Unknown non-empty codes
// fall back to the "UNK" placeholder record instead of absence; only an
// empty code yields ok=false.
func (t *Table) Metadata(code string) (Country, bool) {
	if code == "" {
		return Country{}, false
	}
	if c, ok := t.countries[strings.ToUpper(code)]; ok {
		return c, true
	}
	return fallback, true
}

// Languages returns the language string for a country code, or "" when
// the code is empty or unknown.
func (t *Table) Languages(code string) string {
	if code == "" {
		return ""
	}
	return t.languages[strings.ToUpper(code)]
}

// FlagPath returns the static asset path for a country's flag, suitable
// for use with flag-icons style SVG sets.
func FlagPath(code string) string {
	return fmt.Sprintf("/static/flags/%s.svg", strings.ToLower(code))
}
