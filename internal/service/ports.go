package service

import (
	"github.com/evyataryagoni/geoip-api/internal/refdata"
	"github.com/evyataryagoni/geoip-api/internal/timezone"
)

// ZoneSource resolves coordinates to timezone names and timezone names to
// live details. Implemented by timezone.Finder.
type ZoneSource interface {
	ZoneName(lat, lng float64) string
	ZoneDetails(name string) (*timezone.Details, bool)
}

// CountrySource serves static country reference data keyed by ISO 3166-1
// alpha-2 code. Implemented by refdata.Table.
type CountrySource interface {
	Metadata(code string) (refdata.Country, bool)
	Languages(code string) string
}
