// Package geoip wraps a MaxMind GeoIP2 database and exposes a lookup
// interface the service layer depends on.
package geoip

import (
	"errors"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// ErrNotFound is returned when the database has no record for an IP.
var ErrNotFound = errors.New("ip not found in geoip database")

// Lookup resolves an IP address to geographic data.
type Lookup interface {
	Lookup(ip string) (*models.GeoData, error)
	Close() error
}

// Reader is a Lookup backed by a GeoLite2/GeoIP2 City database file.
type Reader struct {
	db *geoip2.Reader
}

// Open opens the database at the given path.
func Open(path string) (*Reader, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening geoip database: %w", err)
	}
	return &Reader{db: db}, nil
}

// Lookup resolves the given IP address. It returns ErrNotFound when the
// database holds no record for the address.
func (r *Reader) Lookup(ip string) (*models.GeoData, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("invalid ip %q", ip)
	}

	record, err := r.db.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip city lookup: %w", err)
	}

	// The reader returns an empty record rather than an error when the
	// address falls outside every network in the database.
	if record.Country.IsoCode == "" && record.City.GeoNameID == 0 {
		return nil, ErrNotFound
	}

	data := &models.GeoData{
		City:        record.City.Names["en"],
		CountryName: record.Country.Names["en"],
		CountryCode: record.Country.IsoCode,
		PostalCode:  record.Postal.Code,
		GeonameID:   uint(record.City.GeoNameID),
	}

	if len(record.Subdivisions) > 0 {
		data.StateProv = record.Subdivisions[0].Names["en"]
		if record.Subdivisions[0].IsoCode != "" && record.Country.IsoCode != "" {
			data.StateCode = fmt.Sprintf("%s-%s", record.Country.IsoCode, record.Subdivisions[0].IsoCode)
		}
	}

	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		lat := record.Location.Latitude
		lng := record.Location.Longitude
		data.Latitude = &lat
		data.Longitude = &lng
	}

	return data, nil
}

// Close releases the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}
