package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/refdata"
)

// ResponseBuilder assembles API response shapes from raw geolocation
// records, country reference data, and timezone resolution.
type ResponseBuilder struct {
	zones     ZoneSource
	countries CountrySource
}

// NewResponseBuilder creates a builder over the given sources.
func NewResponseBuilder(zones ZoneSource, countries CountrySource) *ResponseBuilder {
	return &ResponseBuilder{zones: zones, countries: countries}
}

// BuildSimple assembles the simple response shape. A nil or empty record
// produces the default shape with empty strings and no coordinates.
func (b *ResponseBuilder) BuildSimple(geo *models.GeoData) *models.IPGeoResponse {
	resp := &models.IPGeoResponse{}
	if geo == nil {
		return resp
	}

	resp.Latitude = geo.Latitude
	resp.Longitude = geo.Longitude
	resp.City = geo.City
	resp.CountryName = geo.CountryName
	resp.Languages = b.countries.Languages(geo.CountryCode)

	if geo.Latitude != nil && geo.Longitude != nil {
		resp.TimeZone.Name = b.zones.ZoneName(*geo.Latitude, *geo.Longitude)
	}

	return resp
}

// BuildFull assembles the extended response shape. Country blocks fall back
// to placeholder metadata when the country code is unknown, so a resolvable
// record always yields a complete response.
func (b *ResponseBuilder) BuildFull(ip string, geo *models.GeoData) *models.IPGeoResponseFull {
	resp := &models.IPGeoResponseFull{IP: models.Str(ip)}
	if geo == nil {
		return resp
	}

	meta, hasMeta := b.countries.Metadata(geo.CountryCode)

	loc := &models.LocationInfo{}
	if geo.CountryCode != "" {
		loc.CountryCode2 = models.Str(geo.CountryCode)
		loc.CountryFlag = models.Str(refdata.FlagPath(geo.CountryCode))
	}
	if geo.CountryName != "" {
		loc.CountryName = models.Str(geo.CountryName)
	} else if hasMeta {
		loc.CountryName = models.Str(meta.Name)
	}
	if hasMeta {
		loc.ContinentCode = models.Str(meta.ContinentCode)
		loc.ContinentName = models.Str(meta.ContinentName)
		loc.CountryCode3 = models.Str(meta.ISOCode3)
		loc.CountryNameOfficial = models.Str(meta.OfficialName)
		loc.CountryCapital = models.Str(meta.Capital)
		loc.IsEU = models.Bool(meta.IsEU)
		if meta.FlagEmoji != "" {
			loc.CountryEmoji = models.Str(meta.FlagEmoji)
		}
	}
	if geo.StateProv != "" {
		loc.StateProv = models.Str(geo.StateProv)
	}
	if geo.StateCode != "" {
		loc.StateCode = models.Str(geo.StateCode)
	}
	if geo.City != "" {
		loc.City = models.Str(geo.City)
	}
	if geo.PostalCode != "" {
		loc.Zipcode = models.Str(geo.PostalCode)
	}
	if geo.Latitude != nil {
		loc.Latitude = models.Str(formatCoord(*geo.Latitude))
	}
	if geo.Longitude != nil {
		loc.Longitude = models.Str(formatCoord(*geo.Longitude))
	}
	if geo.GeonameID != 0 {
		loc.GeonameID = models.Str(strconv.FormatUint(uint64(geo.GeonameID), 10))
	}
	resp.Location = loc

	if hasMeta {
		cm := &models.CountryMetadataInfo{}
		if meta.CallingCode != "" {
			cm.CallingCode = models.Str(meta.CallingCode)
		}
		if meta.TLD != "" {
			cm.TLD = models.Str(meta.TLD)
		}
		// The metadata block carries the country's own language list, which
		// is broader than the simple-shape language string (US lists es-US).
		if meta.Languages != "" {
			cm.Languages = strings.Split(meta.Languages, ",")
		}
		resp.CountryMetadata = cm

		cur := &models.CurrencyInfo{}
		if meta.CurrencyCode != "" {
			cur.Code = models.Str(meta.CurrencyCode)
		}
		if meta.CurrencyName != "" {
			cur.Name = models.Str(meta.CurrencyName)
		}
		if meta.CurrencySymbol != "" {
			cur.Symbol = models.Str(meta.CurrencySymbol)
		}
		resp.Currency = cur
	}

	if geo.Latitude != nil && geo.Longitude != nil {
		if name := b.zones.ZoneName(*geo.Latitude, *geo.Longitude); name != "" {
			if details, ok := b.zones.ZoneDetails(name); ok {
				resp.TimeZone = &models.TimeZoneInfoFull{
					Name:            models.Str(details.Name),
					Offset:          models.Int(details.OffsetHours),
					OffsetWithDST:   models.Int(details.OffsetWithDST),
					CurrentTime:     models.Str(details.CurrentTime),
					CurrentTimeUnix: models.Float(details.CurrentTimeUnix),
					IsDST:           models.Bool(details.IsDST),
					DSTSavings:      models.Int(details.DSTSavingsHours),
					DSTExists:       models.Bool(details.DSTExists),
				}
			}
		}
	}

	return resp
}

// BuildTimezoneSimple resolves coordinates to a bare timezone name.
func (b *ResponseBuilder) BuildTimezoneSimple(lat, lng float64) *models.TimezoneResponse {
	return &models.TimezoneResponse{Timezone: b.zones.ZoneName(lat, lng)}
}

// BuildTimezoneFull resolves coordinates to a timezone with live details.
// When the coordinates fall outside every zone the name is empty and the
// detail fields are absent.
func (b *ResponseBuilder) BuildTimezoneFull(lat, lng float64) *models.TimezoneResponseFull {
	resp := &models.TimezoneResponseFull{}

	name := b.zones.ZoneName(lat, lng)
	if name == "" {
		return resp
	}
	resp.Timezone = name

	details, ok := b.zones.ZoneDetails(name)
	if !ok {
		return resp
	}
	resp.Offset = models.Int(details.OffsetHours)
	resp.OffsetWithDST = models.Int(details.OffsetWithDST)
	resp.CurrentTime = models.Str(details.CurrentTime)
	resp.CurrentTimeUnix = models.Float(details.CurrentTimeUnix)
	resp.IsDST = models.Bool(details.IsDST)
	resp.DSTExists = models.Bool(details.DSTExists)

	return resp
}

func formatCoord(f float64) string {
	return fmt.Sprintf("%.5f", f)
}
