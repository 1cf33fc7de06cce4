package models

// GeoData is the raw geolocation record decoded from the GeoLite2 database.
// It is produced once per lookup and never mutated afterwards.
type GeoData struct {
	Latitude    *float64
	Longitude   *float64
	City        string
	CountryName string
	CountryCode string
	StateProv   string
	StateCode   string
	PostalCode  string
	GeonameID   uint
}

// TimeZoneInfo is the timezone object nested in the simple response.
type TimeZoneInfo struct {
	Name string `json:"name"`
}

// IPGeoResponse is the simple (backward compatible) response for /ipgeo.
// String fields default to "" rather than being omitted; only the
// coordinates disappear when the record has none. This is the only shape
// the result cache stores.
type IPGeoResponse struct {
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`
	City        string       `json:"city"`
	CountryName string       `json:"country_name"`
	TimeZone    TimeZoneInfo `json:"time_zone"`
	Languages   string       `json:"languages"`
}

// LocationInfo carries the extended location block of the full response.
type LocationInfo struct {
	ContinentCode       *string `json:"continent_code,omitempty"`
	ContinentName       *string `json:"continent_name,omitempty"`
	CountryCode2        *string `json:"country_code2,omitempty"`
	CountryCode3        *string `json:"country_code3,omitempty"`
	CountryName         *string `json:"country_name,omitempty"`
	CountryNameOfficial *string `json:"country_name_official,omitempty"`
	CountryCapital      *string `json:"country_capital,omitempty"`
	StateProv           *string `json:"state_prov,omitempty"`
	StateCode           *string `json:"state_code,omitempty"`
	District            *string `json:"district,omitempty"`
	City                *string `json:"city,omitempty"`
	Zipcode             *string `json:"zipcode,omitempty"`
	Latitude            *string `json:"latitude,omitempty"`
	Longitude           *string `json:"longitude,omitempty"`
	IsEU                *bool   `json:"is_eu,omitempty"`
	CountryFlag         *string `json:"country_flag,omitempty"`
	GeonameID           *string `json:"geoname_id,omitempty"`
	CountryEmoji        *string `json:"country_emoji,omitempty"`
}

// CountryMetadataInfo carries static country reference data.
type CountryMetadataInfo struct {
	CallingCode *string  `json:"calling_code,omitempty"`
	TLD         *string  `json:"tld,omitempty"`
	Languages   []string `json:"languages,omitempty"`
}

// CurrencyInfo carries currency reference data.
type CurrencyInfo struct {
	Code   *string `json:"code,omitempty"`
	Name   *string `json:"name,omitempty"`
	Symbol *string `json:"symbol,omitempty"`
}

// TimeZoneInfoFull carries computed timezone details. Every field is
// optional; they are present together or absent together.
type TimeZoneInfoFull struct {
	Name            *string  `json:"name,omitempty"`
	Offset          *int     `json:"offset,omitempty"`
	OffsetWithDST   *int     `json:"offset_with_dst,omitempty"`
	CurrentTime     *string  `json:"current_time,omitempty"`
	CurrentTimeUnix *float64 `json:"current_time_unix,omitempty"`
	IsDST           *bool    `json:"is_dst,omitempty"`
	DSTSavings      *int     `json:"dst_savings,omitempty"`
	DSTExists       *bool    `json:"dst_exists,omitempty"`
}

// IPGeoResponseFull is the extended response shape. It is never cached
// because it embeds a live current_time. Each sub-object is entirely
// present or entirely absent.
type IPGeoResponseFull struct {
	IP              *string              `json:"ip,omitempty"`
	Location        *LocationInfo        `json:"location,omitempty"`
	CountryMetadata *CountryMetadataInfo `json:"country_metadata,omitempty"`
	Currency        *CurrencyInfo        `json:"currency,omitempty"`
	TimeZone        *TimeZoneInfoFull    `json:"time_zone,omitempty"`
}

// TimezoneResponse is the simple response for /timezone.
type TimezoneResponse struct {
	Timezone string `json:"timezone"`
}

// TimezoneResponseFull is the extended response for /v1/timezone.
type TimezoneResponseFull struct {
	Timezone        string   `json:"timezone"`
	Offset          *int     `json:"offset,omitempty"`
	OffsetWithDST   *int     `json:"offset_with_dst,omitempty"`
	CurrentTime     *string  `json:"current_time,omitempty"`
	CurrentTimeUnix *float64 `json:"current_time_unix,omitempty"`
	IsDST           *bool    `json:"is_dst,omitempty"`
	DSTExists       *bool    `json:"dst_exists,omitempty"`
}

// ErrorResponse is the standard error body: a human message plus a
// machine-readable code such as INVALID_IP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Pointer helpers for the optional response fields.

func Str(s string) *string     { return &s }
func Int(i int) *int           { return &i }
func Bool(b bool) *bool        { return &b }
func Float(f float64) *float64 { return &f }
