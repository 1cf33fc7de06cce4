// Package geopb serializes response models to protobuf wire format for
// clients that send Accept: application/x-protobuf. The message layouts are
// declared in proto/geolocation.proto; the encoders here write the same wire
// bytes directly with protowire, field by field.
package geopb

import (
	"math"
	"net/http"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// ContentType is the media type served for protobuf responses.
const ContentType = "application/x-protobuf"

// AcceptsProtobuf reports whether the request prefers protobuf output.
// Both "application/x-protobuf" and "application/protobuf" are accepted;
// responses always use the x- form.
func AcceptsProtobuf(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, ContentType) || strings.Contains(accept, "application/protobuf")
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendOptString(b []byte, num protowire.Number, s *string) []byte {
	if s == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *s)
}

func appendOptDouble(b []byte, num protowire.Number, f *float64) []byte {
	if f == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(*f))
}

func appendOptInt32(b []byte, num protowire.Number, i *int) []byte {
	if i == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(uint32(int32(*i))))
}

func appendOptBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// MarshalIPGeoResponse encodes the simple response.
func MarshalIPGeoResponse(resp *models.IPGeoResponse) []byte {
	var b []byte
	b = appendOptDouble(b, 1, resp.Latitude)
	b = appendOptDouble(b, 2, resp.Longitude)
	b = appendString(b, 3, resp.City)
	b = appendString(b, 4, resp.CountryName)
	if resp.TimeZone.Name != "" {
		b = appendMessage(b, 5, appendString(nil, 1, resp.TimeZone.Name))
	}
	b = appendString(b, 6, resp.Languages)
	return b
}

func marshalLocation(loc *models.LocationInfo) []byte {
	var b []byte
	b = appendOptString(b, 1, loc.ContinentCode)
	b = appendOptString(b, 2, loc.ContinentName)
	b = appendOptString(b, 3, loc.CountryCode2)
	b = appendOptString(b, 4, loc.CountryCode3)
	b = appendOptString(b, 5, loc.CountryName)
	b = appendOptString(b, 6, loc.CountryNameOfficial)
	b = appendOptString(b, 7, loc.CountryCapital)
	b = appendOptString(b, 8, loc.StateProv)
	b = appendOptString(b, 9, loc.StateCode)
	b = appendOptString(b, 10, loc.District)
	b = appendOptString(b, 11, loc.City)
	b = appendOptString(b, 12, loc.Zipcode)
	b = appendOptString(b, 13, loc.Latitude)
	b = appendOptString(b, 14, loc.Longitude)
	b = appendOptBool(b, 15, loc.IsEU)
	b = appendOptString(b, 16, loc.CountryFlag)
	b = appendOptString(b, 17, loc.GeonameID)
	b = appendOptString(b, 18, loc.CountryEmoji)
	return b
}

func marshalCountryMetadata(cm *models.CountryMetadataInfo) []byte {
	var b []byte
	b = appendOptString(b, 1, cm.CallingCode)
	b = appendOptString(b, 2, cm.TLD)
	for _, lang := range cm.Languages {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, lang)
	}
	return b
}

func marshalCurrency(c *models.CurrencyInfo) []byte {
	var b []byte
	b = appendOptString(b, 1, c.Code)
	b = appendOptString(b, 2, c.Name)
	b = appendOptString(b, 3, c.Symbol)
	return b
}

func marshalTimeZoneFull(tz *models.TimeZoneInfoFull) []byte {
	var b []byte
	b = appendOptString(b, 1, tz.Name)
	b = appendOptInt32(b, 2, tz.Offset)
	b = appendOptInt32(b, 3, tz.OffsetWithDST)
	b = appendOptString(b, 4, tz.CurrentTime)
	b = appendOptDouble(b, 5, tz.CurrentTimeUnix)
	b = appendOptBool(b, 6, tz.IsDST)
	b = appendOptInt32(b, 7, tz.DSTSavings)
	b = appendOptBool(b, 8, tz.DSTExists)
	return b
}

// MarshalIPGeoResponseFull encodes the extended response.
func MarshalIPGeoResponseFull(resp *models.IPGeoResponseFull) []byte {
	var b []byte
	b = appendOptString(b, 1, resp.IP)
	if resp.Location != nil {
		b = appendMessage(b, 2, marshalLocation(resp.Location))
	}
	if resp.CountryMetadata != nil {
		b = appendMessage(b, 3, marshalCountryMetadata(resp.CountryMetadata))
	}
	if resp.Currency != nil {
		b = appendMessage(b, 4, marshalCurrency(resp.Currency))
	}
	if resp.TimeZone != nil {
		b = appendMessage(b, 5, marshalTimeZoneFull(resp.TimeZone))
	}
	return b
}

// MarshalTimezoneResponse encodes the simple timezone response.
func MarshalTimezoneResponse(resp *models.TimezoneResponse) []byte {
	return appendString(nil, 1, resp.Timezone)
}

// MarshalTimezoneResponseFull encodes the extended timezone response.
func MarshalTimezoneResponseFull(resp *models.TimezoneResponseFull) []byte {
	var b []byte
	b = appendString(b, 1, resp.Timezone)
	b = appendOptInt32(b, 2, resp.Offset)
	b = appendOptInt32(b, 3, resp.OffsetWithDST)
	b = appendOptString(b, 4, resp.CurrentTime)
	b = appendOptDouble(b, 5, resp.CurrentTimeUnix)
	b = appendOptBool(b, 6, resp.IsDST)
	b = appendOptBool(b, 7, resp.DSTExists)
	return b
}

// MarshalError encodes the standard error body.
func MarshalError(resp *models.ErrorResponse) []byte {
	var b []byte
	b = appendString(b, 1, resp.Error)
	b = appendString(b, 2, resp.Code)
	return b
}
