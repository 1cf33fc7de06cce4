package geopb

import (
	"math"
	"net/http/httptest"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// decodeFields parses a wire message into a map of field number to raw value
// for string/bytes fields and varint fields.
func decodeFields(t *testing.T, b []byte) (map[int][]byte, map[int]uint64) {
	t.Helper()
	strs := make(map[int][]byte)
	ints := make(map[int]uint64)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatal("bad tag")
		}
		b = b[n:]
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				t.Fatal("bad bytes field")
			}
			strs[int(num)] = v
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				t.Fatal("bad varint field")
			}
			ints[int(num)] = v
			b = b[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				t.Fatal("bad fixed64 field")
			}
			ints[int(num)] = v
			b = b[n:]
		default:
			t.Fatalf("unexpected wire type %v", typ)
		}
	}
	return strs, ints
}

// TestAcceptsProtobuf tests content negotiation
func TestAcceptsProtobuf(t *testing.T) {
	r := httptest.NewRequest("GET", "/ipgeo", nil)
	if AcceptsProtobuf(r) {
		t.Error("no Accept header must default to JSON")
	}

	r.Header.Set("Accept", "application/json")
	if AcceptsProtobuf(r) {
		t.Error("application/json must not negotiate protobuf")
	}

	r.Header.Set("Accept", "application/x-protobuf")
	if !AcceptsProtobuf(r) {
		t.Error("expected protobuf negotiation")
	}
}

// TestMarshalIPGeoResponse tests the simple response encoding
func TestMarshalIPGeoResponse(t *testing.T) {
	resp := &models.IPGeoResponse{
		Latitude:    models.Float(59.3294),
		Longitude:   models.Float(18.0687),
		City:        "Stockholm",
		CountryName: "Sweden",
		TimeZone:    models.TimeZoneInfo{Name: "Europe/Stockholm"},
		Languages:   "sv-SE,sv",
	}

	strs, ints := decodeFields(t, MarshalIPGeoResponse(resp))

	if got := string(strs[3]); got != "Stockholm" {
		t.Errorf("city = %q", got)
	}
	if got := string(strs[4]); got != "Sweden" {
		t.Errorf("country_name = %q", got)
	}
	if got := string(strs[6]); got != "sv-SE,sv" {
		t.Errorf("languages = %q", got)
	}

	if lat := math.Float64frombits(ints[1]); lat != 59.3294 {
		t.Errorf("latitude = %v", lat)
	}
	if lng := math.Float64frombits(ints[2]); lng != 18.0687 {
		t.Errorf("longitude = %v", lng)
	}

	tzStrs, _ := decodeFields(t, strs[5])
	if got := string(tzStrs[1]); got != "Europe/Stockholm" {
		t.Errorf("time_zone.name = %q", got)
	}
}

// TestMarshalIPGeoResponse_NoCoordinates tests omission of absent fields
func TestMarshalIPGeoResponse_NoCoordinates(t *testing.T) {
	resp := &models.IPGeoResponse{
		City:        "",
		CountryName: "Sweden",
		TimeZone:    models.TimeZoneInfo{Name: "Europe/Stockholm"},
	}

	_, ints := decodeFields(t, MarshalIPGeoResponse(resp))
	if _, present := ints[1]; present {
		t.Error("nil latitude must not be encoded")
	}
	if _, present := ints[2]; present {
		t.Error("nil longitude must not be encoded")
	}
}

// TestMarshalIPGeoResponseFull tests nested message encoding
func TestMarshalIPGeoResponseFull(t *testing.T) {
	resp := &models.IPGeoResponseFull{
		IP: models.Str("8.8.8.8"),
		Location: &models.LocationInfo{
			CountryCode2: models.Str("US"),
			CountryCode3: models.Str("USA"),
			IsEU:         models.Bool(false),
		},
		CountryMetadata: &models.CountryMetadataInfo{
			CallingCode: models.Str("+1"),
			TLD:         models.Str(".us"),
			Languages:   []string{"en-US", "en"},
		},
		Currency: &models.CurrencyInfo{
			Code:   models.Str("USD"),
			Symbol: models.Str("$"),
		},
		TimeZone: &models.TimeZoneInfoFull{
			Name:   models.Str("America/New_York"),
			Offset: models.Int(-5),
			IsDST:  models.Bool(true),
		},
	}

	strs, _ := decodeFields(t, MarshalIPGeoResponseFull(resp))

	if got := string(strs[1]); got != "8.8.8.8" {
		t.Errorf("ip = %q", got)
	}

	locStrs, locInts := decodeFields(t, strs[2])
	if got := string(locStrs[3]); got != "US" {
		t.Errorf("country_code2 = %q", got)
	}
	if got := string(locStrs[4]); got != "USA" {
		t.Errorf("country_code3 = %q", got)
	}
	if locInts[15] != 0 {
		t.Errorf("is_eu = %d, want 0", locInts[15])
	}

	tzStrs, tzInts := decodeFields(t, strs[5])
	if got := string(tzStrs[1]); got != "America/New_York" {
		t.Errorf("time_zone.name = %q", got)
	}
	if int32(tzInts[2]) != -5 {
		t.Errorf("offset = %d, want -5", int32(tzInts[2]))
	}
	if tzInts[6] != 1 {
		t.Errorf("is_dst = %d, want 1", tzInts[6])
	}
}

// TestMarshalCountryMetadata_RepeatedLanguages tests the repeated field
func TestMarshalCountryMetadata_RepeatedLanguages(t *testing.T) {
	resp := &models.IPGeoResponseFull{
		CountryMetadata: &models.CountryMetadataInfo{
			Languages: []string{"de-DE", "de"},
		},
	}

	strs, _ := decodeFields(t, MarshalIPGeoResponseFull(resp))

	// Walk the nested message manually to collect every field 3 value.
	var langs []string
	b := strs[3]
	for len(b) > 0 {
		num, _, n := protowire.ConsumeTag(b)
		b = b[n:]
		v, n := protowire.ConsumeBytes(b)
		b = b[n:]
		if num == 3 {
			langs = append(langs, string(v))
		}
	}
	if len(langs) != 2 || langs[0] != "de-DE" || langs[1] != "de" {
		t.Errorf("languages = %v", langs)
	}
}

// TestMarshalTimezoneResponse tests the timezone encodings
func TestMarshalTimezoneResponse(t *testing.T) {
	strs, _ := decodeFields(t, MarshalTimezoneResponse(&models.TimezoneResponse{Timezone: "Asia/Tokyo"}))
	if got := string(strs[1]); got != "Asia/Tokyo" {
		t.Errorf("timezone = %q", got)
	}

	full := &models.TimezoneResponseFull{
		Timezone:  "Asia/Tokyo",
		Offset:    models.Int(9),
		IsDST:     models.Bool(false),
		DSTExists: models.Bool(false),
	}
	fullStrs, fullInts := decodeFields(t, MarshalTimezoneResponseFull(full))
	if got := string(fullStrs[1]); got != "Asia/Tokyo" {
		t.Errorf("timezone = %q", got)
	}
	if int32(fullInts[2]) != 9 {
		t.Errorf("offset = %d, want 9", int32(fullInts[2]))
	}
}

// TestMarshalError tests the error body encoding
func TestMarshalError(t *testing.T) {
	strs, _ := decodeFields(t, MarshalError(&models.ErrorResponse{
		Error: "Invalid IP address: garbage",
		Code:  "INVALID_IP",
	}))
	if got := string(strs[1]); got != "Invalid IP address: garbage" {
		t.Errorf("error = %q", got)
	}
	if got := string(strs[2]); got != "INVALID_IP" {
		t.Errorf("code = %q", got)
	}
}
