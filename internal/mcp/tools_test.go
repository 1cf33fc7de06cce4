package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/evyataryagoni/geoip-api/internal/cache"
	"github.com/evyataryagoni/geoip-api/internal/geoip"
	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/refdata"
	"github.com/evyataryagoni/geoip-api/internal/service"
	"github.com/evyataryagoni/geoip-api/internal/timezone"
)

func newTestToolSet() (*ToolSet, *geoip.MockLookup) {
	mock := geoip.NewMockLookup()
	mock.Data["8.8.8.8"] = &models.GeoData{
		Latitude:    models.Float(37.386),
		Longitude:   models.Float(-122.0838),
		City:        "Mountain View",
		CountryName: "United States",
		CountryCode: "US",
	}
	mock.Data["2.16.0.1"] = &models.GeoData{
		City:        "Berlin",
		CountryName: "Germany",
		CountryCode: "DE",
	}

	builder := service.NewResponseBuilder(timezone.NewFinder(), refdata.Load())
	svc := service.NewGeoService(mock, builder, cache.Noop{}, nil, nil)
	return NewToolSet(svc), mock
}

func resultText(t *testing.T, result *ToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Fatalf("content type = %q", result.Content[0].Type)
	}
	return result.Content[0].Text
}

func errorCode(t *testing.T, result *ToolResult) string {
	t.Helper()
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Code
}

// TestLookup_Full tests the default full format
func TestLookup_Full(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.Lookup(json.RawMessage(`{"ip": "8.8.8.8"}`))
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	resp, ok := result.Structured.(*models.IPGeoResponseFull)
	if !ok {
		t.Fatalf("structured content type %T", result.Structured)
	}
	if resp.IP == nil || *resp.IP != "8.8.8.8" {
		t.Errorf("ip = %v", resp.IP)
	}
	if resp.Location == nil || *resp.Location.City != "Mountain View" {
		t.Errorf("location = %+v", resp.Location)
	}
	if !strings.Contains(resultText(t, result), `"Mountain View"`) {
		t.Error("text block must carry the serialized response")
	}
}

// TestLookup_Simple tests the simple format
func TestLookup_Simple(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.Lookup(json.RawMessage(`{"ip": "8.8.8.8", "format": "simple"}`))
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	resp, ok := result.Structured.(*models.IPGeoResponse)
	if !ok {
		t.Fatalf("structured content type %T", result.Structured)
	}
	if resp.City != "Mountain View" {
		t.Errorf("city = %q", resp.City)
	}
	if resp.TimeZone.Name != "America/Los_Angeles" {
		t.Errorf("time_zone = %q", resp.TimeZone.Name)
	}
}

// TestLookup_InvalidIP tests validation failure as a tool error
func TestLookup_InvalidIP(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.Lookup(json.RawMessage(`{"ip": "garbage"}`))
	if code := errorCode(t, result); code != "INVALID_IP" {
		t.Errorf("code = %q", code)
	}
}

// TestLookup_PrivateIP tests private address rejection
func TestLookup_PrivateIP(t *testing.T) {
	tools, mock := newTestToolSet()

	result := tools.Lookup(json.RawMessage(`{"ip": "192.168.1.1"}`))
	if code := errorCode(t, result); code != "PRIVATE_IP" {
		t.Errorf("code = %q", code)
	}
	if len(mock.LookupCalls) != 0 {
		t.Error("private IP must not reach the database")
	}
}

// TestLookup_NotFound tests the strict miss behavior
func TestLookup_NotFound(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.Lookup(json.RawMessage(`{"ip": "203.0.113.1"}`))
	if code := errorCode(t, result); code != "NOT_FOUND" {
		t.Errorf("code = %q", code)
	}
}

// TestBulkLookup_PartialFailure tests that failures do not abort the batch
func TestBulkLookup_PartialFailure(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.BulkLookup(json.RawMessage(`{"ips": ["8.8.8.8", "10.0.0.1", "garbage"]}`))
	if result.IsError {
		t.Fatalf("partial failure must still be a success result: %s", resultText(t, result))
	}

	bulk, ok := result.Structured.(*BulkResult)
	if !ok {
		t.Fatalf("structured content type %T", result.Structured)
	}
	if len(bulk.Results) != 1 {
		t.Errorf("results = %d, want 1", len(bulk.Results))
	}
	if len(bulk.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(bulk.Errors))
	}

	codes := map[string]string{}
	for _, e := range bulk.Errors {
		codes[e.IP] = e.Code
	}
	if codes["10.0.0.1"] != "PRIVATE_IP" {
		t.Errorf("10.0.0.1 code = %q", codes["10.0.0.1"])
	}
	if codes["garbage"] != "INVALID_IP" {
		t.Errorf("garbage code = %q", codes["garbage"])
	}
}

// TestBulkLookup_LimitExceeded tests rejection above the IP cap
func TestBulkLookup_LimitExceeded(t *testing.T) {
	tools, mock := newTestToolSet()

	ips := make([]string, 101)
	for i := range ips {
		ips[i] = "8.8.8.8"
	}
	args, _ := json.Marshal(map[string]interface{}{"ips": ips})

	result := tools.BulkLookup(args)
	if code := errorCode(t, result); code != "BULK_LIMIT_EXCEEDED" {
		t.Errorf("code = %q", code)
	}
	if len(mock.LookupCalls) != 0 {
		t.Error("an oversized batch must not perform any lookups")
	}
}

// TestLookupSelf tests caller IP plumbing
func TestLookupSelf(t *testing.T) {
	tools, mock := newTestToolSet()

	result := tools.LookupSelf("8.8.8.8", json.RawMessage(`{}`))
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if len(mock.LookupCalls) != 1 || mock.LookupCalls[0] != "8.8.8.8" {
		t.Errorf("lookup calls = %v", mock.LookupCalls)
	}
}

// TestLookupSelf_NoCallerIP tests the stdio limitation
func TestLookupSelf_NoCallerIP(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.LookupSelf("", json.RawMessage(`{}`))
	if code := errorCode(t, result); code != "STDIO_NO_CALLER_IP" {
		t.Errorf("code = %q", code)
	}
}

// TestTimezoneLookup tests both formats and validation
func TestTimezoneLookup(t *testing.T) {
	tools, _ := newTestToolSet()

	result := tools.TimezoneLookup(json.RawMessage(`{"lat": 35.6762, "lon": 139.6503, "format": "simple"}`))
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	resp, ok := result.Structured.(*models.TimezoneResponse)
	if !ok {
		t.Fatalf("structured content type %T", result.Structured)
	}
	if resp.Timezone != "Asia/Tokyo" {
		t.Errorf("timezone = %q", resp.Timezone)
	}

	full := tools.TimezoneLookup(json.RawMessage(`{"lat": 35.6762, "lon": 139.6503}`))
	fullResp, ok := full.Structured.(*models.TimezoneResponseFull)
	if !ok {
		t.Fatalf("structured content type %T", full.Structured)
	}
	if fullResp.Offset == nil || *fullResp.Offset != 9 {
		t.Errorf("offset = %v", fullResp.Offset)
	}

	bad := tools.TimezoneLookup(json.RawMessage(`{"lat": 95, "lon": 10}`))
	if code := errorCode(t, bad); code != "INVALID_LATITUDE" {
		t.Errorf("code = %q", code)
	}

	missing := tools.TimezoneLookup(json.RawMessage(`{"lat": 10}`))
	if code := errorCode(t, missing); code != "INVALID_LATITUDE" {
		t.Errorf("code = %q", code)
	}
}
