package service

import (
	"errors"
	"testing"
	"time"

	"github.com/evyataryagoni/geoip-api/internal/cache"
	"github.com/evyataryagoni/geoip-api/internal/geoip"
	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/refdata"
	"github.com/evyataryagoni/geoip-api/internal/validate"
)

func newTestService(mock *geoip.MockLookup, c cache.Cache) *GeoService {
	if c == nil {
		c = cache.Noop{}
	}
	builder := NewResponseBuilder(stockholmZones(), refdata.Load())
	return NewGeoService(mock, builder, c, nil, nil)
}

// TestLookupSimple_Success tests the happy path
func TestLookupSimple_Success(t *testing.T) {
	mock := geoip.NewMockLookup()
	mock.Data["8.8.8.8"] = &models.GeoData{
		City:        "Mountain View",
		CountryName: "United States",
		CountryCode: "US",
	}
	svc := newTestService(mock, nil)

	resp, verr := svc.LookupSimple("8.8.8.8", false)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if resp.City != "Mountain View" {
		t.Errorf("city = %q", resp.City)
	}
	if resp.Languages != "en-US,en" {
		t.Errorf("languages = %q", resp.Languages)
	}
}

// TestLookupSimple_InvalidIP tests validation failure
func TestLookupSimple_InvalidIP(t *testing.T) {
	mock := geoip.NewMockLookup()
	svc := newTestService(mock, nil)

	_, verr := svc.LookupSimple("not-an-ip", false)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if verr.Code != validate.CodeInvalidIP {
		t.Errorf("code = %s", verr.Code)
	}
	if len(mock.LookupCalls) != 0 {
		t.Error("invalid IP must not reach the database")
	}
}

// TestLookupSimple_SoftFail tests that a database miss yields defaults
func TestLookupSimple_SoftFail(t *testing.T) {
	mock := geoip.NewMockLookup()
	svc := newTestService(mock, nil)

	resp, verr := svc.LookupSimple("203.0.113.1", false)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if resp.City != "" || resp.CountryName != "" {
		t.Errorf("expected default shape, got %+v", resp)
	}
}

// TestLookupSimple_SoftFailOnError tests degradation on database errors
func TestLookupSimple_SoftFailOnError(t *testing.T) {
	mock := geoip.NewMockLookup()
	mock.Err = errors.New("database corrupted")
	svc := newTestService(mock, nil)

	resp, verr := svc.LookupSimple("8.8.8.8", false)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if resp.City != "" {
		t.Errorf("expected default shape, got %+v", resp)
	}
}

// TestLookupSimple_CacheHitSkipsLookup tests that a cache hit suppresses
// the database query entirely
func TestLookupSimple_CacheHitSkipsLookup(t *testing.T) {
	mock := geoip.NewMockLookup()
	mock.Data["8.8.8.8"] = &models.GeoData{City: "Mountain View", CountryCode: "US"}
	svc := newTestService(mock, cache.NewMemory(10, time.Minute))

	if _, verr := svc.LookupSimple("8.8.8.8", true); verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if len(mock.LookupCalls) != 1 {
		t.Fatalf("expected one lookup, got %d", len(mock.LookupCalls))
	}

	resp, verr := svc.LookupSimple("8.8.8.8", true)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if len(mock.LookupCalls) != 1 {
		t.Errorf("cache hit must not query the database, got %d lookups", len(mock.LookupCalls))
	}
	if resp.City != "Mountain View" {
		t.Errorf("city = %q", resp.City)
	}
}

// TestLookupSimple_CacheBypass tests that useCache=false never touches the cache
func TestLookupSimple_CacheBypass(t *testing.T) {
	mock := geoip.NewMockLookup()
	mock.Data["8.8.8.8"] = &models.GeoData{City: "Mountain View", CountryCode: "US"}
	c := cache.NewMemory(10, time.Minute)
	svc := newTestService(mock, c)

	if _, verr := svc.LookupSimple("8.8.8.8", false); verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("bypassed request must not populate the cache")
	}
}

// TestLookupFullStrict_NotFound tests the strict miss behavior
func TestLookupFullStrict_NotFound(t *testing.T) {
	mock := geoip.NewMockLookup()
	svc := newTestService(mock, nil)

	_, verr := svc.LookupFullStrict("203.0.113.1")
	if verr == nil {
		t.Fatal("expected error")
	}
	if verr.Code != validate.CodeNotFound {
		t.Errorf("code = %s, want %s", verr.Code, validate.CodeNotFound)
	}
}

// TestLookupSimpleStrict_PrivateIP tests private address rejection
func TestLookupSimpleStrict_PrivateIP(t *testing.T) {
	mock := geoip.NewMockLookup()
	svc := newTestService(mock, nil)

	_, verr := svc.LookupSimpleStrict("192.168.1.1")
	if verr == nil {
		t.Fatal("expected error")
	}
	if verr.Code != validate.CodePrivateIP {
		t.Errorf("code = %s, want %s", verr.Code, validate.CodePrivateIP)
	}
	if len(mock.LookupCalls) != 0 {
		t.Error("private IP must not reach the database")
	}
}

// TestTimezone_Validation tests coordinate validation ordering
func TestTimezone_Validation(t *testing.T) {
	svc := newTestService(geoip.NewMockLookup(), nil)

	_, verr := svc.Timezone(95, 200)
	if verr == nil || verr.Code != validate.CodeInvalidLatitude {
		t.Errorf("expected latitude error first, got %v", verr)
	}

	_, verr = svc.Timezone(45, 200)
	if verr == nil || verr.Code != validate.CodeInvalidLongitude {
		t.Errorf("expected longitude error, got %v", verr)
	}

	resp, verr := svc.Timezone(59.3294, 18.0687)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if resp.Timezone != "Europe/Stockholm" {
		t.Errorf("timezone = %q", resp.Timezone)
	}
}

// TestValidateBulk tests the bulk limit passthrough
func TestValidateBulk(t *testing.T) {
	svc := newTestService(geoip.NewMockLookup(), nil)

	if verr := svc.ValidateBulk(100); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
	if verr := svc.ValidateBulk(101); verr == nil || verr.Code != validate.CodeBulkLimitExceeded {
		t.Errorf("expected bulk limit error, got %v", verr)
	}
}
