package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// TestNewRedis_Connection tests creating the cache with a mock Redis
func TestNewRedis_Connection(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c, err := NewRedis(mr.Addr(), "", 0, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}
	defer c.Close()

	if c.client == nil {
		t.Error("expected client to be initialized")
	}
}

// TestNewRedis_ConnectionFailure tests connection errors
func TestNewRedis_ConnectionFailure(t *testing.T) {
	if _, err := NewRedis("invalid:9999", "", 0, time.Hour); err == nil {
		t.Error("expected connection error, got nil")
	}
}

// TestRedis_GetInsert tests the hit/miss cycle against mock Redis
func TestRedis_GetInsert(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c, err := NewRedis(mr.Addr(), "", 0, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Insert("8.8.8.8", &models.IPGeoResponse{
		City:        "Mountain View",
		CountryName: "United States",
		TimeZone:    models.TimeZoneInfo{Name: "America/Los_Angeles"},
	})

	got, ok := c.Get("8.8.8.8")
	if !ok {
		t.Fatal("expected hit after insert")
	}
	if got.City != "Mountain View" {
		t.Errorf("expected Mountain View, got %s", got.City)
	}
	if got.TimeZone.Name != "America/Los_Angeles" {
		t.Errorf("expected America/Los_Angeles, got %s", got.TimeZone.Name)
	}
}

// TestRedis_TTLExpiry tests that entries expire after the TTL
func TestRedis_TTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c, err := NewRedis(mr.Addr(), "", 0, time.Second)
	if err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}
	defer c.Close()

	c.Insert("8.8.8.8", &models.IPGeoResponse{City: "Mountain View"})

	// miniredis advances TTLs manually
	mr.FastForward(2 * time.Second)

	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("expected entry to expire")
	}
}

// TestRedis_CorruptValue tests that undecodable values degrade to a miss
func TestRedis_CorruptValue(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	c, err := NewRedis(mr.Addr(), "", 0, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to Redis: %v", err)
	}
	defer c.Close()

	mr.Set("geo:8.8.8.8", "{not json")

	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("expected corrupt value to read as a miss")
	}
}
