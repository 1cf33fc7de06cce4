package cache

import (
	"testing"
	"time"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// TestMemory_GetInsert tests the basic hit/miss cycle
func TestMemory_GetInsert(t *testing.T) {
	c := NewMemory(10, time.Minute)
	defer c.Close()

	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("expected miss on empty cache")
	}

	resp := &models.IPGeoResponse{City: "Mountain View", CountryName: "United States"}
	c.Insert("8.8.8.8", resp)

	got, ok := c.Get("8.8.8.8")
	if !ok {
		t.Fatal("expected hit after insert")
	}
	if got.City != "Mountain View" {
		t.Errorf("expected Mountain View, got %s", got.City)
	}
}

// TestMemory_TTLExpiry tests that entries expire
func TestMemory_TTLExpiry(t *testing.T) {
	c := NewMemory(10, 50*time.Millisecond)
	defer c.Close()

	c.Insert("8.8.8.8", &models.IPGeoResponse{City: "Mountain View"})
	time.Sleep(120 * time.Millisecond)

	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("expected entry to expire")
	}
}

// TestMemory_Capacity tests that the cache stays within its entry bound
func TestMemory_Capacity(t *testing.T) {
	c := NewMemory(2, time.Minute)
	defer c.Close()

	c.Insert("1.1.1.1", &models.IPGeoResponse{City: "A"})
	c.Insert("2.2.2.2", &models.IPGeoResponse{City: "B"})
	c.Insert("3.3.3.3", &models.IPGeoResponse{City: "C"})

	hits := 0
	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		if _, ok := c.Get(ip); ok {
			hits++
		}
	}
	if hits > 2 {
		t.Errorf("expected at most 2 entries retained, got %d hits", hits)
	}
}

// TestNoop tests the disabled-cache backend
func TestNoop(t *testing.T) {
	var c Cache = Noop{}

	c.Insert("8.8.8.8", &models.IPGeoResponse{City: "Mountain View"})
	if _, ok := c.Get("8.8.8.8"); ok {
		t.Error("noop cache must never hit")
	}
	if err := c.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
