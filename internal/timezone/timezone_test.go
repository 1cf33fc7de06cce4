package timezone

import "testing"

// TestFinder_ZoneName tests coordinate to zone name resolution
func TestFinder_ZoneName(t *testing.T) {
	finder := NewFinder()

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want string
	}{
		{"Stockholm", 59.329504, 18.069532, "Europe/Stockholm"},
		{"New York", 40.7128, -74.0060, "America/New_York"},
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo"},
		{"London", 51.5074, -0.1278, "Europe/London"},
		{"Sydney", -33.8688, 151.2093, "Australia/Sydney"},
		{"Berlin", 52.5200, 13.4050, "Europe/Berlin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := finder.ZoneName(tt.lat, tt.lng); got != tt.want {
				t.Errorf("ZoneName(%v, %v) = %q, want %q", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

// TestFinder_ZoneName_OutOfRange tests rejection of invalid coordinates
func TestFinder_ZoneName_OutOfRange(t *testing.T) {
	finder := NewFinder()

	coords := [][2]float64{
		{999, 999},
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}

	for _, c := range coords {
		if got := finder.ZoneName(c[0], c[1]); got != "" {
			t.Errorf("ZoneName(%v, %v) = %q, want empty", c[0], c[1], got)
		}
	}
}

// TestFinder_ZoneName_Boundaries tests that the inclusive edges are accepted
func TestFinder_ZoneName_Boundaries(t *testing.T) {
	finder := NewFinder()

	// The poles and the antimeridian are valid inputs; whatever zone (or
	// none) comes back, the call must not be rejected by range checks.
	_ = finder.ZoneName(90, 0)
	_ = finder.ZoneName(-90, 0)
	_ = finder.ZoneName(0, 180)
	_ = finder.ZoneName(0, -180)
}

// TestFinder_ZoneDetails_Tokyo tests a fixed-offset zone without DST
func TestFinder_ZoneDetails_Tokyo(t *testing.T) {
	finder := NewFinder()

	details, ok := finder.ZoneDetails("Asia/Tokyo")
	if !ok {
		t.Fatal("expected details for Asia/Tokyo")
	}
	if details.Name != "Asia/Tokyo" {
		t.Errorf("expected name Asia/Tokyo, got %s", details.Name)
	}
	if details.OffsetHours != 9 {
		t.Errorf("expected offset 9, got %d", details.OffsetHours)
	}
	if details.DSTExists {
		t.Error("Japan does not observe DST")
	}
	if details.IsDST {
		t.Error("IsDST must be false when DST does not exist")
	}
}

// TestFinder_ZoneDetails_NewYork tests a DST-observing zone
func TestFinder_ZoneDetails_NewYork(t *testing.T) {
	finder := NewFinder()

	details, ok := finder.ZoneDetails("America/New_York")
	if !ok {
		t.Fatal("expected details for America/New_York")
	}
	if details.OffsetHours < -5 || details.OffsetHours > -4 {
		t.Errorf("expected offset in [-5,-4], got %d", details.OffsetHours)
	}
	if !details.DSTExists {
		t.Error("New York observes DST")
	}
	if details.DSTSavingsHours != 1 {
		t.Errorf("expected 1 hour DST savings, got %d", details.DSTSavingsHours)
	}
}

// TestFinder_ZoneDetails_UTC tests the zero-offset zone
func TestFinder_ZoneDetails_UTC(t *testing.T) {
	finder := NewFinder()

	details, ok := finder.ZoneDetails("UTC")
	if !ok {
		t.Fatal("expected details for UTC")
	}
	if details.OffsetHours != 0 {
		t.Errorf("expected offset 0, got %d", details.OffsetHours)
	}
}

// TestFinder_ZoneDetails_Invalid tests unknown zone names
func TestFinder_ZoneDetails_Invalid(t *testing.T) {
	finder := NewFinder()

	if _, ok := finder.ZoneDetails("Invalid/Timezone"); ok {
		t.Error("expected no details for unknown zone")
	}
	if _, ok := finder.ZoneDetails(""); ok {
		t.Error("expected no details for empty name")
	}
}

// TestFinder_ZoneDetails_CurrentTime tests that live time fields are set
func TestFinder_ZoneDetails_CurrentTime(t *testing.T) {
	finder := NewFinder()

	details, ok := finder.ZoneDetails("Europe/Stockholm")
	if !ok {
		t.Fatal("expected details for Europe/Stockholm")
	}
	if details.CurrentTime == "" {
		t.Error("expected formatted current time")
	}
	if details.CurrentTimeUnix <= 0 {
		t.Errorf("expected positive unix time, got %v", details.CurrentTimeUnix)
	}
}
