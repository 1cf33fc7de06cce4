package validate

import "testing"

// TestValidator_IP tests IP syntax validation
func TestValidator_IP(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		ip      string
		wantErr bool
	}{
		{"valid IPv4", "8.8.8.8", false},
		{"valid IPv6", "2001:4860:4860::8888", false},
		{"empty", "", true},
		{"malformed", "not-an-ip", true},
		{"octet out of range", "256.1.1.1", true},
		{"trailing garbage", "8.8.8.8x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.IP(tt.ip)
			if (err != nil) != tt.wantErr {
				t.Errorf("IP(%q) error = %v, wantErr %v", tt.ip, err, tt.wantErr)
			}
			if err != nil && err.Code != CodeInvalidIP {
				t.Errorf("expected code %s, got %s", CodeInvalidIP, err.Code)
			}
		})
	}
}

// TestValidator_PublicIP tests rejection of non-routable addresses
func TestValidator_PublicIP(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		ip       string
		wantCode string
	}{
		{"public IPv4", "8.8.8.8", ""},
		{"public IPv6", "2001:4860:4860::8888", ""},
		{"rfc1918 10", "10.0.0.1", CodePrivateIP},
		{"rfc1918 172", "172.16.0.1", CodePrivateIP},
		{"rfc1918 192", "192.168.1.1", CodePrivateIP},
		{"loopback", "127.0.0.1", CodePrivateIP},
		{"ipv6 loopback", "::1", CodePrivateIP},
		{"link local", "169.254.1.1", CodePrivateIP},
		{"unspecified", "0.0.0.0", CodePrivateIP},
		{"broadcast", "255.255.255.255", CodePrivateIP},
		{"multicast", "224.0.0.1", CodePrivateIP},
		{"malformed", "garbage", CodeInvalidIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.PublicIP(tt.ip)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("PublicIP(%q) unexpected error: %v", tt.ip, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("PublicIP(%q) expected error code %s", tt.ip, tt.wantCode)
			}
			if err.Code != tt.wantCode {
				t.Errorf("PublicIP(%q) code = %s, want %s", tt.ip, err.Code, tt.wantCode)
			}
		})
	}
}

// TestValidator_Latitude tests latitude range validation
func TestValidator_Latitude(t *testing.T) {
	v := New()

	if err := v.Latitude(59.329504); err != nil {
		t.Errorf("valid latitude rejected: %v", err)
	}
	if err := v.Latitude(90); err != nil {
		t.Errorf("boundary latitude rejected: %v", err)
	}
	if err := v.Latitude(-90); err != nil {
		t.Errorf("boundary latitude rejected: %v", err)
	}

	err := v.Latitude(90.5)
	if err == nil {
		t.Fatal("expected error for latitude 90.5")
	}
	if err.Code != CodeInvalidLatitude {
		t.Errorf("expected code %s, got %s", CodeInvalidLatitude, err.Code)
	}
	if err.Message != "Latitude must be between -90 and 90, got: 90.5" {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

// TestValidator_Longitude tests longitude range validation
func TestValidator_Longitude(t *testing.T) {
	v := New()

	if err := v.Longitude(18.069532); err != nil {
		t.Errorf("valid longitude rejected: %v", err)
	}
	if err := v.Longitude(180); err != nil {
		t.Errorf("boundary longitude rejected: %v", err)
	}
	if err := v.Longitude(-180); err != nil {
		t.Errorf("boundary longitude rejected: %v", err)
	}

	err := v.Longitude(-181)
	if err == nil {
		t.Fatal("expected error for longitude -181")
	}
	if err.Code != CodeInvalidLongitude {
		t.Errorf("expected code %s, got %s", CodeInvalidLongitude, err.Code)
	}
}

// TestValidator_BulkSize tests the bulk request limit
func TestValidator_BulkSize(t *testing.T) {
	v := New()

	if err := v.BulkSize(1); err != nil {
		t.Errorf("BulkSize(1) unexpected error: %v", err)
	}
	if err := v.BulkSize(MaxBulkIPs); err != nil {
		t.Errorf("BulkSize(%d) unexpected error: %v", MaxBulkIPs, err)
	}

	err := v.BulkSize(MaxBulkIPs + 1)
	if err == nil {
		t.Fatal("expected error above the bulk limit")
	}
	if err.Code != CodeBulkLimitExceeded {
		t.Errorf("expected code %s, got %s", CodeBulkLimitExceeded, err.Code)
	}
}
