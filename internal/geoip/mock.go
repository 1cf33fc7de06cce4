package geoip

import "github.com/evyataryagoni/geoip-api/internal/models"

// MockLookup is a test double implementing Lookup.
type MockLookup struct {
	Data map[string]*models.GeoData
	Err  error

	LookupCalls []string
	CloseCalled bool
}

// NewMockLookup creates an empty mock.
func NewMockLookup() *MockLookup {
	return &MockLookup{Data: make(map[string]*models.GeoData)}
}

// Lookup records the call and serves from the configured map.
func (m *MockLookup) Lookup(ip string) (*models.GeoData, error) {
	m.LookupCalls = append(m.LookupCalls, ip)
	if m.Err != nil {
		return nil, m.Err
	}
	data, ok := m.Data[ip]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Close records that it was called.
func (m *MockLookup) Close() error {
	m.CloseCalled = true
	return nil
}
