package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/evyataryagoni/geoip-api/internal/models"
)

// Memory is an in-process Cache backed by an expiring LRU.
type Memory struct {
	lru *expirable.LRU[string, *models.IPGeoResponse]
}

// NewMemory creates a memory cache holding at most maxEntries responses,
// each expiring after ttl.
func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	return &Memory{
		lru: expirable.NewLRU[string, *models.IPGeoResponse](maxEntries, nil, ttl),
	}
}

// Get returns the cached response for the IP.
func (m *Memory) Get(ip string) (*models.IPGeoResponse, bool) {
	return m.lru.Get(ip)
}

// Insert stores the response for the IP.
func (m *Memory) Insert(ip string, resp *models.IPGeoResponse) {
	m.lru.Add(ip, resp)
}

// Close does nothing for the memory backend.
func (m *Memory) Close() error {
	return nil
}
