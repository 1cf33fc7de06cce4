// Package cache provides a result cache for simple geolocation responses.
// Two backends are available: an in-process LRU with TTL expiry, and Redis
// for deployments that share a cache across replicas.
package cache

import "github.com/evyataryagoni/geoip-api/internal/models"

// Cache stores serialized simple lookup responses keyed by the raw IP string.
type Cache interface {
	// Get returns the cached response for the IP, or ok=false on a miss.
	Get(ip string) (*models.IPGeoResponse, bool)

	// Insert stores the response for the IP, subject to the TTL and
	// capacity policy of the backend.
	Insert(ip string, resp *models.IPGeoResponse)

	// Close releases backend resources.
	Close() error
}

// Noop is a Cache that stores nothing. Used when caching is disabled.
type Noop struct{}

// Get always misses.
func (Noop) Get(string) (*models.IPGeoResponse, bool) { return nil, false }

// Insert discards the entry.
func (Noop) Insert(string, *models.IPGeoResponse) {}

// Close does nothing.
func (Noop) Close() error { return nil }
