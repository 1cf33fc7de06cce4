// Package service implements the geolocation business logic: input
// validation, cache consultation, database lookup, and response assembly.
package service

import (
	"errors"

	"github.com/evyataryagoni/geoip-api/internal/cache"
	"github.com/evyataryagoni/geoip-api/internal/geoip"
	"github.com/evyataryagoni/geoip-api/internal/logger"
	"github.com/evyataryagoni/geoip-api/internal/metrics"
	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/validate"
)

// GeoService handles geolocation and timezone lookups. It sits between the
// transport layers (REST handlers and MCP tools) and the GeoIP database.
//
// The REST surface soft-fails: a lookup miss yields a default response so
// the endpoint never 404s for a well-formed IP. The strict variants used by
// the MCP tools return NOT_FOUND instead.
type GeoService struct {
	geo       geoip.Lookup
	builder   *ResponseBuilder
	cache     cache.Cache
	validator *validate.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewGeoService creates a new geolocation service.
//
// Parameters:
//   - geo: the GeoIP database reader
//   - builder: response assembler over timezone and country data
//   - c: result cache for simple responses (cache.Noop disables caching)
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
func NewGeoService(geo geoip.Lookup, builder *ResponseBuilder, c cache.Cache, m *metrics.Metrics, log *logger.Logger) *GeoService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &GeoService{
		geo:       geo,
		builder:   builder,
		cache:     c,
		validator: validate.New(),
		metrics:   m,
		logger:    log.WithComponent("GeoService"),
	}
}

// LookupSimple resolves an IP to the simple response shape.
//
// Flow:
//  1. Validate IP format
//  2. Consult the cache (only when useCache is set; the cache stores the
//     simple JSON shape, so protobuf and full requests bypass it)
//  3. Query the GeoIP database, falling back to the default shape on a miss
//  4. Assemble and cache the response
func (s *GeoService) LookupSimple(ip string, useCache bool) (*models.IPGeoResponse, *validate.Error) {
	if verr := s.validator.IP(ip); verr != nil {
		s.logger.Warn().Str("ip", ip).Msg("Invalid IP address format")
		s.countLookup("invalid")
		return nil, verr
	}

	if useCache {
		if resp, ok := s.cache.Get(ip); ok {
			s.logger.Debug().Str("ip", ip).Msg("Cache hit")
			s.countCache("hit")
			return resp, nil
		}
		s.countCache("miss")
	}

	resp := s.builder.BuildSimple(s.lookup(ip))

	if useCache {
		s.cache.Insert(ip, resp)
		s.countCache("insert")
	}

	return resp, nil
}

// LookupFull resolves an IP to the extended response shape. Full responses
// embed a live current_time and are never cached.
func (s *GeoService) LookupFull(ip string) (*models.IPGeoResponseFull, *validate.Error) {
	if verr := s.validator.IP(ip); verr != nil {
		s.logger.Warn().Str("ip", ip).Msg("Invalid IP address format")
		s.countLookup("invalid")
		return nil, verr
	}

	return s.builder.BuildFull(ip, s.lookup(ip)), nil
}

// LookupSimpleStrict is the MCP variant of LookupSimple: the IP must be
// public, and a database miss is an error rather than a default response.
func (s *GeoService) LookupSimpleStrict(ip string) (*models.IPGeoResponse, *validate.Error) {
	geo, verr := s.lookupStrict(ip)
	if verr != nil {
		return nil, verr
	}
	return s.builder.BuildSimple(geo), nil
}

// LookupFullStrict is the MCP variant of LookupFull.
func (s *GeoService) LookupFullStrict(ip string) (*models.IPGeoResponseFull, *validate.Error) {
	geo, verr := s.lookupStrict(ip)
	if verr != nil {
		return nil, verr
	}
	return s.builder.BuildFull(ip, geo), nil
}

// Timezone resolves coordinates to a timezone name.
func (s *GeoService) Timezone(lat, lng float64) (*models.TimezoneResponse, *validate.Error) {
	if verr := s.validateCoords(lat, lng); verr != nil {
		return nil, verr
	}
	return s.builder.BuildTimezoneSimple(lat, lng), nil
}

// TimezoneFull resolves coordinates to a timezone with live details.
func (s *GeoService) TimezoneFull(lat, lng float64) (*models.TimezoneResponseFull, *validate.Error) {
	if verr := s.validateCoords(lat, lng); verr != nil {
		return nil, verr
	}
	return s.builder.BuildTimezoneFull(lat, lng), nil
}

// ValidateBulk checks a bulk request size against the per-request limit.
func (s *GeoService) ValidateBulk(n int) *validate.Error {
	return s.validator.BulkSize(n)
}

// Close releases the GeoIP database and the cache backend.
func (s *GeoService) Close() error {
	cerr := s.cache.Close()
	if err := s.geo.Close(); err != nil {
		return err
	}
	return cerr
}

// lookup queries the database and degrades every failure to a nil record,
// which the builder turns into the default response shape.
func (s *GeoService) lookup(ip string) *models.GeoData {
	geo, err := s.geo.Lookup(ip)
	if err != nil {
		if errors.Is(err, geoip.ErrNotFound) {
			s.logger.Debug().Str("ip", ip).Msg("IP not found in database")
			s.countLookup("not_found")
		} else {
			s.logger.Error().Err(err).Str("ip", ip).Msg("GeoIP lookup failed")
			s.countLookup("error")
		}
		return nil
	}
	s.countLookup("found")
	return geo
}

func (s *GeoService) lookupStrict(ip string) (*models.GeoData, *validate.Error) {
	if verr := s.validator.PublicIP(ip); verr != nil {
		s.logger.Warn().Str("ip", ip).Str("code", verr.Code).Msg("Rejected IP")
		s.countLookup("invalid")
		return nil, verr
	}

	geo, err := s.geo.Lookup(ip)
	if err != nil {
		if errors.Is(err, geoip.ErrNotFound) {
			s.countLookup("not_found")
			return nil, validate.NewError(validate.CodeNotFound, "IP address not found in database: "+ip)
		}
		s.logger.Error().Err(err).Str("ip", ip).Msg("GeoIP lookup failed")
		s.countLookup("error")
		return nil, validate.NewError(validate.CodeInternalError, "Lookup failed for IP: "+ip)
	}
	s.countLookup("found")
	return geo, nil
}

func (s *GeoService) validateCoords(lat, lng float64) *validate.Error {
	if verr := s.validator.Latitude(lat); verr != nil {
		return verr
	}
	return s.validator.Longitude(lng)
}

func (s *GeoService) countLookup(result string) {
	if s.metrics != nil {
		s.metrics.IPLookupsTotal.WithLabelValues(result).Inc()
	}
}

func (s *GeoService) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CacheOps.WithLabelValues(result).Inc()
	}
}
