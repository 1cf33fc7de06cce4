package v1

import (
	"github.com/evyataryagoni/geoip-api/internal/handler"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all v1 API routes
// This function is called by the main router to setup /v1/* endpoints
//
// Parameters:
//   - geoHandler: the geolocation and timezone handler
//
// Returns:
//   - chi.Router: configured v1 router
func SetupRoutes(geoHandler *handler.GeoHandler) chi.Router {
	r := chi.NewRouter()

	// Extended geolocation endpoints
	// GET /v1/ipgeo?ip=<ip> returns the full response shape
	r.Get("/ipgeo", geoHandler.IPGeoFull)
	r.Get("/ipgeo/self", geoHandler.SelfFull)

	// Extended timezone endpoint with live clock details
	// GET /v1/timezone?lat=<lat>&long=<long>
	r.Get("/timezone", geoHandler.TimezoneFull)

	return r
}
