package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/evyataryagoni/geoip-api/internal/geopb"
	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/service"
	"github.com/evyataryagoni/geoip-api/internal/validate"
)

// CacheControl is sent on every 200 and 400 response so CDNs can absorb
// repeat lookups. 1209600 seconds is 14 days.
const CacheControl = "public, max-age=1209600"

// GeoHandler handles HTTP requests for geolocation and timezone lookups
// This is the handler layer - it deals with HTTP concerns only
//
// Responsibilities:
//   - Parse query parameters and caller headers
//   - Negotiate JSON vs protobuf output
//   - Call service methods
//   - Set status codes and cache headers
//   - NO business logic (that's in the service layer)
type GeoHandler struct {
	service *service.GeoService
}

// NewGeoHandler creates a new geolocation handler with the given service
func NewGeoHandler(service *service.GeoService) *GeoHandler {
	return &GeoHandler{
		service: service,
	}
}

// IPGeo handles GET /ipgeo?ip=<ip>
// @Summary      Geolocate an IP address
// @Description  Look up city, country, coordinates, timezone and languages for an IP address
// @Tags         Geolocation
// @Produce      json
// @Param        ip      query   string  true   "IP address (IPv4 or IPv6)"  example(8.8.8.8)
// @Param        fields  query   string  false  "Set to * or location for the full shape"
// @Param        apiKey  query   string  false  "Accepted but not validated"
// @Success      200  {object}   models.IPGeoResponse
// @Failure      400  {object}   models.ErrorResponse  "Missing or invalid IP"
// @Router       /ipgeo [get]
func (h *GeoHandler) IPGeo(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		h.respondError(w, r, http.StatusBadRequest, validate.NewError(validate.CodeInvalidIP, "Missing 'ip' query parameter"))
		return
	}

	// fields=* or fields=location upgrades to the full shape. The apiKey
	// parameter is accepted for compatibility and ignored.
	if fields := r.URL.Query().Get("fields"); strings.Contains(fields, "*") || strings.Contains(fields, "location") {
		h.IPGeoFull(w, r)
		return
	}

	// Only the simple JSON path is cacheable; protobuf output is encoded
	// per request.
	useCache := !geopb.AcceptsProtobuf(r)

	resp, verr := h.service.LookupSimple(ip, useCache)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	if geopb.AcceptsProtobuf(r) {
		h.respondProto(w, http.StatusOK, geopb.MarshalIPGeoResponse(resp))
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// IPGeoFull handles GET /v1/ipgeo?ip=<ip>
// @Summary      Geolocate an IP address (extended)
// @Description  Extended lookup with country metadata, currency and live timezone details
// @Tags         Geolocation
// @Produce      json
// @Param        ip   query      string  true  "IP address (IPv4 or IPv6)"  example(8.8.8.8)
// @Success      200  {object}   models.IPGeoResponseFull
// @Failure      400  {object}   models.ErrorResponse  "Missing or invalid IP"
// @Router       /v1/ipgeo [get]
func (h *GeoHandler) IPGeoFull(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		h.respondError(w, r, http.StatusBadRequest, validate.NewError(validate.CodeInvalidIP, "Missing 'ip' query parameter"))
		return
	}

	resp, verr := h.service.LookupFull(ip)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	if geopb.AcceptsProtobuf(r) {
		h.respondProto(w, http.StatusOK, geopb.MarshalIPGeoResponseFull(resp))
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// Self handles GET /ipgeo/self and /v1/ipgeo/self, geolocating the caller.
// @Summary      Geolocate the caller
// @Description  Look up the client's own IP, derived from proxy headers or the connection
// @Tags         Geolocation
// @Produce      json
// @Success      200  {object}   models.IPGeoResponse
// @Failure      400  {object}   models.ErrorResponse
// @Router       /ipgeo/self [get]
func (h *GeoHandler) Self(w http.ResponseWriter, r *http.Request) {
	r.URL.RawQuery = "ip=" + ClientIP(r)
	h.IPGeo(w, r)
}

// SelfFull handles GET /v1/ipgeo/self.
func (h *GeoHandler) SelfFull(w http.ResponseWriter, r *http.Request) {
	r.URL.RawQuery = "ip=" + ClientIP(r)
	h.IPGeoFull(w, r)
}

// Timezone handles GET /timezone?lat=<lat>&long=<long>
// @Summary      Resolve coordinates to a timezone name
// @Tags         Timezone
// @Produce      json
// @Param        lat   query     number  true  "Latitude"   example(59.3294)
// @Param        long  query     number  true  "Longitude"  example(18.0687)
// @Success      200  {object}   models.TimezoneResponse
// @Failure      400  {object}   models.ErrorResponse  "Missing or invalid coordinates"
// @Router       /timezone [get]
func (h *GeoHandler) Timezone(w http.ResponseWriter, r *http.Request) {
	lat, lng, verr := parseCoords(r)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	resp, verr := h.service.Timezone(lat, lng)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	if geopb.AcceptsProtobuf(r) {
		h.respondProto(w, http.StatusOK, geopb.MarshalTimezoneResponse(resp))
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// TimezoneFull handles GET /v1/timezone?lat=<lat>&long=<long>
// @Summary      Resolve coordinates to a timezone with live details
// @Tags         Timezone
// @Produce      json
// @Param        lat   query     number  true  "Latitude"   example(59.3294)
// @Param        long  query     number  true  "Longitude"  example(18.0687)
// @Success      200  {object}   models.TimezoneResponseFull
// @Failure      400  {object}   models.ErrorResponse  "Missing or invalid coordinates"
// @Router       /v1/timezone [get]
func (h *GeoHandler) TimezoneFull(w http.ResponseWriter, r *http.Request) {
	lat, lng, verr := parseCoords(r)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	resp, verr := h.service.TimezoneFull(lat, lng)
	if verr != nil {
		h.respondError(w, r, http.StatusBadRequest, verr)
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	if geopb.AcceptsProtobuf(r) {
		h.respondProto(w, http.StatusOK, geopb.MarshalTimezoneResponseFull(resp))
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// ClientIP derives the caller's IP address. Proxy headers win over the
// connection peer, in order of trust: CF-Connecting-IP, X-Real-IP, then the
// first hop of X-Forwarded-For.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}

	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}
	return strings.Trim(host, "[]")
}

func parseCoords(r *http.Request) (float64, float64, *validate.Error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("long")
	if latStr == "" || lngStr == "" {
		return 0, 0, validate.NewError(validate.CodeInvalidLatitude, "Missing 'lat' or 'long' query parameter")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, validate.NewError(validate.CodeInvalidLatitude, "Invalid latitude: "+latStr)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, validate.NewError(validate.CodeInvalidLongitude, "Invalid longitude: "+lngStr)
	}
	return lat, lng, nil
}

// respondJSON writes a JSON response with the given status code
func (h *GeoHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondProto writes a protobuf response with the given status code
func (h *GeoHandler) respondProto(w http.ResponseWriter, statusCode int, data []byte) {
	w.Header().Set("Content-Type", geopb.ContentType)
	w.WriteHeader(statusCode)
	w.Write(data)
}

// respondError writes an error response. Validation errors carry the same
// cache header as successes so bad inputs are also absorbed by CDNs.
func (h *GeoHandler) respondError(w http.ResponseWriter, r *http.Request, statusCode int, verr *validate.Error) {
	if statusCode == http.StatusBadRequest {
		w.Header().Set("Cache-Control", CacheControl)
	}
	body := models.ErrorResponse{Error: verr.Message, Code: verr.Code}
	if geopb.AcceptsProtobuf(r) {
		h.respondProto(w, statusCode, geopb.MarshalError(&body))
		return
	}
	h.respondJSON(w, statusCode, body)
}
