package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DiscoveryHandler serves the machine-readable discovery documents: the
// OpenAPI spec, llms.txt, robots.txt, sitemap.xml, and the AI plugin
// manifest. All documents embed the configured public base URL.
type DiscoveryHandler struct {
	baseURL string
}

// NewDiscoveryHandler creates a discovery handler for the given base URL.
func NewDiscoveryHandler(baseURL string) *DiscoveryHandler {
	return &DiscoveryHandler{baseURL: strings.TrimRight(baseURL, "/")}
}

// OpenAPI handles GET /openapi.yaml and GET /.well-known/openapi.yaml
func (h *DiscoveryHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	fmt.Fprintf(w, openAPITemplate, h.baseURL)
}

// LLMsTxt handles GET /llms.txt
func (h *DiscoveryHandler) LLMsTxt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, llmsTxtTemplate, h.baseURL)
}

// RobotsTxt handles GET /robots.txt
func (h *DiscoveryHandler) RobotsTxt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, robotsTxtTemplate, h.baseURL)
}

// Sitemap handles GET /sitemap.xml
func (h *DiscoveryHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(w, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, e := range []struct {
		path     string
		priority string
	}{
		{"/", "1.0"},
		{"/openapi.yaml", "0.8"},
		{"/llms.txt", "0.8"},
		{"/ipgeo", "0.9"},
		{"/v1/ipgeo", "0.9"},
		{"/timezone", "0.9"},
		{"/v1/timezone", "0.9"},
	} {
		fmt.Fprintf(w, "  <url>\n    <loc>%s%s</loc>\n    <changefreq>monthly</changefreq>\n    <priority>%s</priority>\n  </url>\n", h.baseURL, e.path, e.priority)
	}
	fmt.Fprintln(w, `</urlset>`)
}

// AIPlugin handles GET /.well-known/ai-plugin.json
func (h *DiscoveryHandler) AIPlugin(w http.ResponseWriter, r *http.Request) {
	manifest := map[string]interface{}{
		"schema_version":        "v1",
		"name_for_human":        "IP Geolocation API",
		"name_for_model":        "ip_geolocation",
		"description_for_human": "Get geographic location data from IP addresses and timezone information from coordinates.",
		"description_for_model": "Use this API to look up geographic location (city, country, coordinates, timezone) for any IP address, or to get timezone information from latitude/longitude coordinates. Supports both simple and detailed response formats.",
		"auth":                  map[string]string{"type": "none"},
		"api": map[string]string{
			"type": "openapi",
			"url":  h.baseURL + "/openapi.yaml",
		},
		"logo_url":       h.baseURL + "/static/flags/un.svg",
		"contact_email":  "support@example.com",
		"legal_info_url": h.baseURL + "/",
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(manifest)
}

const openAPITemplate = `openapi: 3.0.3
info:
  title: IP Geolocation API
  description: Geolocate IP addresses and resolve coordinates to timezones.
  version: "1.0"
servers:
  - url: %s
paths:
  /ipgeo:
    get:
      summary: Geolocate an IP address
      parameters:
        - name: ip
          in: query
          required: true
          schema:
            type: string
          example: "8.8.8.8"
      responses:
        "200":
          description: Geolocation data
        "400":
          description: Missing or invalid IP
  /ipgeo/self:
    get:
      summary: Geolocate the caller's own IP
      responses:
        "200":
          description: Geolocation data
  /v1/ipgeo:
    get:
      summary: Geolocate an IP address (extended)
      parameters:
        - name: ip
          in: query
          required: true
          schema:
            type: string
      responses:
        "200":
          description: Extended geolocation data with country metadata, currency and timezone details
        "400":
          description: Missing or invalid IP
  /v1/ipgeo/self:
    get:
      summary: Geolocate the caller's own IP (extended)
      responses:
        "200":
          description: Extended geolocation data
  /timezone:
    get:
      summary: Resolve coordinates to a timezone name
      parameters:
        - name: lat
          in: query
          required: true
          schema:
            type: number
        - name: long
          in: query
          required: true
          schema:
            type: number
      responses:
        "200":
          description: Timezone name
        "400":
          description: Missing or invalid coordinates
  /v1/timezone:
    get:
      summary: Resolve coordinates to a timezone with live details
      parameters:
        - name: lat
          in: query
          required: true
          schema:
            type: number
        - name: long
          in: query
          required: true
          schema:
            type: number
      responses:
        "200":
          description: Timezone with offsets, current time and DST flags
        "400":
          description: Missing or invalid coordinates
  /health:
    get:
      summary: Health check
      responses:
        "200":
          description: Service is up
`

const llmsTxtTemplate = `# IP Geolocation API

Free IP geolocation and timezone lookup API. No authentication required.

## Endpoints

- GET %[1]s/ipgeo?ip=<ip> - Geolocate an IP address (city, country, coordinates, timezone, languages)
- GET %[1]s/ipgeo/self - Geolocate your own IP
- GET %[1]s/v1/ipgeo?ip=<ip> - Extended lookup with country metadata, currency and live timezone details
- GET %[1]s/v1/ipgeo/self - Extended lookup for your own IP
- GET %[1]s/timezone?lat=<lat>&long=<long> - Resolve coordinates to a timezone name
- GET %[1]s/v1/timezone?lat=<lat>&long=<long> - Timezone with offsets, current time and DST flags

## Formats

Responses are JSON by default. Send "Accept: application/x-protobuf" for
protobuf wire format.

## MCP

A Model Context Protocol server is available at %[1]s/mcp (JSON-RPC 2.0
over HTTP POST) and %[1]s/mcp/sse (Server-Sent Events). Tools: geoip_lookup,
geoip_bulk_lookup, geoip_lookup_self, timezone_lookup.

## Limits

Bulk requests accept at most 100 IPs. Private and reserved addresses are
rejected by the MCP tools.

## Data

Geolocation data from MaxMind GeoLite2. Machine-readable API description
at %[1]s/openapi.yaml.
`

const robotsTxtTemplate = `User-agent: *
Allow: /
Allow: /openapi.yaml
Allow: /llms.txt
Allow: /sitemap.xml

# API endpoints - allow crawling for discovery
Allow: /ipgeo
Allow: /timezone
Allow: /v1/ipgeo
Allow: /v1/timezone

# Sitemap location
Sitemap: %s/sitemap.xml
`
