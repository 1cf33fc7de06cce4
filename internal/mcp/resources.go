package mcp

import (
	"encoding/json"

	"github.com/evyataryagoni/geoip-api/internal/validate"
)

// resourceURIPrefix is the scheme used for all MCP resources.
const resourceURIPrefix = "geoip://"

// ResourceInfo describes one entry in resources/list.
type ResourceInfo struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourceContent is the payload returned by resources/read.
type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// ListResources returns all readable resources.
func ListResources() []ResourceInfo {
	return []ResourceInfo{
		{
			URI:         resourceURIPrefix + "schema",
			Name:        "API Response Schemas",
			Description: "JSON Schema definitions for all response types",
			MimeType:    "application/json",
		},
		{
			URI:         resourceURIPrefix + "data-source",
			Name:        "Data Sources",
			Description: "Information about MaxMind GeoLite2 and other data sources",
			MimeType:    "application/json",
		},
		{
			URI:         resourceURIPrefix + "limits",
			Name:        "API Limits",
			Description: "Bulk lookup cap (100), cache TTL, and operational constraints",
			MimeType:    "application/json",
		},
		{
			URI:         resourceURIPrefix + "privacy",
			Name:        "Privacy Information",
			Description: "No IP logging, no PII retention, stateless lookups",
			MimeType:    "application/json",
		},
	}
}

// ReadResource resolves a resource URI to its content. The second return
// value is false for unknown URIs.
func ReadResource(uri string) (*ResourceContent, bool) {
	var body interface{}
	switch uri {
	case resourceURIPrefix + "schema":
		body = schemaResource()
	case resourceURIPrefix + "data-source":
		body = dataSourceResource()
	case resourceURIPrefix + "limits":
		body = limitsResource()
	case resourceURIPrefix + "privacy":
		body = privacyResource()
	default:
		return nil, false
	}

	text, _ := json.MarshalIndent(body, "", "  ")
	return &ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(text),
	}, true
}

func schemaResource() interface{} {
	return map[string]interface{}{
		"$schema":     "http://json-schema.org/draft-07/schema#",
		"title":       "IP Geolocation API Response Schemas",
		"description": "JSON Schema definitions for all response types from the IP Geolocation API",
		"definitions": map[string]interface{}{
			"IpGeoResponseSimple":    simpleResponseSchema(),
			"IpGeoResponseFull":      fullResponseSchema(),
			"TimezoneResponseSimple": timezoneSimpleResponseSchema(),
			"TimezoneResponseFull":   timezoneFullResponseSchema(),
			"BulkLookupResult":       bulkResponseSchema(),
		},
	}
}

func dataSourceResource() interface{} {
	return map[string]interface{}{
		"title":       "IP Geolocation Data Sources",
		"description": "Information about the data sources used by this API",
		"sources": map[string]interface{}{
			"ip_geolocation": map[string]interface{}{
				"name":             "MaxMind GeoLite2-City",
				"description":      "Free IP geolocation database providing city-level accuracy",
				"license":          "CC BY-SA 4.0",
				"attribution":      "This product includes GeoLite2 Data created by MaxMind, available from https://www.maxmind.com",
				"update_frequency": "Weekly (typically Tuesday)",
				"coverage":         "Global IP address space",
				"accuracy":         "City-level for most IPs, country-level guaranteed",
			},
			"timezone_boundaries": map[string]interface{}{
				"name":             "latlong",
				"description":      "Timezone boundary lookup from compressed zone maps",
				"license":          "Apache-2.0",
				"source_data":      "Timezone boundaries derived from OpenStreetMap",
				"update_frequency": "Compiled into binary at build time",
			},
			"country_metadata": map[string]interface{}{
				"name":        "Embedded country dataset",
				"description": "Static dataset of country metadata including currencies, languages, and calling codes",
				"fields": []string{
					"Country name (common and official)",
					"ISO 3166-1 alpha-2 and alpha-3 codes",
					"Continent",
					"Capital city",
					"Currency (code, name, symbol)",
					"Languages",
					"Calling code",
					"Top-level domain",
					"EU membership status",
					"Flag emoji",
				},
			},
		},
	}
}

func limitsResource() interface{} {
	return map[string]interface{}{
		"title":       "API Limits and Constraints",
		"description": "Information about rate limits and operational constraints",
		"limits": map[string]interface{}{
			"bulk_lookup": map[string]interface{}{
				"max_ips_per_request": validate.MaxBulkIPs,
				"description":         "Maximum number of IP addresses that can be looked up in a single bulk request",
			},
			"cache": map[string]interface{}{
				"description":          "Responses are cached to improve performance",
				"cache_ttl_seconds":    3600,
				"cache_control_header": "public, max-age=1209600",
				"note":                 "IP geolocation data changes infrequently, so aggressive caching is safe",
			},
			"rate_limiting": map[string]interface{}{
				"enabled":     false,
				"description": "No rate limiting is currently enforced. The API is designed for high-throughput usage.",
			},
			"coordinate_ranges": map[string]interface{}{
				"latitude":  map[string]interface{}{"min": -90, "max": 90},
				"longitude": map[string]interface{}{"min": -180, "max": 180},
			},
		},
		"supported_formats": map[string]interface{}{
			"ip_addresses":     []string{"IPv4", "IPv6"},
			"response_formats": []string{"simple", "full"},
			"content_types":    []string{"application/json", "application/x-protobuf"},
		},
	}
}

func privacyResource() interface{} {
	return map[string]interface{}{
		"title":       "Privacy Information",
		"description": "Information about data handling and privacy practices",
		"privacy_practices": map[string]interface{}{
			"ip_logging": map[string]interface{}{
				"enabled":     false,
				"description": "IP addresses are NOT logged or stored. All lookups are stateless.",
			},
			"pii_retention": map[string]interface{}{
				"enabled":     false,
				"description": "No personally identifiable information is retained. Lookups are processed in memory and results are not persisted.",
			},
			"stateless_operation": map[string]interface{}{
				"description": "Each lookup is independent and stateless. No session tracking or user identification is performed.",
			},
			"data_sharing": map[string]interface{}{
				"third_parties": false,
				"description":   "Query data is not shared with any third parties. All processing happens locally using embedded databases.",
			},
			"cache_behavior": map[string]interface{}{
				"description": "Responses may be cached in memory for performance. Cache entries contain only the lookup result, not the requesting client's information.",
			},
		},
		"data_sources": map[string]interface{}{
			"note": "IP geolocation data is sourced from MaxMind GeoLite2. This data maps IP addresses to approximate geographic locations but does not identify individuals.",
		},
		"private_ip_handling": map[string]interface{}{
			"description": "Private IP addresses (RFC 1918, loopback, link-local) are rejected and not processed. These addresses have no meaningful geographic location.",
		},
	}
}
