package mcp

import "github.com/evyataryagoni/geoip-api/internal/validate"

// JSON Schema fragments for tool inputs and response shapes, served via
// tools/list and the geoip://schema resource.

func formatProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"simple", "full"},
		"default":     "full",
		"description": "Response format: 'simple' for basic data, 'full' for comprehensive details",
	}
}

func lookupInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ip": map[string]interface{}{
				"type":        "string",
				"description": "IPv4 or IPv6 address to lookup",
			},
			"format": formatProperty(),
		},
		"required": []string{"ip"},
	}
}

func bulkLookupInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ips": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"maxItems":    validate.MaxBulkIPs,
				"description": "Array of IPv4 or IPv6 addresses to lookup (max 100)",
			},
			"format": formatProperty(),
		},
		"required": []string{"ips"},
	}
}

func lookupSelfInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"format": formatProperty(),
		},
	}
}

func timezoneInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"lat": map[string]interface{}{
				"type":        "number",
				"minimum":     -90,
				"maximum":     90,
				"description": "Latitude coordinate (-90 to 90)",
			},
			"lon": map[string]interface{}{
				"type":        "number",
				"minimum":     -180,
				"maximum":     180,
				"description": "Longitude coordinate (-180 to 180)",
			},
			"format": formatProperty(),
		},
		"required": []string{"lat", "lon"},
	}
}

func simpleResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"latitude":     map[string]interface{}{"type": []string{"number", "null"}, "description": "Latitude of the location"},
			"longitude":    map[string]interface{}{"type": []string{"number", "null"}, "description": "Longitude of the location"},
			"city":         map[string]interface{}{"type": "string", "description": "City name (empty if unknown)"},
			"country_name": map[string]interface{}{"type": "string", "description": "Country name (empty if unknown)"},
			"time_zone": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string", "description": "IANA timezone name"},
				},
			},
			"languages": map[string]interface{}{"type": "string", "description": "Comma-separated language codes for the country"},
		},
	}
}

func fullResponseSchema() map[string]interface{} {
	strProp := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "string", "description": desc}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ip": strProp("The queried IP address"),
			"location": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"continent_code":        strProp("Two-letter continent code"),
					"continent_name":        strProp("Full continent name"),
					"country_code2":         strProp("ISO 3166-1 alpha-2 country code"),
					"country_code3":         strProp("ISO 3166-1 alpha-3 country code"),
					"country_name":          strProp("Common country name"),
					"country_name_official": strProp("Official country name"),
					"country_capital":       strProp("Capital city"),
					"state_prov":            strProp("State or province name"),
					"state_code":            strProp("State code with country prefix"),
					"district":              strProp("District or subdivision"),
					"city":                  strProp("City name"),
					"zipcode":               strProp("Postal/ZIP code"),
					"latitude":              strProp("Latitude as string"),
					"longitude":             strProp("Longitude as string"),
					"is_eu":                 map[string]interface{}{"type": "boolean", "description": "Whether the country is in the EU"},
					"country_flag":          strProp("Path to country flag SVG"),
					"geoname_id":            strProp("GeoNames ID"),
					"country_emoji":         strProp("Country flag emoji"),
				},
			},
			"country_metadata": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"calling_code": strProp("International calling code"),
					"tld":          strProp("Top-level domain"),
					"languages": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Language codes spoken in the country",
					},
				},
			},
			"currency": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code":   strProp("ISO 4217 currency code"),
					"name":   strProp("Currency name"),
					"symbol": strProp("Currency symbol"),
				},
			},
			"time_zone": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":              strProp("IANA timezone name"),
					"offset":            map[string]interface{}{"type": "integer", "description": "UTC offset in hours (without DST)"},
					"offset_with_dst":   map[string]interface{}{"type": "integer", "description": "UTC offset in hours (with DST)"},
					"current_time":      strProp("Current local time"),
					"current_time_unix": map[string]interface{}{"type": "number", "description": "Current time as Unix timestamp"},
					"is_dst":            map[string]interface{}{"type": "boolean", "description": "Whether DST is active"},
					"dst_savings":       map[string]interface{}{"type": "integer", "description": "DST offset in hours"},
					"dst_exists":        map[string]interface{}{"type": "boolean", "description": "Whether DST is observed"},
				},
			},
		},
	}
}

func timezoneSimpleResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"timezone": map[string]interface{}{"type": "string", "description": "IANA timezone name"},
		},
	}
}

func timezoneFullResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"timezone":          map[string]interface{}{"type": "string", "description": "IANA timezone name"},
			"offset":            map[string]interface{}{"type": "integer", "description": "UTC offset in hours (without DST)"},
			"offset_with_dst":   map[string]interface{}{"type": "integer", "description": "UTC offset in hours (with DST)"},
			"current_time":      map[string]interface{}{"type": "string", "description": "Current local time"},
			"current_time_unix": map[string]interface{}{"type": "number", "description": "Current time as Unix timestamp"},
			"is_dst":            map[string]interface{}{"type": "boolean", "description": "Whether DST is active"},
			"dst_exists":        map[string]interface{}{"type": "boolean", "description": "Whether DST is observed"},
		},
	}
}

func bulkResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"results": map[string]interface{}{
				"type":        "array",
				"items":       fullResponseSchema(),
				"description": "Successful lookup results",
			},
			"errors": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"ip":      map[string]interface{}{"type": "string", "description": "The IP that failed"},
						"code":    map[string]interface{}{"type": "string", "description": "Error code"},
						"message": map[string]interface{}{"type": "string", "description": "Error message"},
					},
				},
				"description": "Failed lookups",
			},
		},
	}
}
