// Package mcp implements a Model Context Protocol server exposing the
// geolocation and timezone lookups as MCP tools and resources, over JSON-RPC
// 2.0 on HTTP and over stdio.
package mcp

import (
	"encoding/json"

	"github.com/evyataryagoni/geoip-api/internal/models"
	"github.com/evyataryagoni/geoip-api/internal/service"
	"github.com/evyataryagoni/geoip-api/internal/validate"
)

// Tool names exposed via tools/list.
const (
	ToolLookup     = "geoip_lookup"
	ToolBulkLookup = "geoip_bulk_lookup"
	ToolLookupSelf = "geoip_lookup_self"
	ToolTimezone   = "timezone_lookup"
)

// ContentBlock is a single piece of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the outcome of a tool invocation. Business failures (bad
// IP, not found) are IsError results, not JSON-RPC errors.
type ToolResult struct {
	Content    []ContentBlock
	IsError    bool
	Structured interface{}
}

// lookupInput is the argument shape shared by geoip_lookup and
// geoip_lookup_self.
type lookupInput struct {
	IP     string `json:"ip"`
	Format string `json:"format"`
}

type bulkLookupInput struct {
	IPs    []string `json:"ips"`
	Format string   `json:"format"`
}

type timezoneInput struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Format string   `json:"format"`
}

// BulkError describes one failed IP in a bulk lookup.
type BulkError struct {
	IP      string `json:"ip"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BulkResult holds partial bulk lookup output: successes and failures side
// by side.
type BulkResult struct {
	Results []*models.IPGeoResponseFull `json:"results"`
	Errors  []BulkError                 `json:"errors"`
}

// ToolSet dispatches tool calls against the geolocation service.
type ToolSet struct {
	svc *service.GeoService
}

// NewToolSet creates a tool set over the given service.
func NewToolSet(svc *service.GeoService) *ToolSet {
	return &ToolSet{svc: svc}
}

// Call routes a tool invocation by name. The second return value is false
// when the tool does not exist.
func (t *ToolSet) Call(name, callerIP string, args json.RawMessage) (*ToolResult, bool) {
	switch name {
	case ToolLookup:
		return t.Lookup(args), true
	case ToolBulkLookup:
		return t.BulkLookup(args), true
	case ToolLookupSelf:
		return t.LookupSelf(callerIP, args), true
	case ToolTimezone:
		return t.TimezoneLookup(args), true
	default:
		return nil, false
	}
}

// Lookup handles the geoip_lookup tool: strict single-IP lookup with a
// simple or full response shape.
func (t *ToolSet) Lookup(args json.RawMessage) *ToolResult {
	var input lookupInput
	if err := json.Unmarshal(args, &input); err != nil {
		return errorResult(validate.CodeInvalidIP, "Invalid input: "+err.Error())
	}
	return t.lookupIP(input.IP, input.Format)
}

// LookupSelf handles the geoip_lookup_self tool. The caller IP comes from
// the HTTP transport; over stdio there is none, which is a fixed error.
func (t *ToolSet) LookupSelf(callerIP string, args json.RawMessage) *ToolResult {
	var input lookupInput
	if err := json.Unmarshal(args, &input); err != nil {
		return errorResult(validate.CodeInvalidIP, "Invalid input: "+err.Error())
	}
	if callerIP == "" {
		return errorResult(validate.CodeNoCallerIP,
			"geoip_lookup_self is not available over STDIO transport. "+
				"Use geoip_lookup with an explicit IP address instead, "+
				"or use the HTTP transport which provides caller IP information.")
	}
	return t.lookupIP(callerIP, input.Format)
}

// BulkLookup handles the geoip_bulk_lookup tool: up to 100 IPs, collecting
// per-IP failures instead of aborting the batch.
func (t *ToolSet) BulkLookup(args json.RawMessage) *ToolResult {
	var input bulkLookupInput
	if err := json.Unmarshal(args, &input); err != nil {
		return errorResult(validate.CodeInvalidIP, "Invalid input: "+err.Error())
	}

	if verr := t.svc.ValidateBulk(len(input.IPs)); verr != nil {
		return errorResult(verr.Code, verr.Message)
	}

	result := &BulkResult{
		Results: []*models.IPGeoResponseFull{},
		Errors:  []BulkError{},
	}
	for _, ip := range input.IPs {
		resp, verr := t.svc.LookupFullStrict(ip)
		if verr != nil {
			result.Errors = append(result.Errors, BulkError{
				IP:      ip,
				Code:    verr.Code,
				Message: verr.Message,
			})
			continue
		}
		result.Results = append(result.Results, resp)
	}

	return successResult(result)
}

// TimezoneLookup handles the timezone_lookup tool.
func (t *ToolSet) TimezoneLookup(args json.RawMessage) *ToolResult {
	var input timezoneInput
	if err := json.Unmarshal(args, &input); err != nil {
		return errorResult(validate.CodeInvalidLatitude, "Invalid input: "+err.Error())
	}
	if input.Lat == nil || input.Lon == nil {
		return errorResult(validate.CodeInvalidLatitude, "Missing 'lat' or 'lon' parameter")
	}

	if input.Format == "simple" {
		resp, verr := t.svc.Timezone(*input.Lat, *input.Lon)
		if verr != nil {
			return errorResult(verr.Code, verr.Message)
		}
		return successResult(resp)
	}

	resp, verr := t.svc.TimezoneFull(*input.Lat, *input.Lon)
	if verr != nil {
		return errorResult(verr.Code, verr.Message)
	}
	return successResult(resp)
}

func (t *ToolSet) lookupIP(ip, format string) *ToolResult {
	if format == "simple" {
		resp, verr := t.svc.LookupSimpleStrict(ip)
		if verr != nil {
			return errorResult(verr.Code, verr.Message)
		}
		return successResult(resp)
	}

	resp, verr := t.svc.LookupFullStrict(ip)
	if verr != nil {
		return errorResult(verr.Code, verr.Message)
	}
	return successResult(resp)
}

func successResult(v interface{}) *ToolResult {
	text, _ := json.MarshalIndent(v, "", "  ")
	return &ToolResult{
		Content:    []ContentBlock{{Type: "text", Text: string(text)}},
		Structured: v,
	}
}

func errorResult(code, message string) *ToolResult {
	body := map[string]string{"error": message, "code": code}
	text, _ := json.MarshalIndent(body, "", "  ")
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(text)}},
		IsError: true,
	}
}
