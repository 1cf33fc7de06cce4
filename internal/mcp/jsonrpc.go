package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/evyataryagoni/geoip-api/internal/logger"
	"github.com/evyataryagoni/geoip-api/internal/metrics"
)

// ServerName and ServerVersion identify this MCP server to clients.
const (
	ServerName      = "ip-geolocation-mcp"
	ServerVersion   = "1.0.0"
	ProtocolVersion = "2024-11-05"
)

// JSON-RPC 2.0 error codes.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

// Request is a JSON-RPC 2.0 request. The ID is kept raw so string, number,
// and null IDs all round-trip unchanged.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type resourceReadParams struct {
	URI string `json:"uri"`
}

// Dispatcher routes JSON-RPC requests to lifecycle methods, tools, and
// resources. It is transport-agnostic: HTTP and stdio both feed it.
type Dispatcher struct {
	tools   *ToolSet
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewDispatcher creates a dispatcher over the given tool set. Metrics and
// logger may be nil.
func NewDispatcher(tools *ToolSet, m *metrics.Metrics, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Dispatcher{
		tools:   tools,
		metrics: m,
		logger:  log.WithComponent("MCPDispatcher"),
	}
}

// Handle processes one request. callerIP is the transport-derived client
// address; it is empty over stdio, which disables geoip_lookup_self.
func (d *Dispatcher) Handle(req Request, callerIP string) Response {
	if req.JSONRPC != "2.0" {
		d.countRequest(req.Method, "invalid")
		return errorResponse(req.ID, CodeInvalidRequest, "Invalid JSON-RPC version")
	}

	var resp Response
	switch req.Method {
	case "initialize":
		resp = resultResponse(req.ID, map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"serverInfo":      ServerInfo(),
			"capabilities":    ServerCapabilities(),
		})

	case "initialized", "ping":
		resp = resultResponse(req.ID, map[string]interface{}{})

	case "tools/list":
		resp = resultResponse(req.ID, map[string]interface{}{"tools": ListTools()})

	case "tools/call":
		resp = d.handleToolCall(req, callerIP)

	case "resources/list":
		resp = resultResponse(req.ID, map[string]interface{}{"resources": ListResources()})

	case "resources/read":
		resp = d.handleResourceRead(req)

	default:
		d.countRequest(req.Method, "not_found")
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}

	if resp.Error != nil {
		d.countRequest(req.Method, "error")
	} else {
		d.countRequest(req.Method, "ok")
	}
	return resp
}

// HandleBatch processes a batch of requests in order.
func (d *Dispatcher) HandleBatch(reqs []Request, callerIP string) []Response {
	responses := make([]Response, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, d.Handle(req, callerIP))
	}
	return responses
}

func (d *Dispatcher) handleToolCall(req Request, callerIP string) Response {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, CodeInvalidParams, "Missing params")
	}

	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Malformed params: "+err.Error())
	}
	if params.Name == "" {
		return errorResponse(req.ID, CodeInvalidParams, "Missing tool name")
	}

	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	result, ok := d.tools.Call(params.Name, callerIP, args)
	if !ok {
		d.countTool(params.Name, "unknown")
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	body := map[string]interface{}{
		"content": result.Content,
		"isError": result.IsError,
	}
	if result.IsError {
		d.countTool(params.Name, "error")
	} else {
		d.countTool(params.Name, "ok")
		body["structuredContent"] = result.Structured
	}
	return resultResponse(req.ID, body)
}

func (d *Dispatcher) handleResourceRead(req Request) Response {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, CodeInvalidParams, "Missing params")
	}

	var params resourceReadParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Malformed params: "+err.Error())
	}
	if params.URI == "" {
		return errorResponse(req.ID, CodeInvalidParams, "Missing uri parameter")
	}

	content, ok := ReadResource(params.URI)
	if !ok {
		return errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("Resource not found: %s", params.URI))
	}
	return resultResponse(req.ID, map[string]interface{}{
		"contents": []*ResourceContent{content},
	})
}

// ServerInfo describes this server for initialize and /mcp/info.
func ServerInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":            ServerName,
		"version":         ServerVersion,
		"protocolVersion": ProtocolVersion,
	}
}

// ServerCapabilities advertises the supported MCP feature set.
func ServerCapabilities() map[string]interface{} {
	return map[string]interface{}{
		"tools": map[string]interface{}{
			"listChanged": false,
		},
		"resources": map[string]interface{}{
			"subscribe":   false,
			"listChanged": false,
		},
		"prompts": nil,
		"logging": nil,
	}
}

// ListTools returns the tool descriptors for tools/list.
func ListTools() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":        ToolLookup,
			"description": "Look up geographic location for an IP address. Returns city, country, coordinates, timezone, currency, and other location metadata.",
			"inputSchema": lookupInputSchema(),
		},
		{
			"name":        ToolBulkLookup,
			"description": "Look up geographic locations for multiple IP addresses in a single request. Maximum 100 IPs per request. Returns results and errors separately.",
			"inputSchema": bulkLookupInputSchema(),
		},
		{
			"name":        ToolLookupSelf,
			"description": "Look up geographic location for the caller's IP address. Available via HTTP transport.",
			"inputSchema": lookupSelfInputSchema(),
		},
		{
			"name":        ToolTimezone,
			"description": "Look up IANA timezone for geographic coordinates. Returns timezone name, current offset, DST information, and current local time.",
			"inputSchema": timezoneInputSchema(),
		},
	}
}

func resultResponse(id json.RawMessage, result interface{}) Response {
	return Response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) Response {
	return Response{JSONRPC: "2.0", ID: id, Error: &RPCError{Code: code, Message: message}}
}

func (d *Dispatcher) countRequest(method, status string) {
	if d.metrics != nil {
		d.metrics.MCPRequestsTotal.WithLabelValues(method, status).Inc()
	}
}

func (d *Dispatcher) countTool(tool, status string) {
	if d.metrics != nil {
		d.metrics.MCPToolCalls.WithLabelValues(tool, status).Inc()
	}
}
