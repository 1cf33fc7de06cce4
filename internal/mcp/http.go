package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/evyataryagoni/geoip-api/internal/handler"
	"github.com/evyataryagoni/geoip-api/internal/logger"
)

// Notification is a server-initiated event pushed to SSE subscribers.
type Notification struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

// HTTPHandler serves the MCP protocol over HTTP: JSON-RPC on POST /mcp,
// batches on POST /mcp/batch, Server-Sent Events on GET /mcp/sse, and a
// discovery document on GET /mcp/info.
type HTTPHandler struct {
	dispatcher *Dispatcher
	logger     *logger.Logger

	mu          sync.Mutex
	subscribers map[chan Notification]struct{}
}

// NewHTTPHandler creates the HTTP transport over the given dispatcher.
func NewHTTPHandler(dispatcher *Dispatcher, log *logger.Logger) *HTTPHandler {
	if log == nil {
		log = logger.NewDefault()
	}
	return &HTTPHandler{
		dispatcher:  dispatcher,
		logger:      log.WithComponent("MCPHTTPHandler"),
		subscribers: make(map[chan Notification]struct{}),
	}
}

// RPC handles POST /mcp
func (h *HTTPHandler) RPC(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, errorResponse(nil, CodeInvalidRequest, "Malformed JSON-RPC request: "+err.Error()))
		return
	}

	h.respond(w, h.dispatcher.Handle(req, handler.ClientIP(r)))
}

// Batch handles POST /mcp/batch
func (h *HTTPHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var reqs []Request
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		h.respond(w, errorResponse(nil, CodeInvalidRequest, "Malformed JSON-RPC batch: "+err.Error()))
		return
	}

	responses := h.dispatcher.HandleBatch(reqs, handler.ClientIP(r))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode batch response")
	}
}

// SSE handles GET /mcp/sse. The stream opens with a "connected" event
// carrying the server info, then forwards notifications, with a ping every
// 30 seconds to hold the connection open through proxies.
func (h *HTTPHandler) SSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	info, _ := json.Marshal(ServerInfo())
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", info)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case n, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(n.Params)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Method, data)
			flusher.Flush()
		}
	}
}

// Info handles GET /mcp/info
func (h *HTTPHandler) Info(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"name":            ServerName,
		"version":         ServerVersion,
		"protocol":        "MCP",
		"protocolVersion": ProtocolVersion,
		"transports":      []string{"http", "stdio"},
		"endpoints": map[string]string{
			"jsonrpc": "/mcp",
			"sse":     "/mcp/sse",
			"info":    "/mcp/info",
		},
		"capabilities": ServerCapabilities(),
		"tools":        ListTools(),
		"resources":    ListResources(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// Notify pushes a notification to every connected SSE subscriber. Slow
// subscribers are skipped rather than blocking the sender.
func (h *HTTPHandler) Notify(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
}

func (h *HTTPHandler) subscribe() chan Notification {
	ch := make(chan Notification, 16)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *HTTPHandler) unsubscribe(ch chan Notification) {
	h.mu.Lock()
	delete(h.subscribers, ch)
	h.mu.Unlock()
}

func (h *HTTPHandler) respond(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode JSON-RPC response")
	}
}
