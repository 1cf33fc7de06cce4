package router

import (
	"net/http"

	"github.com/evyataryagoni/geoip-api/internal/handler"
	"github.com/evyataryagoni/geoip-api/internal/logger"
	"github.com/evyataryagoni/geoip-api/internal/mcp"
	"github.com/evyataryagoni/geoip-api/internal/metrics"
	custommiddleware "github.com/evyataryagoni/geoip-api/internal/middleware"
	v1 "github.com/evyataryagoni/geoip-api/internal/router/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/evyataryagoni/geoip-api/docs" // Swagger docs
)

// SetupRouter creates and configures the Chi router with all middleware and routes
// This separates routing logic from the main application setup
//
// Parameters:
//   - geoHandler: the geolocation and timezone handler
//   - discovery: the machine-discovery document handler
//   - mcpHandler: the MCP HTTP transport (JSON-RPC, SSE, info)
//   - m: metrics collector
//   - log: structured logger
//
// Returns:
//   - chi.Router: configured router ready to use
func SetupRouter(geoHandler *handler.GeoHandler, discovery *handler.DiscoveryHandler, mcpHandler *mcp.HTTPHandler, m *metrics.Metrics, log *logger.Logger) chi.Router {
	// Create new Chi router
	r := chi.NewRouter()

	// Apply global middleware - these run on every request
	// Order matters! RequestID should be first, then logging, then metrics
	r.Use(middleware.RequestID)                    // Add unique request ID to each request
	r.Use(middleware.RealIP)                       // Get real client IP (handles proxies/load balancers)
	r.Use(custommiddleware.LoggingMiddleware(log)) // Structured logging
	r.Use(middleware.Recoverer)                    // Recover from panics and return 500
	r.Use(custommiddleware.MetricsMiddleware(m))   // Collect Prometheus metrics

	// Legacy unversioned endpoints - the simple response shapes
	// The root path geolocates the caller, like the hosted ipgeolocation APIs
	r.Get("/", geoHandler.Self)
	r.Get("/ipgeo", geoHandler.IPGeo)
	r.Get("/ipgeo/self", geoHandler.Self)
	r.Get("/timezone", geoHandler.Timezone)

	// Mount v1 API routes under /v1 prefix
	// v1 serves the extended response shapes (location, currency, timezone details)
	r.Mount("/v1", v1.SetupRoutes(geoHandler))

	// MCP transport - JSON-RPC over HTTP plus SSE notifications
	r.Post("/mcp", mcpHandler.RPC)
	r.Post("/mcp/batch", mcpHandler.Batch)
	r.Get("/mcp/sse", mcpHandler.SSE)
	r.Get("/mcp/info", mcpHandler.Info)

	// Machine discovery documents for crawlers and AI agents
	r.Get("/openapi.yaml", discovery.OpenAPI)
	r.Get("/llms.txt", discovery.LLMsTxt)
	r.Get("/robots.txt", discovery.RobotsTxt)
	r.Get("/sitemap.xml", discovery.Sitemap)
	r.Get("/.well-known/openapi.yaml", discovery.OpenAPI)
	r.Get("/.well-known/ai-plugin.json", discovery.AIPlugin)

	// Root-level routes (not versioned)
	// Health check endpoint - used by load balancers and monitoring
	r.Get("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI endpoint - API documentation
	// Access at: http://localhost:3000/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// healthCheckHandler is a simple health check endpoint
// Returns 200 OK if the service is running
// In production, you might want to check database connections, etc.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
