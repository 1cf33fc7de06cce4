package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/evyataryagoni/geoip-api/internal/cache"
	"github.com/evyataryagoni/geoip-api/internal/config"
	"github.com/evyataryagoni/geoip-api/internal/geoip"
	"github.com/evyataryagoni/geoip-api/internal/handler"
	"github.com/evyataryagoni/geoip-api/internal/logger"
	"github.com/evyataryagoni/geoip-api/internal/mcp"
	"github.com/evyataryagoni/geoip-api/internal/metrics"
	"github.com/evyataryagoni/geoip-api/internal/refdata"
	"github.com/evyataryagoni/geoip-api/internal/router"
	"github.com/evyataryagoni/geoip-api/internal/service"
	"github.com/evyataryagoni/geoip-api/internal/timezone"
)

// @title           IP Geolocation API
// @version         1.0
// @description     IP geolocation and timezone service backed by the GeoLite2 City database, with REST and MCP surfaces
// @termsOfService  http://swagger.io/terms/

// @contact.name   Evyatar Yagoni
// @contact.email  evyatar@example.com

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	// Load configuration
	appConfig := config.Load()

	// Initialize components
	appLogger := setupLogger(appConfig)

	geoReader := setupGeoIP(appConfig, appLogger)
	defer geoReader.Close()

	resultCache := setupCache(appConfig, appLogger)

	metricsCollector := setupMetrics(appLogger)

	// Build application layers
	builder := service.NewResponseBuilder(timezone.NewFinder(), refdata.Load())
	geoService := service.NewGeoService(geoReader, builder, resultCache, metricsCollector, appLogger)
	defer geoService.Close()

	geoHandler := handler.NewGeoHandler(geoService)
	discoveryHandler := handler.NewDiscoveryHandler(appConfig.BaseURL)

	mcpDispatcher := mcp.NewDispatcher(mcp.NewToolSet(geoService), metricsCollector, appLogger)
	mcpHandler := mcp.NewHTTPHandler(mcpDispatcher, appLogger)

	appRouter := router.SetupRouter(geoHandler, discoveryHandler, mcpHandler, metricsCollector, appLogger)

	// Start server
	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().Msg("Starting IP Geolocation Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("base_url", appConfig.BaseURL).
		Str("geoip_db_path", appConfig.GeoIPDBPath).
		Str("cache_type", appConfig.CacheType).
		Int("cache_ttl_seconds", appConfig.CacheTTLSeconds).
		Msg("Configuration loaded")

	return appLogger
}

// setupGeoIP opens the GeoLite2 City database
func setupGeoIP(appConfig *config.Config, log *logger.Logger) *geoip.Reader {
	geoReader, err := geoip.Open(appConfig.GeoIPDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", appConfig.GeoIPDBPath).Msg("Failed to open GeoIP database")
	}

	fmt.Println("✅ GeoIP database loaded")
	return geoReader
}

// setupCache initializes the lookup result cache based on configuration
// Supports in-memory LRU, Redis, and no caching at all
func setupCache(appConfig *config.Config, log *logger.Logger) cache.Cache {
	ttl := time.Duration(appConfig.CacheTTLSeconds) * time.Second

	switch appConfig.CacheType {
	case "memory":
		fmt.Println("✅ In-memory cache initialized")
		return cache.NewMemory(appConfig.CacheMaxEntries, ttl)

	case "redis":
		redisCache, err := cache.NewRedis(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB, ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis cache")
		}
		fmt.Println("✅ Redis cache initialized")
		return redisCache

	case "none":
		fmt.Println("⚠️  Caching disabled")
		return cache.Noop{}

	default:
		log.Fatal().Str("type", appConfig.CacheType).Msg("Unknown cache type")
		return nil
	}
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New()
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// startServer starts the HTTP server and blocks
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	serverAddr := ":" + appConfig.Port

	log.Info().
		Str("port", appConfig.Port).
		Str("api_endpoint", "http://localhost:"+appConfig.Port+"/ipgeo?ip=<ip>").
		Str("mcp_endpoint", "http://localhost:"+appConfig.Port+"/mcp").
		Str("health_check", "http://localhost:"+appConfig.Port+"/health").
		Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
		Str("swagger", "http://localhost:"+appConfig.Port+"/swagger/index.html").
		Msg("Server is running")

	log.Fatal().Err(http.ListenAndServe(serverAddr, appRouter)).Msg("Server failed")
}
