package main

import (
	"os"

	"github.com/evyataryagoni/geoip-api/internal/cache"
	"github.com/evyataryagoni/geoip-api/internal/config"
	"github.com/evyataryagoni/geoip-api/internal/geoip"
	"github.com/evyataryagoni/geoip-api/internal/logger"
	"github.com/evyataryagoni/geoip-api/internal/mcp"
	"github.com/evyataryagoni/geoip-api/internal/metrics"
	"github.com/evyataryagoni/geoip-api/internal/refdata"
	"github.com/evyataryagoni/geoip-api/internal/service"
	"github.com/evyataryagoni/geoip-api/internal/timezone"
)

// The stdio MCP server speaks newline-delimited JSON-RPC on stdin/stdout.
// Stdout belongs to the protocol, so all logging goes to stderr.
func main() {
	appConfig := config.Load()

	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
		Stderr: true,
	})

	appLogger.Info().
		Str("geoip_db_path", appConfig.GeoIPDBPath).
		Msg("Starting MCP stdio server")

	geoReader, err := geoip.Open(appConfig.GeoIPDBPath)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", appConfig.GeoIPDBPath).Msg("Failed to open GeoIP database")
	}
	defer geoReader.Close()

	// MCP tool calls always recompute, so no result cache is wired here
	builder := service.NewResponseBuilder(timezone.NewFinder(), refdata.Load())
	geoService := service.NewGeoService(geoReader, builder, cache.Noop{}, metrics.New(), appLogger)
	defer geoService.Close()

	dispatcher := mcp.NewDispatcher(mcp.NewToolSet(geoService), nil, appLogger)
	server := mcp.NewStdioServer(dispatcher, os.Stdin, os.Stdout, appLogger)

	if err := server.Run(); err != nil {
		appLogger.Fatal().Err(err).Msg("stdio server terminated")
	}
}
