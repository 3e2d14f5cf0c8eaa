package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aqualens/backend/config"
	httpDelivery "github.com/aqualens/backend/internal/delivery/http"
	"github.com/aqualens/backend/internal/infrastructure/cache"
	"github.com/aqualens/backend/internal/infrastructure/export"
	"github.com/aqualens/backend/internal/infrastructure/market"
	"github.com/aqualens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting AquaLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Marketplace: %s", cfg.Market.BaseURL)

	// Initialize infrastructure dependencies
	reportCache := cache.NewMemoryCache()
	log.Printf("Report cache TTL: %s", cfg.Cache.TTL)

	marketClient := market.NewClient(market.ClientConfig{
		BaseURL:           cfg.Market.BaseURL,
		UserAgent:         cfg.Market.UserAgent,
		AcceptLanguage:    cfg.Market.AcceptLanguage,
		Timeout:           cfg.Market.Timeout,
		RequestsPerMinute: cfg.RateLimit.Market,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		marketClient.SetDebug(true)
		log.Printf("Market client debug mode enabled")
	}

	exportWriter, err := export.NewWriter(cfg.Export.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare export directory: %v", err)
	}
	log.Printf("CSV export dir: %s", cfg.Export.Dir)

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		marketClient,
		reportCache,
		usecase.AnalysisServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxProducts:        cfg.Scan.MaxProducts,
			EnableDebugLogging: cfg.Server.Environment == "development",
		},
	)

	log.Printf("Scan: max_products=%d, market rate=%d req/min",
		cfg.Scan.MaxProducts, cfg.RateLimit.Market)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, exportWriter)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
