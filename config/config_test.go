package config

import (
	"os"
	"testing"
	"time"
)

func cleanupEnv() {
	os.Unsetenv("AQUALENS_SERVER_PORT")
	os.Unsetenv("AQUALENS_SERVER_ENVIRONMENT")
	os.Unsetenv("AQUALENS_MARKET_BASE_URL")
	os.Unsetenv("AQUALENS_MARKET_TIMEOUT")
	os.Unsetenv("AQUALENS_CACHE_TTL")
	os.Unsetenv("AQUALENS_RATELIMIT_PER_IP")
	os.Unsetenv("AQUALENS_RATELIMIT_MARKET")
	os.Unsetenv("AQUALENS_SCAN_MAX_PRODUCTS")
	os.Unsetenv("AQUALENS_EXPORT_DIR")
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Market.BaseURL != "https://www.amazon.eg" {
			t.Errorf("Market.BaseURL = %s, want https://www.amazon.eg", cfg.Market.BaseURL)
		}
		if cfg.Market.Timeout != 30*time.Second {
			t.Errorf("Market.Timeout = %v, want 30s", cfg.Market.Timeout)
		}
		if cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Market != 30 {
			t.Errorf("RateLimit.Market = %d, want 30", cfg.RateLimit.Market)
		}
		if cfg.Scan.MaxProducts != 48 {
			t.Errorf("Scan.MaxProducts = %d, want 48", cfg.Scan.MaxProducts)
		}
		if cfg.Export.Dir != "data" {
			t.Errorf("Export.Dir = %s, want data", cfg.Export.Dir)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("AQUALENS_SERVER_PORT", "9090")
		os.Setenv("AQUALENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("AQUALENS_MARKET_BASE_URL", "https://marketplace.example.com")
		os.Setenv("AQUALENS_CACHE_TTL", "1h")
		os.Setenv("AQUALENS_SCAN_MAX_PRODUCTS", "24")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Market.BaseURL != "https://marketplace.example.com" {
			t.Errorf("Market.BaseURL = %s, want custom URL", cfg.Market.BaseURL)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Scan.MaxProducts != 24 {
			t.Errorf("Scan.MaxProducts = %d, want 24", cfg.Scan.MaxProducts)
		}
	})

	t.Run("rejects non-positive max products", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("AQUALENS_SCAN_MAX_PRODUCTS", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive market rate limit", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("AQUALENS_RATELIMIT_MARKET", "-1")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}
