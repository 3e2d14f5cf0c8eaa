package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Market    MarketConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Scan      ScanConfig
	Export    ExportConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MarketConfig holds marketplace fetch configuration
type MarketConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	AcceptLanguage string        `mapstructure:"accept_language"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds report cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP  int `mapstructure:"per_ip"`
	Market int `mapstructure:"market"` // marketplace requests per minute
}

// ScanConfig holds classification run defaults
type ScanConfig struct {
	MaxProducts int `mapstructure:"max_products"`
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/aqualens/")

	// Environment variable settings
	v.SetEnvPrefix("AQUALENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Market defaults
	v.SetDefault("market.base_url", "https://www.amazon.eg")
	v.SetDefault("market.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36")
	v.SetDefault("market.accept_language", "en-US, en;q=0.5")
	v.SetDefault("market.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.ttl", "15m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.market", 30)

	// Scan defaults
	v.SetDefault("scan.max_products", 48)

	// Export defaults
	v.SetDefault("export.dir", "data")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Market.BaseURL == "" {
		return fmt.Errorf("market base URL is required (set AQUALENS_MARKET_BASE_URL)")
	}

	if config.Scan.MaxProducts <= 0 {
		return fmt.Errorf("scan max_products must be positive, got: %d", config.Scan.MaxProducts)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.Market <= 0 {
		return fmt.Errorf("market rate limit must be positive, got: %d", config.RateLimit.Market)
	}

	return nil
}
