package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

const (
	defaultPort               = "8080"
	defaultReferenceBase      = "USD"
	defaultStalenessThreshold = 12 * time.Hour
	defaultProviderTimeout    = 10 * time.Second
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer          = "currency-converter"
	defaultRateLimit          = "60-M"
	defaultRefreshRateLimit   = "6-M"
	defaultMigrationsPath     = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate store and refresh policy
	RateStore          string
	ReferenceBase      string
	StalenessThreshold time.Duration
	MigrationsPath     string

	// Providers
	ProviderTimeout time.Duration
	ECBURL          string
	FrankfurterURL  string
	CoinGeckoURL    string

	// Admin token for the refresh endpoint
	JWTSecret string
	JWTIssuer string

	RateLimit          string
	RefreshRateLimit   string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_STORE", "")
	viper.SetDefault("REFERENCE_BASE", defaultReferenceBase)
	viper.SetDefault("STALENESS_THRESHOLD", defaultStalenessThreshold.String())
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("PROVIDER_TIMEOUT", defaultProviderTimeout.String())
	viper.SetDefault("ECB_URL", "")
	viper.SetDefault("FRANKFURTER_URL", "")
	viper.SetDefault("COINGECKO_URL", "")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("REFRESH_RATE_LIMIT", defaultRefreshRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		ReferenceBase:    strings.ToUpper(strings.TrimSpace(viper.GetString("REFERENCE_BASE"))),
		MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		ECBURL:           viper.GetString("ECB_URL"),
		FrankfurterURL:   viper.GetString("FRANKFURTER_URL"),
		CoinGeckoURL:     viper.GetString("COINGECKO_URL"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		RefreshRateLimit: viper.GetString("REFRESH_RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", "port", cfg.Port)
	}
	if cfg.ReferenceBase == "" {
		cfg.ReferenceBase = defaultReferenceBase
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.RefreshRateLimit == "" {
		cfg.RefreshRateLimit = defaultRefreshRateLimit
	}

	cfg.StalenessThreshold = durationOrDefault("STALENESS_THRESHOLD", defaultStalenessThreshold)
	cfg.ProviderTimeout = durationOrDefault("PROVIDER_TIMEOUT", defaultProviderTimeout)

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	store := strings.ToLower(strings.TrimSpace(viper.GetString("RATE_STORE")))
	switch store {
	case "":
		store = StoreMemory
		if cfg.DatabaseURL != "" {
			store = StorePostgres
		}
	case StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid RATE_STORE %q: want %q or %q", store, StorePostgres, StoreMemory)
	}
	if store == StorePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("RATE_STORE=%s requires PGSQL_URL", StorePostgres)
	}
	cfg.RateStore = store

	return cfg, nil
}

// durationOrDefault parses key as a duration, falling back to def with a warning.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("invalid duration, using default", "key", key, "value", raw, "default", def.String())
		}
		return def
	}
	return d
}
