package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the catalog service.
type Config struct {
	// Service
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"modelhub-server"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"modelhub"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort      int           `env:"METRICS_PORT" envDefault:"9091"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Database
	DatabaseURL    string        `env:"DATABASE_URL,notEmpty"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	AutoMigrate    bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	// Auth
	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"modelhub"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Hugging Face
	HuggingFaceAPIKey  string        `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceBaseURL string        `env:"HUGGINGFACE_BASE_URL" envDefault:"https://huggingface.co"`
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	FetchRetries       int           `env:"FETCH_RETRIES" envDefault:"2"`

	// Replicate
	ReplicateAPIToken string `env:"REPLICATE_API_TOKEN"`
	ReplicateBaseURL  string `env:"REPLICATE_BASE_URL" envDefault:"https://api.replicate.com"`

	// Bulk scrape schedule
	ScrapeSyncEnabled    bool `env:"SCRAPE_SYNC_ENABLED" envDefault:"true"`
	ScrapeIntervalHours  int  `env:"SCRAPE_INTERVAL_HOURS" envDefault:"24"`
	BulkScrapeLimit      int  `env:"BULK_SCRAPE_LIMIT" envDefault:"100"`
	ScrapeRunOnStart     bool `env:"SCRAPE_RUN_ON_START" envDefault:"false"`
	ScrapeMaxConcurrency int  `env:"SCRAPE_MAX_CONCURRENCY" envDefault:"4"`

	// Taxonomy
	TaxonomyFile string `env:"TAXONOMY_FILE"`

	// Observability
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders   string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	EnableSwagger bool   `env:"ENABLE_SWAGGER" envDefault:"true"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.HuggingFaceBaseURL = strings.TrimRight(strings.TrimSpace(cfg.HuggingFaceBaseURL), "/")
	cfg.ReplicateBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ReplicateBaseURL), "/")

	if cfg.FetchRetries < 0 {
		cfg.FetchRetries = 0
	}
	if cfg.ScrapeIntervalHours <= 0 {
		cfg.ScrapeIntervalHours = 24
	}
	if cfg.BulkScrapeLimit <= 0 {
		cfg.BulkScrapeLimit = 100
	}
	if cfg.ScrapeMaxConcurrency <= 0 {
		cfg.ScrapeMaxConcurrency = 4
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MetricsAddr returns the metrics/pprof listen address.
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}
