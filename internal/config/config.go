package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

// Config stores HTTP service settings.
type Config struct {
	Port             int
	Env              string
	OperationTimeout time.Duration
	DB               DB
	RateLimit        RateLimit
	Pprof            Pprof
}

// DB stores hosted database settings.
type DB struct {
	URL            string
	ConnectRetries int
	ConnectDelay   time.Duration
	// Migrate applies the bundled schema on startup.
	Migrate bool
}

// RateLimit stores per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores profiling server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// env mirrors the process environment one variable per field.
type env struct {
	Port             int           `envconfig:"PORT" default:"8080"`
	AppEnv           string        `envconfig:"APP_ENV" default:"development"`
	OperationTimeout time.Duration `envconfig:"OPERATION_TIMEOUT" default:"3s"`

	DatabaseURL      string        `envconfig:"DATABASE_URL"`
	DBConnectRetries int           `envconfig:"DB_CONNECT_RETRIES" default:"10"`
	DBConnectDelay   time.Duration `envconfig:"DB_CONNECT_DELAY" default:"1s"`
	DBMigrate        bool          `envconfig:"DB_MIGRATE" default:"true"`

	RateLimitEnabled    bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RateLimitRPS        float64       `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst      int           `envconfig:"RATE_LIMIT_BURST" default:"40"`
	RateLimitTTL        time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	RateLimitMaxBuckets int           `envconfig:"RATE_LIMIT_MAX_BUCKETS" default:"10000"`

	PprofEnabled bool   `envconfig:"PPROF_ENABLED" default:"false"`
	PprofAddr    string `envconfig:"PPROF_ADDR" default:"127.0.0.1:6060"`
	PprofUser    string `envconfig:"PPROF_USER"`
	PprofPass    string `envconfig:"PPROF_PASS"`
}

func (e env) config() *Config {
	return &Config{
		Port:             e.Port,
		Env:              e.AppEnv,
		OperationTimeout: e.OperationTimeout,
		DB: DB{
			URL:            e.DatabaseURL,
			ConnectRetries: e.DBConnectRetries,
			ConnectDelay:   e.DBConnectDelay,
			Migrate:        e.DBMigrate,
		},
		RateLimit: RateLimit{
			Enabled:    e.RateLimitEnabled,
			Rate:       e.RateLimitRPS,
			Burst:      e.RateLimitBurst,
			TTL:        e.RateLimitTTL,
			MaxBuckets: e.RateLimitMaxBuckets,
		},
		Pprof: Pprof{
			Enabled: e.PprofEnabled,
			Addr:    e.PprofAddr,
			User:    e.PprofUser,
			Pass:    e.PprofPass,
		},
	}
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg := e.config()

	fs := pflag.CommandLine
	if fs.Lookup("port") == nil {
		fs.IntP("port", "p", cfg.Port, "port to listen on")
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return nil, fmt.Errorf("parse flags: %w", err)
		}
		cfg.Port = port
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("invalid APP_ENV %q: want %s or %s", c.Env, EnvDevelopment, EnvProduction))
	}
	if c.OperationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid OPERATION_TIMEOUT: %s", c.OperationTimeout))
	}
	if c.DB.ConnectRetries < 1 {
		errs = append(errs, fmt.Errorf("invalid DB_CONNECT_RETRIES: %d", c.DB.ConnectRetries))
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate limit needs positive RATE_LIMIT_RPS and RATE_LIMIT_BURST"))
	}
	if c.Pprof.Enabled && c.Pprof.Addr == "" {
		errs = append(errs, errors.New("PPROF_ADDR is required when pprof is enabled"))
	}
	return errors.Join(errs...)
}

// Production reports whether the service runs with APP_ENV=production.
func (c *Config) Production() bool { return c.Env == EnvProduction }

// Configured reports whether a real hosted database is set up. An empty URL or
// one still holding a template placeholder means the service runs on the
// in-memory store.
func (d DB) Configured() bool {
	if d.URL == "" {
		return false
	}
	for _, m := range placeholderMarkers {
		if containsFold(d.URL, m) {
			return false
		}
	}
	return true
}
