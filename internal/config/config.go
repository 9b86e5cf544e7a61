// Package config builds the application configuration from command line
// flags. Flag defaults can be supplied through MOVIES_* environment
// variables, optionally read from a .env file.
package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	appvalidator "github.com/metinatakli/movies-api/internal/validator"
)

const envPrefix = "MOVIES_"

type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	OtelCollectorUrl string
	DisplayVersion   bool
	DB               DBConfig
	Limiter          LimiterConfig
	Movies           MoviesConfig
}

type DBConfig struct {
	DSN          string `validate:"required"`
	MaxOpenConns int    `validate:"min=1"`
	MaxIdleTime  time.Duration
}

type LimiterConfig struct {
	Enabled bool
	RPS     float64 `validate:"gt=0"`
	Burst   int     `validate:"min=1"`
}

// MoviesConfig holds the accepted range for a movie's year of release.
// A zero MaxYearOfRelease means the current year.
type MoviesConfig struct {
	MinYearOfRelease int `validate:"min=0"`
	MaxYearOfRelease int `validate:"min=0"`
}

// Load parses args (without the program name) into a Config. Environment
// variables such as MOVIES_DB_DSN override the built-in flag defaults, and
// explicit flags override both.
func Load(args []string) (Config, error) {
	var cfg Config

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("movies-api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", intOr(k, "port", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", stringOr(k, "env", "dev"), "Environment (dev|staging|prod|test)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", stringOr(k, "otel_collector_url", ""), "OpenTelemetry collector gRPC endpoint")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", stringOr(k, "db_dsn", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", intOr(k, "db_max_open_conns", 25), "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", durationOr(k, "db_max_idle_time", 15*time.Minute), "PostgreSQL max idle time for connections")

	fs.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", boolOr(k, "limiter_enabled", false), "Enable rate limiter")
	fs.Float64Var(&cfg.Limiter.RPS, "limiter-rps", float64Or(k, "limiter_rps", 2), "Rate limiter maximum requests per second")
	fs.IntVar(&cfg.Limiter.Burst, "limiter-burst", intOr(k, "limiter_burst", 4), "Rate limiter maximum burst")

	fs.IntVar(&cfg.Movies.MinYearOfRelease, "movies-min-year", intOr(k, "movies_min_year", 1888), "Earliest accepted year of release")
	fs.IntVar(&cfg.Movies.MaxYearOfRelease, "movies-max-year", intOr(k, "movies_max_year", 0), "Latest accepted year of release (0 means the current year)")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return cfg, err
	}

	if cfg.DisplayVersion {
		return cfg, nil
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return cfg, err
	}

	err = validateYearRange(cfg.Movies)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validateYearRange rejects ranges no release year can satisfy. A zero max
// resolves to the current year, so a min in the future is rejected as well.
func validateYearRange(cfg MoviesConfig) error {
	years := appvalidator.YearRange{
		Min: cfg.MinYearOfRelease,
		Max: cfg.MaxYearOfRelease,
	}

	minYear, maxYear := years.Bounds()
	if minYear > maxYear {
		return fmt.Errorf("movies year range is empty: min %d is after max %d", minYear, maxYear)
	}

	return nil
}

func stringOr(k *koanf.Koanf, key, def string) string {
	if !k.Exists(key) {
		return def
	}
	return k.String(key)
}

func intOr(k *koanf.Koanf, key string, def int) int {
	if !k.Exists(key) {
		return def
	}
	return k.Int(key)
}

func float64Or(k *koanf.Koanf, key string, def float64) float64 {
	if !k.Exists(key) {
		return def
	}
	return k.Float64(key)
}

func boolOr(k *koanf.Koanf, key string, def bool) bool {
	if !k.Exists(key) {
		return def
	}
	return k.Bool(key)
}

func durationOr(k *koanf.Koanf, key string, def time.Duration) time.Duration {
	if !k.Exists(key) {
		return def
	}
	return k.Duration(key)
}
