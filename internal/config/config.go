package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// HTTP server
	APIURL      *url.URL
	Port        string
	GinMode     string
	CORSOrigins []string
	EnablePprof bool

	// Logging
	LogFormat string

	// Database. The PostgreSQL settings are only used when DBHost is set.
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	// Authentication
	JWTSecret string
	TokenTTL  time.Duration

	// Recurring income materialization, in cron syntax. Empty disables it.
	RecurrenceSchedule string
}

// LoadDotEnv loads environment variables from the given files. Files that do not
// exist are ignored. Variables that are already set are not overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var problems []string

	apiURL, err := url.Parse(getEnv("API_URL", ""))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		problems = append(problems, "API_URL must be set to the URL the API is reachable at, e.g. https://ledger.example.com/api")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("TOKEN_TTL %q is not a valid duration", os.Getenv("TOKEN_TTL")))
	}

	pprof, err := strconv.ParseBool(getEnv("ENABLE_PPROF", "false"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("ENABLE_PPROF %q must be true or false", os.Getenv("ENABLE_PPROF")))
	}

	cfg := Config{
		APIURL:             apiURL,
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "release"),
		CORSOrigins:        strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:        pprof,
		LogFormat:          getEnv("LOG_FORMAT", ""),
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "ledger.db")),
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "ledger"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           ttl,
		RecurrenceSchedule: getEnv("RECURRENCE_SCHEDULE", "@hourly"),
	}

	problems = append(problems, cfg.validate()...)
	if len(problems) > 0 {
		return cfg, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return cfg, nil
}

func (c Config) validate() []string {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %q must be a number between 1 and 65535", c.Port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("GIN_MODE %q must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT %q must be human or json", c.LogFormat))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}

	if c.TokenTTL < 0 {
		problems = append(problems, "TOKEN_TTL must not be negative")
	}

	if c.RecurrenceSchedule != "" {
		if _, err := cron.ParseStandard(c.RecurrenceSchedule); err != nil {
			problems = append(problems, fmt.Sprintf("RECURRENCE_SCHEDULE %q is not a valid schedule: %v", c.RecurrenceSchedule, err))
		}
	}

	if c.DBHost != "" && c.DBUser == "" {
		problems = append(problems, "DB_USER must be set when DB_HOST is set")
	}

	return problems
}

// UsePostgres is true when a PostgreSQL server is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for the PostgreSQL server.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
