package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
)

// Currency refresh policies.
const (
	RefreshWhenEmpty = "empty"
	RefreshAlways    = "always"
)

// DefaultInitialStartDate is the earliest date the upstream API is assumed to have data for.
var DefaultInitialStartDate = time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config holds all settings of a loader run.
type Config struct {
	// Upstream API
	APIKey       string
	APIBaseURL   string
	APITimeout   time.Duration
	BaseCurrency string

	InitialStartDate      time.Time
	CurrencyRefreshPolicy string

	// PostgreSQL warehouse
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Logging
	LogLevel     string
	ErrorLogPath string

	// Redis snapshot cache; empty addr disables it
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SnapshotCacheTTL time.Duration

	// Kafka load events; no brokers disables publishing
	KafkaBrokers []string
	KafkaTopic   string

	// Prometheus pushgateway; empty disables pushing
	PushgatewayURL string
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// Load reads environment variables, after loading them from the optional file at path,
// and returns the run configuration. A missing API key yields apperrors.ErrConfiguration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &Config{}
	var err error

	// Upstream API
	cfg.APIKey = getEnv("CURRENCYBEACON_API_KEY", "")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: CURRENCYBEACON_API_KEY environment variable not set", apperrors.ErrConfiguration)
	}
	cfg.APIBaseURL = strings.TrimRight(getEnv("CURRENCYBEACON_BASE_URL", "https://api.currencybeacon.com/v1"), "/")
	if cfg.APITimeout, err = time.ParseDuration(getEnv("CURRENCYBEACON_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("%w: CURRENCYBEACON_TIMEOUT: %w", apperrors.ErrConfiguration, err)
	}
	cfg.BaseCurrency = strings.ToUpper(getEnv("BASE_CURRENCY", "USD"))

	start := getEnv("INITIAL_START_DATE", DefaultInitialStartDate.Format("2006-01-02"))
	if cfg.InitialStartDate, err = time.Parse("2006-01-02", start); err != nil {
		return nil, fmt.Errorf("%w: INITIAL_START_DATE: %w", apperrors.ErrConfiguration, err)
	}

	cfg.CurrencyRefreshPolicy = getEnv("CURRENCY_REFRESH_POLICY", RefreshWhenEmpty)
	if cfg.CurrencyRefreshPolicy != RefreshWhenEmpty && cfg.CurrencyRefreshPolicy != RefreshAlways {
		return nil, fmt.Errorf("%w: CURRENCY_REFRESH_POLICY must be %q or %q",
			apperrors.ErrConfiguration, RefreshWhenEmpty, RefreshAlways)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "currencywarehouse")
	if cfg.PGPort, err = atoi("POSTGRES_PORT", getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = atoi("POSTGRES_MAX_OPEN_CONNS", getEnv("POSTGRES_MAX_OPEN_CONNS", "4")); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = atoi("POSTGRES_MAX_IDLE_CONNS", getEnv("POSTGRES_MAX_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}

	// Logging config
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.ErrorLogPath = getEnv("ERROR_LOG_PATH", "etl_errors.log")

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = atoi("REDIS_DB", getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.SnapshotCacheTTL, err = time.ParseDuration(getEnv("SNAPSHOT_CACHE_TTL", "720h")); err != nil {
		return nil, fmt.Errorf("%w: SNAPSHOT_CACHE_TTL: %w", apperrors.ErrConfiguration, err)
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "fx.rates.loaded")

	cfg.PushgatewayURL = getEnv("PUSHGATEWAY_URL", "")

	return cfg, nil
}

func atoi(key, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", apperrors.ErrConfiguration, key, err)
	}
	return n, nil
}
