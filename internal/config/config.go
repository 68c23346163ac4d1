package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/money"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var (
	ErrMissingDBHost = errors.New("DB_HOST is required for the postgres driver")
	ErrUnknownDriver = errors.New("unknown STORAGE_DRIVER")
	ErrInvalidValue  = errors.New("invalid configuration value")
)

type Config struct {
	AppEnv  string
	AppPort string

	StorageDriver string
	StorageDir    string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FreeShippingThreshold money.Amount
	FlatShippingFee       money.Amount
	OrderProcessingDelay  time.Duration

	JWTSecret          string
	CORSAllowedOrigins []string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		AppPort:       getEnv("APP_PORT", "8080"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		StorageDir:    getEnv("STORAGE_DIR", "data"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("%w: REDIS_DB: %w", ErrInvalidValue, err)
	}
	if cfg.FreeShippingThreshold, err = money.Parse(getEnv("FREE_SHIPPING_THRESHOLD", "50.00")); err != nil {
		return nil, fmt.Errorf("%w: FREE_SHIPPING_THRESHOLD: %w", ErrInvalidValue, err)
	}
	if cfg.FlatShippingFee, err = money.Parse(getEnv("FLAT_SHIPPING_FEE", "5.99")); err != nil {
		return nil, fmt.Errorf("%w: FLAT_SHIPPING_FEE: %w", ErrInvalidValue, err)
	}
	if cfg.FreeShippingThreshold < 0 || cfg.FlatShippingFee < 0 {
		return nil, fmt.Errorf("%w: shipping amounts must not be negative", ErrInvalidValue)
	}
	if cfg.OrderProcessingDelay, err = time.ParseDuration(getEnv("ORDER_PROCESSING_DELAY", "3s")); err != nil {
		return nil, fmt.Errorf("%w: ORDER_PROCESSING_DELAY: %w", ErrInvalidValue, err)
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverFile, DriverRedis:
	case DriverPostgres:
		if cfg.DBHost == "" {
			return nil, ErrMissingDBHost
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
