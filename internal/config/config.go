package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	AppPort  string
	LogLevel string

	// APIBaseURL is the shop backend root, including the /api prefix.
	APIBaseURL string

	StoreDriver string
	StoreSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	DatabaseDSN string

	// SessionSecret signs the flash and CSRF cookies.
	SessionSecret string
	CookieSecure  bool
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://127.0.0.1:8000/api")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("STORE_SECRET", "")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "storefront:")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("COOKIE_SECURE", false)

	v.AutomaticEnv()
	return v
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	v := newViper()

	cfg := Config{
		AppPort:  v.GetString("APP_PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),

		APIBaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),

		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		StoreSecret: v.GetString("STORE_SECRET"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisPrefix:   v.GetString("REDIS_PREFIX"),

		DatabaseDSN: v.GetString("DATABASE_DSN"),

		SessionSecret: v.GetString("SESSION_SECRET"),
		CookieSecure:  v.GetBool("COOKIE_SECURE"),
	}

	return cfg
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("config: API_BASE_URL must be an http(s) URL: %q", c.APIBaseURL)
	}
	if c.AppPort == "" {
		return fmt.Errorf("config: APP_PORT is required")
	}

	switch c.StoreDriver {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("config: REDIS_ADDR is required for the redis store")
		}
	case StorePostgres, StoreSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for the %s store", c.StoreDriver)
		}
	default:
		return fmt.Errorf("config: unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	return nil
}
