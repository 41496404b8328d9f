package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MHANAC_APP_ENV" default:"dev"`
	Port         string `envconfig:"MHANAC_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MHANAC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MHANAC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig describes the session-state store. Both URL and Address may be
// empty, in which case the service runs on the in-process store.
type RedisConfig struct {
	URL          string        `envconfig:"MHANAC_REDIS_URL"`
	Address      string        `envconfig:"MHANAC_REDIS_ADDR"`
	Password     string        `envconfig:"MHANAC_REDIS_PASSWORD"`
	DB           int           `envconfig:"MHANAC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MHANAC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MHANAC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MHANAC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MHANAC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MHANAC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was provided at all.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

// CatalogConfig points at the optional remote catalog API. An empty base URL
// disables remote fetches entirely; the static catalog serves every request.
type CatalogConfig struct {
	RemoteBaseURL string        `envconfig:"MHANAC_CATALOG_API_URL"`
	RemoteTimeout time.Duration `envconfig:"MHANAC_CATALOG_API_TIMEOUT" default:"3s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"MHANAC_SESSION_COOKIE" default:"mhanac_session"`
	TTL        time.Duration `envconfig:"MHANAC_SESSION_TTL" default:"720h"`
}
