package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// DashboardDir holds the built dashboard SPA served under /dashboard.
	DashboardDir    string `env:"DASHBOARD_DIR,    default=./dashboard/dist"`
	DispatchWorkers int    `env:"DISPATCH_WORKERS, default=8"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig seeds the first admin account on startup when both are set.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=personal_trainer"`
}

// RedisConfig points at the idempotency store. REDIS_URL overrides the
// individual address fields.
type RedisConfig struct {
	URL            string        `env:"REDIS_URL"`
	Addr           string        `env:"REDIS_ADDR,       default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,         default=0"`
	PoolSize       int           `env:"REDIS_POOL_SIZE,  default=10"`
	WeightDedupTTL time.Duration `env:"WEIGHT_DEDUP_TTL, default=24h"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.JWTSecret == "" && !cfg.IsDevelopment() {
		return nil, fmt.Errorf("config: JWT_SECRET is required outside development")
	}
	return &cfg, nil
}
