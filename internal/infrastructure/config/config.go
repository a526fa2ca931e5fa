package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Access AccessConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// AccessConfig holds the route table and canonical paths consumed by the
// session gatekeeper. Supplied once at process start; never mutated after.
type AccessConfig struct {
	LandingPath string `env:"LANDING_PATH, default=/dashboard"`
	LoginPath   string `env:"LOGIN_PATH,   default=/login"`

	// Ordered pattern lists. A trailing "*" marks a prefix pattern; anything
	// matching neither list is protected.
	APIRoutes  []string `env:"API_ROUTES,  delimiter=;, default=/api/*;/metrics;/health*;/swagger/*"`
	AuthRoutes []string `env:"AUTH_ROUTES, delimiter=;, default=/;/login;/register"`

	SessionTTLMinutes int `env:"SESSION_TTL_MINUTES, default=1440"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
