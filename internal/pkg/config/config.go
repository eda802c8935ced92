package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StoreDriver selects the repository implementations: "memory" (default)
	// or "mongo".
	StoreDriver string `env:"STORE_DRIVER, default=memory"`

	// CacheEnabled turns on the Redis note cache.
	CacheEnabled bool `env:"CACHE_ENABLED, default=false"`

	// AuditWorkers is the number of audit dispatcher workers.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret     string `env:"JWT_SECRET"`
	Issuer     string `env:"JWT_ISSUER,   default=notes-system"`
	Audience   string `env:"JWT_AUDIENCE, default=notes-api"`
	TTLMinutes int    `env:"JWT_TTL_MINUTES, default=120"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=notes_system"`
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
