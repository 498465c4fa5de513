package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`
	// JWTTTL is both the credential lifetime and the token cookie lifetime.
	JWTTTL time.Duration `env:"JWT_TTL, default=24h"`

	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
	// CategoryAdminOnly restricts category creation to admins.
	CategoryAdminOnly bool `env:"CATEGORY_ADMIN_ONLY, default=false"`
	LoginMaxAttempts  int  `env:"LOGIN_MAX_ATTEMPTS,  default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blog"`
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
