package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const EnvDevelopment = "development"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"JWT_TTL,         default=1h"`
	BcryptCost int           `env:"BCRYPT_COST,     default=10"`
	RateLimit  float64       `env:"AUTH_RATE_LIMIT, default=5"`
	RateBurst  int           `env:"AUTH_RATE_BURST, default=10"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_DB_URI,  default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=umd"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig is optional. An empty address disables key reservation.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	ReservationTTL time.Duration `env:"RESERVATION_TTL, default=10s"`
}

func (c *Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

// Load reads a .env file from the working directory when present, then
// resolves the configuration from the process environment. Variables already
// set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves the configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Auth.TokenTTL <= 0:
		return errors.New("JWT_TTL must be positive")
	case c.Auth.RateLimit <= 0 || c.Auth.RateBurst <= 0:
		return errors.New("AUTH_RATE_LIMIT and AUTH_RATE_BURST must be positive")
	case c.Mongo.Database == "":
		return errors.New("MONGO_DB must not be empty")
	}
	return nil
}
