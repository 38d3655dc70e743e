package app

import (
	"errors"
	"flag"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/metinatakli/novaflix/internal/auth"
)

const envPrefix = "novaflix"

type Config struct {
	Port             int    `envconfig:"PORT" default:"3000"`
	Env              string `envconfig:"ENV" default:"dev"`
	OtelCollectorUrl string `envconfig:"OTEL_COLLECTOR_URL"`
	Redis            RedisConfig
	Session          SessionConfig
	Admin            AdminConfig
}

type RedisConfig struct {
	URL          string        `envconfig:"URL"`
	MaxOpenConns int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	MaxIdleTime  time.Duration `envconfig:"MAX_IDLE_TIME" default:"2m"`
}

type SessionConfig struct {
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT" default:"20m"`
	Lifetime    time.Duration `envconfig:"LIFETIME" default:"24h"`
}

type AdminConfig struct {
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
}

// LoadConfig reads an optional .env file, then NOVAFLIX_* environment
// variables. Missing admin credentials fall back to the demo pair.
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config

	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	err = envconfig.Process(envPrefix, &cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.Admin.Username == "" {
		cfg.Admin.Username = auth.DefaultUsername
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = auth.DefaultPassword
	}

	return cfg, nil
}

// RegisterFlags binds command line flags to cfg. Values already in cfg act as
// the flag defaults, so flags override the environment.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", cfg.OtelCollectorUrl, "OpenTelemetry collector gRPC endpoint")

	fs.StringVar(&cfg.Redis.URL, "redis-url", cfg.Redis.URL, "Redis URL, in-memory storage is used when empty")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", cfg.Redis.MaxOpenConns, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", cfg.Redis.MaxIdleConns, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", cfg.Redis.MaxIdleTime, "Redis max idle time for connections")

	fs.DurationVar(&cfg.Session.IdleTimeout, "session-idle-timeout", cfg.Session.IdleTimeout, "Session idle timeout")
	fs.DurationVar(&cfg.Session.Lifetime, "session-lifetime", cfg.Session.Lifetime, "Session absolute lifetime")

	fs.StringVar(&cfg.Admin.Username, "admin-username", cfg.Admin.Username, "Admin username")
	fs.StringVar(&cfg.Admin.Password, "admin-password", cfg.Admin.Password, "Admin password")
}
