package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"

	"github.com/amcdental/dentalhub-backend/internal/platform/envutil"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env         string
	ServiceName string
	Version     string
	Port        string

	DBDriver    string
	SQLitePath  string
	AutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string
}

// LoadDotEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Env:           strings.ToLower(envutil.String("APP_ENV", "development")),
		ServiceName:   envutil.String("OTEL_SERVICE_NAME", "dentalhub-api"),
		Version:       envutil.String("APP_VERSION", "dev"),
		Port:          envutil.String("PORT", "8080"),
		DBDriver:      strings.ToLower(envutil.String("DB_DRIVER", DriverPostgres)),
		SQLitePath:    envutil.String("SQLITE_PATH", "dentalhub.db"),
		AutoMigrate:   envutil.Bool("DB_AUTO_MIGRATE", true),
		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),
		RedisChannel:  envutil.String("REDIS_CHANNEL", ""),
	}
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
