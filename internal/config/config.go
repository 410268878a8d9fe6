package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr            string
		ShutdownTimeout time.Duration
		CORSOrigins     []string
		Swagger         bool
	}
	Database struct {
		Driver string
		Path   string
		DSN    string
	}
	Pagination struct {
		DefaultSize int
		MaxSize     int
	}
	Log struct {
		Level  string
		Format string
	}
	Export struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	// existing environment variables win over .env entries
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MYLIBRARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("server.corsorigins", []string{"*"})
	v.SetDefault("server.swagger", true)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "data/mylibrary.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("pagination.defaultsize", 20)
	v.SetDefault("pagination.maxsize", 2000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("export.bucket", "")
	v.SetDefault("export.keyprefix", "user-exports")
	v.SetDefault("export.region", "us-east-1")
	v.SetDefault("export.endpoint", "")
	v.SetDefault("aws.profile", "")
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Pagination.DefaultSize < 1 {
		return fmt.Errorf("pagination default size must be positive")
	}
	if c.Pagination.MaxSize < c.Pagination.DefaultSize {
		return fmt.Errorf("pagination max size must not be below default size")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}
