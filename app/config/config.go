package config

import (
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	DriverPgx = "pgx"
	DriverPq  = "pq"
)

type Config struct {
	HTTPAddr  string
	Store     string
	LogLevel  string
	LogFormat string
	Postgres  PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DB       string
	SSLMode  string
	Driver   string
}

// DSN renders the connection URL understood by both pgx and lib/pq.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DB,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// New returns a viper instance reading the environment, with defaults set.
// Keys map to env vars by upper-casing and replacing dots, so
// "postgres.host" reads POSTGRES_HOST.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("cookbook.store", StorePostgres)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "cookbook")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.driver", DriverPgx)
	return v
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "load %s", f)
		}
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPAddr:  v.GetString("http.addr"),
		Store:     v.GetString("cookbook.store"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Postgres: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetInt("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			DB:       v.GetString("postgres.db"),
			SSLMode:  v.GetString("postgres.sslmode"),
			Driver:   v.GetString("postgres.driver"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreMemory, StorePostgres:
	default:
		return errors.Errorf("unknown store %q (want %s or %s)", c.Store, StorePostgres, StoreMemory)
	}
	switch c.Postgres.Driver {
	case DriverPgx, DriverPq:
	default:
		return errors.Errorf("unknown postgres driver %q (want %s or %s)", c.Postgres.Driver, DriverPgx, DriverPq)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
