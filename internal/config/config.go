package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// store
	Store           string `toml:"store"`
	SQLitePath      string `toml:"sqlite_path"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	PostgresUser    string `toml:"postgres_user"`
	PostgresAppRole bool   `toml:"postgres_app_role"`

	// sessions
	RedisHost                   string   `toml:"redis_host"`
	RedisPort                   string   `toml:"redis_port"`
	UsersFile                   string   `toml:"users_file"`
	SessionTTL                  Duration `toml:"session_ttl"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`

	// http
	CorsOrigins []string `toml:"cors_origins"`
	OpTimeout   Duration `toml:"op_timeout"`
}

// Duration decodes TOML strings like "30s" or "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (c *Config) MultiTenant() bool {
	return c.Store == StorePostgres
}

// Validate fills defaults and rejects configs the service cannot start with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Store == "" {
		c.Store = StoreSQLite
	}
	c.Store = strings.ToLower(c.Store)
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}

	switch c.Store {
	case StoreSQLite:
	case StorePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return errors.New("postgres store needs postgres_host, postgres_port and postgres_db_name")
		}
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("postgres store needs redis_host and redis_port for sessions")
		}
		if c.UsersFile == "" {
			return errors.New("postgres store needs users_file")
		}
	default:
		return fmt.Errorf("unknown store: %s", c.Store)
	}

	if c.OpTimeout.Duration < 0 {
		return fmt.Errorf("invalid op_timeout: %s", c.OpTimeout)
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env string, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s config: %w", env, err)
	}
	return cfg, nil
}
