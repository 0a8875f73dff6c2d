package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	port := gofakeit.IntRange(1024, 65535)
	sqlitePath := filepath.Join(t.TempDir(), gofakeit.Word()+".db")
	path := writeConfig(t, fmt.Sprintf(`
[development]
host = "localhost"
port = %d
log_level = "debug"
sqlite_path = %q
cors_origins = ["http://localhost:8080"]
op_timeout = "5s"
`, port, sqlitePath))

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, port, cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, sqlitePath, cfg.SQLitePath)
	assert.False(t, cfg.MultiTenant())
	assert.Equal(t, 5*time.Second, cfg.OpTimeout.Duration)
	assert.Equal(t, 5, cfg.LoginRateLimitAllowedPerMin)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CorsOrigins)
}

func TestLoad_ProductionPostgres(t *testing.T) {
	dbName := gofakeit.LetterN(10)
	path := writeConfig(t, fmt.Sprintf(`
[production]
environment = "production"
port = 9000
store = "POSTGRES"
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = %q
postgres_app_role = true
redis_host = "redis"
redis_port = "6379"
users_file = "/etc/gymplan/users.toml"
session_ttl = "48h"
login_rate_limit_allowed_per_min = 3
`, dbName))

	cfg, err := Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.True(t, cfg.MultiTenant())
	assert.True(t, cfg.PostgresAppRole)
	assert.Equal(t, dbName, cfg.PostgresDBName)
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL.Duration)
	assert.Equal(t, 3, cfg.LoginRateLimitAllowedPerMin)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		env     string
		content string
	}{
		{
			name:    "unknown env",
			env:     "staging",
			content: "[development]\nport = 9000\n",
		},
		{
			name:    "missing section",
			env:     "prod",
			content: "[development]\nport = 9000\n",
		},
		{
			name:    "invalid port",
			env:     "dev",
			content: "[development]\nport = 0\n",
		},
		{
			name:    "unknown store",
			env:     "dev",
			content: "[development]\nport = 9000\nstore = \"mysql\"\n",
		},
		{
			name:    "postgres without redis",
			env:     "dev",
			content: "[development]\nport = 9000\nstore = \"postgres\"\npostgres_host = \"db\"\npostgres_port = \"5432\"\npostgres_db_name = \"gym\"\n",
		},
		{
			name:    "bad duration",
			env:     "dev",
			content: "[development]\nport = 9000\nop_timeout = \"soon\"\n",
		},
		{
			name:    "broken toml",
			env:     "dev",
			content: "[development\nport = 9000\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.env, writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("dev", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
