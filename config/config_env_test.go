package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()

	yaml := `
env:
  env: test
  serviceName: tastebook
http:
  port: 8080
postgres:
  host: localhost
  port: 5432
  user: app
  dbName: tastebook
  sslMode: disable
pagination:
  maxPageSize: 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))

	t.Chdir(dir)
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("PAGINATION_MAXPAGESIZE", "50")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "tastebook", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)

	// Env vars override file values, matched case-insensitively onto the
	// camelCase YAML keys.
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)

	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
