package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: autonomax
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
postgres:
  database: autonomax
  sslMode: disable
  master:
    host: localhost
    port: "5432"
    userName: postgres
    password: "p@ss word"
secretKey:
  access: ""
auth:
  tokenTTL: 2h
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0o600))

	return dir
}

func TestLoadWithEnv_OverlaysPrefixedEnv(t *testing.T) {
	dir := writeConfig(t)
	t.Chdir(dir)
	t.Setenv("AUTONOMAX_SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTONOMAX_POSTGRES_SSLMODE", "require")
	t.Setenv("AUTONOMAX_CORS_ALLOWORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 5, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, 100, cfg.RateLimit.GlobalPerMinute)
	assert.NotNil(t, cfg.Postgres)
}

func TestPostgresConfig_ConnectionStrings(t *testing.T) {
	p := &PostgresConfig{
		Database: "autonomax",
		Master:   Endpoint{Host: "db", Port: "5432", UserName: "app", Password: "p@ss word"},
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/autonomax?sslmode=disable", p.URL())

	replica := Endpoint{Host: "replica", Port: "5433", UserName: "ro", Password: "secret"}
	assert.Equal(t, "host=replica port=5433 user=ro password=secret dbname=autonomax sslmode=disable", p.DSN(replica))
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("AUTONOMAX_POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("AUTONOMAX_POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("AUTONOMAX_POSTGRES_REPLICAS_0_USERNAME", "ro")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, Endpoint{Host: "replica-0", Port: "5433", UserName: "ro"}, replicas[0])
}
