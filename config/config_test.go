package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	known := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"pagination": map[string]any{"defaultElementsPerPage": 10},
		"secretKey":  map[string]any{"access": ""},
		"jobs":       map[string]any{"promotionExpiry": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":                  "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":          "postgres.master.userName",
		"PAGINATION_DEFAULTELEMENTSPERPAGE": "pagination.defaultElementsPerPage",
		"SECRETKEY_ACCESS":                  "secretKey.access",
		"JOBS_PROMOTIONEXPIRY":              "jobs.promotionExpiry",
		"NEW_FEATURE_FLAG":                  "new.feature.flag",
		"POSTGRES__SSLMODE":                 "postgres.sslMode",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, known))
		})
	}
}

func TestLoad_EnvironmentOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  port: 8080
order:
  codeMaxAttempts: 3
auth:
  accessTokenTtl: 10m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yaml), 0o600))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_ACCESSTOKENTTL", "30m")

	var cfg Config
	require.NoError(t, load(&cfg, "app", filepath.Join(dir, "missing"), dir))

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Order)
	assert.Equal(t, 3, cfg.Order.CodeMaxAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg Config

	err := load(&cfg, "absent", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.Pagination.DefaultElementsPerPage)
	assert.Equal(t, 100, cfg.Pagination.MaxElementsPerPage)
	assert.Equal(t, 5, cfg.Order.CodeMaxAttempts)
	assert.Equal(t, 10000, cfg.Promotion.MaxItemsPerRequest)
	assert.Equal(t, 10, cfg.SearchHistory.Limit)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Pagination: &PaginationConfig{DefaultElementsPerPage: 25, MaxElementsPerPage: 50},
		Order:      &OrderConfig{CodeMaxAttempts: 8},
		Promotion:  &PromotionConfig{MaxItemsPerRequest: 500},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 25, cfg.Pagination.DefaultElementsPerPage)
	assert.Equal(t, 50, cfg.Pagination.MaxElementsPerPage)
	assert.Equal(t, 8, cfg.Order.CodeMaxAttempts)
	assert.Equal(t, 500, cfg.Promotion.MaxItemsPerRequest)
}

func TestApplyDefaults_RaisesMaxBelowDefault(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultElementsPerPage: 200, MaxElementsPerPage: 20}}

	applyDefaults(cfg)

	assert.Equal(t, 200, cfg.Pagination.MaxElementsPerPage)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "access-secret"
		cfg.SecretKey.Refresh = "refresh-secret"
		cfg.Env.Env = "develop"
		applyDefaults(cfg)

		return cfg
	}

	require.NoError(t, valid().validate())

	tests := map[string]func(*Config){
		"missing secret":   func(c *Config) { c.SecretKey.Refresh = "" },
		"shared secret":    func(c *Config) { c.SecretKey.Refresh = c.SecretKey.Access },
		"bcrypt cost":      func(c *Config) { c.Auth.BcryptCost = 40 },
		"pubsub provider":  func(c *Config) { c.PubSub = &PubSubConfig{Provider: "kafka"} },
		"unknown env name": func(c *Config) { c.Env.Env = "qa" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)

			assert.Error(t, cfg.validate())
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
