package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.FailOpen)
	assert.Equal(t, "inference", cfg.Classifier.Provider)
	assert.Equal(t, 512, cfg.Classifier.MaxLength)
	assert.Equal(t, 32, cfg.Batch.MaxSize)
	assert.False(t, cfg.Telemetry.Kafka.Enabled)
	assert.Equal(t, 1000, cfg.WebSocket.MaxConnections)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PORT", "7000")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 6000
cache:
  ttl: 30m
  fail_open: false
classifier:
  provider: openai
  settings:
    api_key: sk-test
    model: omni-moderation-latest
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.FailOpen)
	assert.Equal(t, "openai", cfg.Classifier.Provider)
	assert.Equal(t, "sk-test", cfg.Classifier.Settings["api_key"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("redis:\n  host: from-file\n"), 0600))
	t.Setenv("REDIS_HOST", "from-env")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Redis.Host)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Server:     config.ServerConfig{Port: 5000},
			Cache:      config.CacheConfig{TTL: time.Hour},
			Classifier: config.ClassifierConfig{Provider: "inference"},
			Batch:      config.BatchConfig{MaxSize: 8},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "zero port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "zero ttl", mutate: func(c *config.Config) { c.Cache.TTL = 0 }, wantErr: true},
		{name: "no provider", mutate: func(c *config.Config) { c.Classifier.Provider = "" }, wantErr: true},
		{name: "zero batch", mutate: func(c *config.Config) { c.Batch.MaxSize = 0 }, wantErr: true},
		{
			name:    "kafka without host",
			mutate:  func(c *config.Config) { c.Telemetry.Kafka.Enabled = true },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_DefaultsConcurrency(t *testing.T) {
	cfg := &config.Config{
		Server:     config.ServerConfig{Port: 5000},
		Cache:      config.CacheConfig{TTL: time.Hour},
		Classifier: config.ClassifierConfig{Provider: "inference"},
		Batch:      config.BatchConfig{MaxSize: 8},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultBatchConcurrency, cfg.Batch.Concurrency)
}
