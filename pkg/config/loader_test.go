package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	loader := NewLoader(WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "maxflow", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "dinic", cfg.Solver.DefaultAlgorithm)
	assert.Equal(t, 30*time.Second, cfg.Solver.Timeout)
	assert.Equal(t, int64(1)<<40, cfg.Solver.MaxCapacity)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: flowlab
log:
  level: debug
cache:
  backend: redis
  redis:
    host: cache.internal
    port: 6380
solver:
  default_algorithm: goldberg_tarjan
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loader := NewLoader(WithConfigPaths(path))
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "flowlab", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache.internal:6380", cfg.Cache.Redis.Addr())
	assert.Equal(t, "goldberg_tarjan", cfg.Solver.DefaultAlgorithm)
	// Не перекрытые файлом значения приходят из defaults
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644))

	t.Setenv("MAXFLOW_LOG__LEVEL", "error")
	t.Setenv("MAXFLOW_APP__ENVIRONMENT", "production")

	loader := NewLoader(WithConfigPaths(path))
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.App.IsProduction())
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("MAXFLOW_SOLVER__DEFAULT_ALGORITHM", "simplex")

	loader := NewLoader(WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))
	_, err := loader.Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(cfg *Config) {}, wantErr: false},
		{name: "bad_log_level", mutate: func(cfg *Config) { cfg.Log.Level = "verbose" }, wantErr: true},
		{name: "bad_backend", mutate: func(cfg *Config) { cfg.Cache.Backend = "memcached" }, wantErr: true},
		{name: "bad_metrics_port", mutate: func(cfg *Config) { cfg.Metrics.Enabled = true; cfg.Metrics.Port = -1 }, wantErr: true},
		{name: "redis_without_host", mutate: func(cfg *Config) { cfg.Cache.Backend = "redis"; cfg.Cache.Redis.Host = "" }, wantErr: true},
		{name: "zero_max_capacity", mutate: func(cfg *Config) { cfg.Solver.MaxCapacity = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))
			cfg, err := loader.Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
