// pkg/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "MAXFLOW_"
	configEnvVar = "CONFIG_PATH"
)

// Loader загружает конфигурацию из разных источников
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// NewLoader создаёт новый загрузчик конфигурации
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"config.yaml",
			"config/config.yaml",
			"/etc/maxflow/config.yaml",
		},
		envPrefix: envPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoaderOption - опция для конфигурации загрузчика
type LoaderOption func(*Loader)

// WithConfigPaths устанавливает пути поиска конфигурации
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix устанавливает префикс переменных окружения
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load загружает конфигурацию с приоритетом:
// 1. Defaults (самый низкий)
// 2. Config file (yaml)
// 3. Environment variables (самый высокий)
func (l *Loader) Load() (*Config, error) {
	// 1. Значения по умолчанию
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Файл конфигурации (не обязателен)
	if err := l.loadConfigFile(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	// 3. Переменные окружения
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults загружает значения по умолчанию
func (l *Loader) loadDefaults() error {
	return l.k.Load(confmap.Provider(defaults(), "."), nil)
}

// loadConfigFile загружает первый найденный файл конфигурации
func (l *Loader) loadConfigFile() error {
	// Явный путь через CONFIG_PATH имеет приоритет
	if p := os.Getenv(l.envPrefix + configEnvVar); p != "" {
		return l.k.Load(file.Provider(p), yaml.Parser())
	}

	for _, p := range l.configPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		return l.k.Load(file.Provider(p), yaml.Parser())
	}

	return fmt.Errorf("no config file found in %v", l.configPaths)
}

// loadEnv загружает переменные окружения вида MAXFLOW_LOG__LEVEL=debug
func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
}

// defaults возвращает значения конфигурации по умолчанию
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "maxflow",
		"app.version":     "dev",
		"app.environment": "development",
		"app.debug":       false,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     28,
		"log.compress":    true,

		"metrics.enabled":   false,
		"metrics.port":      9090,
		"metrics.path":      "/metrics",
		"metrics.namespace": "maxflow",
		"metrics.subsystem": "solver",

		"tracing.enabled":      false,
		"tracing.endpoint":     "localhost:4317",
		"tracing.service_name": "maxflow",
		"tracing.sample_rate":  1.0,

		"cache.enabled":                 false,
		"cache.backend":                 "memory",
		"cache.default_ttl":             10 * time.Minute,
		"cache.memory.max_entries":      10000,
		"cache.memory.cleanup_interval": time.Minute,
		"cache.redis.host":              "localhost",
		"cache.redis.port":              6379,
		"cache.redis.db":                0,
		"cache.redis.pool_size":         10,
		"cache.redis.dial_timeout":      5 * time.Second,
		"cache.redis.read_timeout":      3 * time.Second,
		"cache.redis.write_timeout":     3 * time.Second,

		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "maxflow",
		"database.database":           "maxflow",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  time.Hour,
		"database.conn_max_idle_time": 15 * time.Minute,

		"solver.default_algorithm": "dinic",
		"solver.timeout":           30 * time.Second,
		"solver.max_capacity":      int64(1) << 40,

		"report.output_dir":  "reports",
		"report.sheet_name":  "Flow",
		"report.max_rows":    100000,
		"report.date_format": "2006-01-02 15:04:05",
	}
}
