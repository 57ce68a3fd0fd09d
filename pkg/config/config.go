// pkg/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config - главная структура конфигурации
type Config struct {
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Tracing  TracingConfig  `koanf:"tracing"`
	Cache    CacheConfig    `koanf:"cache"`
	Database DatabaseConfig `koanf:"database"`
	Solver   SolverConfig   `koanf:"solver"`
	Report   ReportConfig   `koanf:"report"`
}

// AppConfig - общие настройки приложения
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
	Debug       bool   `koanf:"debug"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`   // путь к файлу логов
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"` // количество бэкапов
	MaxAge     int    `koanf:"max_age"`     // дней
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig - настройки Prometheus метрик
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// TracingConfig - настройки OpenTelemetry
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// CacheConfig - настройки кэша результатов
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Backend    string        `koanf:"backend"` // memory, redis
	DefaultTTL time.Duration `koanf:"default_ttl"`
	Redis      RedisConfig   `koanf:"redis"`
	Memory     MemoryConfig  `koanf:"memory"`
}

// RedisConfig - настройки Redis
type RedisConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db"`
	PoolSize     int           `koanf:"pool_size"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// MemoryConfig - настройки in-memory кэша
type MemoryConfig struct {
	MaxEntries      int           `koanf:"max_entries"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// DatabaseConfig - настройки PostgreSQL для истории вычислений
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

// SolverConfig - настройки движка максимального потока
type SolverConfig struct {
	DefaultAlgorithm string        `koanf:"default_algorithm"` // dinic, goldberg_tarjan
	Timeout          time.Duration `koanf:"timeout"`
	MaxCapacity      int64         `koanf:"max_capacity"`
}

// ReportConfig - настройки генерации отчётов
type ReportConfig struct {
	OutputDir  string `koanf:"output_dir"`
	SheetName  string `koanf:"sheet_name"`
	MaxRows    int    `koanf:"max_rows"`
	DateFormat string `koanf:"date_format"`
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errs []string

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}

	switch c.Cache.Backend {
	case "", "memory", "redis":
	default:
		errs = append(errs, fmt.Sprintf("cache.backend: unknown backend %q", c.Cache.Backend))
	}

	switch c.Solver.DefaultAlgorithm {
	case "", "dinic", "goldberg_tarjan":
	default:
		errs = append(errs, fmt.Sprintf("solver.default_algorithm: unknown algorithm %q", c.Solver.DefaultAlgorithm))
	}

	if c.Solver.MaxCapacity < 1 {
		errs = append(errs, "solver.max_capacity: must be >= 1")
	}

	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		errs = append(errs, fmt.Sprintf("metrics.port: invalid port %d", c.Metrics.Port))
	}

	if c.Cache.Backend == "redis" && c.Cache.Redis.Host == "" {
		errs = append(errs, "cache.redis.host: required for redis backend")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr возвращает адрес Redis в формате host:port
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsProduction проверяет, production ли окружение
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}
