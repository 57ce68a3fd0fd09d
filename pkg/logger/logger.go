// Package logger настраивает глобальный slog-логгер движка максимального
// потока и даёт помощники для сквозных атрибутов вычислений.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = slog.Default()

// Config конфигурация логгера
type Config struct {
	Level      string
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init инициализирует логгер с форматом и выводом по умолчанию
func Init(level string) {
	InitWithConfig(Config{Level: level, Format: "json", Output: "stdout"})
}

// InitWithConfig инициализирует логгер с полной конфигурацией.
// Все записи несут атрибут subsystem=maxflow, чтобы встраивающие
// приложения могли отфильтровать вывод движка
func InitWithConfig(cfg Config) {
	lvl, ok := levels[cfg.Level]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	writer := newWriter(cfg)

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	Log = slog.New(handler).With("subsystem", "maxflow")
}

// newWriter выбирает приёмник записей по конфигурации
func newWriter(cfg Config) io.Writer {
	switch cfg.Output {
	case "stderr":
		return os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/maxflow.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return os.Stdout
		}
		// Ротация через lumberjack
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		return os.Stdout
	}
}

// WithComponent добавляет имя компонента движка
func WithComponent(component string) *slog.Logger {
	return Log.With("component", component)
}

// WithComputation добавляет контекст одного вычисления: алгоритм и
// размер графа
func WithComputation(algorithm string, vertices, edges int) *slog.Logger {
	return Log.With(
		"algorithm", algorithm,
		"vertices", vertices,
		"edges", edges,
	)
}

// WithNetwork добавляет контекст сети: источник и сток
func WithNetwork(source, sink int64) *slog.Logger {
	return Log.With("source", source, "sink", sink)
}
