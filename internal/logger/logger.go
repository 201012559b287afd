// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger is the global logger instance. Nil until Init is called; the
	// helpers below are no-ops in that state.
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Dir is where tempo.log is written. Empty disables the file.
	Dir string
}

// LoadConfig reads TEMPO_DEBUG and TEMPO_LOG_DIR, defaulting the log
// directory to <user config dir>/tempo/logs.
func LoadConfig() Config {
	cfg := Config{}
	if v := os.Getenv("TEMPO_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	cfg.Dir = os.Getenv("TEMPO_LOG_DIR")
	if cfg.Dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			cfg.Dir = filepath.Join(base, "tempo", "logs")
		}
	}
	return cfg
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var writers []io.Writer

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "tempo.log"),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		writers = append(writers, os.Stderr)
	}

	var writer io.Writer = io.Discard
	if len(writers) > 0 {
		writer = io.MultiWriter(writers...)
	}

	Logger = New(writer, level, cfg.Debug)
	return nil
}

// New builds a logger with tempo's options. Exposed for tests and for
// callers that need a logger on a specific writer.
func New(w io.Writer, level log.Level, reportCaller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    reportCaller,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tempo",
	})
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
