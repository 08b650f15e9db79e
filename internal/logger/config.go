package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig configures the logging subsystem.
type LogConfig struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, text
	Output string // file, stdout, both

	// rotation
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool

	LogPath   string
	AppFile   string
	AuditFile string
	ErrorFile string
}

// DefaultConfig returns the defaults for GO_ENV, overridden by LOG_* variables.
func DefaultConfig() *LogConfig {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	config := &LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "both",
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   true,
		LogPath:    "./logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
	}
	if env == "development" {
		config.Level = "debug"
		config.Format = "text"
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = strings.ToLower(output)
	}
	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_SIZE")); err == nil && v > 0 {
		config.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		config.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("LOG_MAX_AGE")); err == nil && v > 0 {
		config.MaxAge = v
	}
	if v, err := strconv.ParseBool(os.Getenv("LOG_COMPRESS")); err == nil {
		config.Compress = v
	}
	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		config.LogPath = logPath
	}

	return config
}
