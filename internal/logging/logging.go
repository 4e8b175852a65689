// Package logging builds the structured loggers used by the CLI and the SSH
// server. File output is rotated by size; the terminal UI owns stdout, so
// interactive commands log to a file or stay quiet.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/looper/internal/config"
)

// Logger pairs a logger with the file it writes to, if any.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New creates a logger from cfg. When cfg.File is empty output goes to
// fallback; pass io.Discard to silence it.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := fallback
	var file *lumberjack.Logger
	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, err
		}
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out = file
	}
	if out == nil {
		out = os.Stderr
	}

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           level,
		Formatter:       formatter(cfg.Format),
	})

	return &Logger{Logger: l, file: file}, nil
}

// Close releases the log file. It is a no-op for stream output.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a log level. Empty means info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func formatter(name string) log.Formatter {
	if strings.EqualFold(name, "json") {
		return log.JSONFormatter
	}
	return log.TextFormatter
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return home + path[1:], nil
}
