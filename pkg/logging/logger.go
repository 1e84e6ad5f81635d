// Package logging builds the charm logger used across the app. While the TUI
// owns the terminal, log output goes to a rotating file only.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kerbaras/quotes/pkg/config"
)

// Logger wraps the charm logger together with the file it writes to.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New creates a logger writing to cfg.File (rotated by lumberjack) and to
// each of extra. With no file and no extra writers, output is discarded.
func New(cfg config.LogConfig, extra ...io.Writer) (*Logger, error) {
	writers := make([]io.Writer, 0, len(extra)+1)

	var rotating *lumberjack.Logger
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return nil, err
		}
		rotating = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		writers = append(writers, rotating)
	}
	writers = append(writers, extra...)

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	return &Logger{
		Logger: NewWithWriter(cfg.Level, w),
		file:   rotating,
	}, nil
}

// NewWithWriter returns a plain charm logger at level writing to w.
func NewWithWriter(level string, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          config.AppName,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel maps a config level to a charm level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
