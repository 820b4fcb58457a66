package syslog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Global logger instance.
var L *Logger

func init() {
	L = &Logger{
		level: zerolog.InfoLevel,
		out:   os.Stderr,
		sys:   dialSyslog(),
	}
	L.rebuild()
}

// rebuild must be called with mu held for writing (or before L is shared).
func (l *Logger) rebuild() {
	var w io.Writer = zerolog.ConsoleWriter{
		Out:        l.out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	if l.sys != nil && !l.noSys {
		w = zerolog.MultiLevelWriter(w, l.sys)
	}

	logger := zerolog.New(w).
		Level(l.level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()
	l.zlog = &logger
}

// Configure applies the level name ("debug", "info", "warn", "error") and
// toggles forwarding to the system log.
func (l *Logger) Configure(level string, useSyslog bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
	l.noSys = !useSyslog
	l.rebuild()
	return nil
}

// SetOutput redirects console output. Used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// Close releases the system log connection, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sys == nil {
		return nil
	}
	err := l.sys.Close()
	l.sys = nil
	l.rebuild()
	return err
}

// Error creates a new error-level LogEntry.
func (l *Logger) Error(err error) *LogEntry {
	return &LogEntry{
		Level:  "error",
		Err:    err,
		Fields: make(map[string]interface{}),
		logger: l,
	}
}

// Warn creates a new warning-level LogEntry.
func (l *Logger) Warn() *LogEntry {
	return &LogEntry{
		Level:  "warn",
		Fields: make(map[string]interface{}),
		logger: l,
	}
}

// Info creates a new info-level LogEntry.
func (l *Logger) Info() *LogEntry {
	return &LogEntry{
		Level:  "info",
		Fields: make(map[string]interface{}),
		logger: l,
	}
}

// Debug creates a new debug-level LogEntry.
func (l *Logger) Debug() *LogEntry {
	return &LogEntry{
		Level:  "debug",
		Fields: make(map[string]interface{}),
		logger: l,
	}
}

// WithMessage sets the log message.
func (e *LogEntry) WithMessage(msg string) *LogEntry {
	e.Message = msg
	return e
}

// WithField adds one key-value pair to the LogEntry.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	e.Fields[key] = value
	return e
}

// WithFields adds multiple key-value pairs to the LogEntry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// Write finalizes the LogEntry and hands it to zerolog.
func (e *LogEntry) Write() {
	e.logger.mu.RLock()
	defer e.logger.mu.RUnlock()

	var event *zerolog.Event
	switch e.Level {
	case "debug":
		event = e.logger.zlog.Debug()
	case "warn":
		event = e.logger.zlog.Warn()
	case "error":
		event = e.logger.zlog.Error()
	default:
		event = e.logger.zlog.Info()
	}
	if e.Err != nil {
		event = event.Err(e.Err)
	}
	event.Fields(e.Fields).Msg(e.Message)
}
