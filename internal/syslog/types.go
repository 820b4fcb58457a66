package syslog

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

type Logger struct {
	mu    sync.RWMutex
	zlog  *zerolog.Logger
	level zerolog.Level
	out   io.Writer
	sys   *LogWriter
	noSys bool
}

// LogEntry represents a structured log entry.
type LogEntry struct {
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
	logger  *Logger                `json:"-"`
}
