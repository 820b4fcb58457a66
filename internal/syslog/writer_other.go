//go:build !linux

package syslog

import "github.com/rs/zerolog"

// LogWriter is a no-op on platforms without log/syslog.
type LogWriter struct{}

func (sw *LogWriter) Write(p []byte) (int, error) { return len(p), nil }

func (sw *LogWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) { return len(p), nil }

func (sw *LogWriter) Close() error { return nil }
