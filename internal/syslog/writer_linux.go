//go:build linux

package syslog

import (
	"log/syslog"

	"github.com/rs/zerolog"
)

// LogWriter forwards zerolog output to syslog at the matching severity.
type LogWriter struct {
	logger *syslog.Writer
}

func (sw *LogWriter) Write(p []byte) (int, error) {
	return sw.WriteLevel(zerolog.InfoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (sw *LogWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	message := string(p)
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		err = sw.logger.Debug(message)
	case zerolog.WarnLevel:
		err = sw.logger.Warning(message)
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		err = sw.logger.Err(message)
	default:
		err = sw.logger.Info(message)
	}
	return len(p), err
}

func (sw *LogWriter) Close() error {
	return sw.logger.Close()
}
