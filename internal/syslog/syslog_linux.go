//go:build linux

package syslog

import "log/syslog"

func dialSyslog() *LogWriter {
	sysWriter, err := syslog.New(syslog.LOG_ERR|syslog.LOG_LOCAL7, "forkbranch")
	if err != nil {
		return nil
	}
	return &LogWriter{logger: sysWriter}
}
