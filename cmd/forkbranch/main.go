package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sonroyaalmerol/forkbranch/internal/config"
	"github.com/sonroyaalmerol/forkbranch/internal/forkbranch"
	"github.com/sonroyaalmerol/forkbranch/internal/procdup"
	"github.com/sonroyaalmerol/forkbranch/internal/syslog"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 2
	}
	if err := syslog.L.Configure(cfg.LogLevel, cfg.Syslog); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 2
	}
	defer syslog.L.Close()

	fb := forkbranch.New(procdup.NewReexec())
	outcome, err := fb.Execute(context.Background())
	if err != nil && outcome != forkbranch.OutcomeFailed {
		syslog.L.Error(err).
			WithMessage("fork-branch did not complete").
			WithField("outcome", outcome.String()).Write()
	}
	return forkbranch.ExitCode(outcome, err)
}
