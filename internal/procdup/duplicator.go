package procdup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/google/uuid"
	"github.com/sonroyaalmerol/forkbranch/internal/syslog"
)

// Duplicator creates a second, independently scheduled copy of the running
// program. Duplicate is synchronous and never waits for the copy to finish.
type Duplicator interface {
	Duplicate(ctx context.Context) Result
}

// Reexec duplicates the process by starting the current executable again.
type Reexec struct {
	mu       sync.Mutex
	consumed bool

	exe    string
	exeErr error
	args   []string
	env    []string
	stdin  *os.File
	stdout *os.File
	stderr *os.File

	lookupMarker func() (string, bool)
	clearMarker  func()
}

var _ Duplicator = (*Reexec)(nil)

func NewReexec(opts ...Option) *Reexec {
	r := &Reexec{
		args:   os.Args[1:],
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookupMarker: func() (string, bool) {
			return os.LookupEnv(MarkerEnv)
		},
		clearMarker: func() {
			_ = os.Unsetenv(MarkerEnv)
		},
	}
	r.exe, r.exeErr = os.Executable()

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Duplicate returns ChildResult on the first call inside a duplicate and
// otherwise starts a new duplicate. Later calls inside a duplicate act as a
// parent, so a child may duplicate itself in turn.
func (r *Reexec) Duplicate(ctx context.Context) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.consumed {
		r.consumed = true
		if raw, ok := r.lookupMarker(); ok {
			r.clearMarker()
			m, err := parseMarker(raw)
			if err == nil {
				syslog.L.Debug().
					WithMessage("running as duplicate").
					WithFields(map[string]interface{}{
						"parent_pid": m.parentPID,
						"dup_id":     m.id,
					}).Write()
				return ChildResult(m.id)
			}
			syslog.L.Warn().
				WithMessage("ignoring malformed duplication marker").
				WithField("error", err.Error()).Write()
		}
	}

	if err := ctx.Err(); err != nil {
		return FailedResult(err)
	}
	if r.exeErr != nil {
		return FailedResult(fmt.Errorf("resolve executable: %w", r.exeErr))
	}

	env := r.env
	if env == nil {
		env = os.Environ()
	}
	m := marker{parentPID: os.Getpid(), id: uuid.NewString()}

	cmd := exec.Command(r.exe, r.args...)
	cmd.Env = withMarker(env, m)
	// Assigning a nil *os.File would produce a non-nil interface.
	if r.stdin != nil {
		cmd.Stdin = r.stdin
	}
	if r.stdout != nil {
		cmd.Stdout = r.stdout
	}
	if r.stderr != nil {
		cmd.Stderr = r.stderr
	}

	// Start returns only once exec has succeeded in the new process, so an
	// error here means no duplicate exists.
	if err := cmd.Start(); err != nil {
		return FailedResult(err)
	}
	pid := cmd.Process.Pid

	// Reaping is left to the OS once this process exits.
	if err := cmd.Process.Release(); err != nil {
		syslog.L.Warn().
			WithMessage("failed to release duplicate process handle").
			WithField("child_pid", pid).
			WithField("error", err.Error()).Write()
	}

	syslog.L.Debug().
		WithMessage("started duplicate").
		WithFields(map[string]interface{}{
			"child_pid": pid,
			"dup_id":    m.id,
			"exe":       r.exe,
		}).Write()

	return ParentResult(pid, m.id)
}
