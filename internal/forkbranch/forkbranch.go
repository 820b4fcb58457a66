package forkbranch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sonroyaalmerol/forkbranch/internal/procdup"
	"github.com/sonroyaalmerol/forkbranch/internal/syslog"
)

const DefaultMessage = "Hello World!"

var (
	ErrAlreadyForked = errors.New("forkbranch: already forked")
	ErrUnknownResult = errors.New("forkbranch: unknown duplication result")
)

// State of a ForkBranch. Forked is terminal.
type State int32

const (
	NotForked State = iota
	Forked
)

func (s State) String() string {
	if s == Forked {
		return "forked"
	}
	return "not-forked"
}

// Outcome is the path this process took.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeChild
	OutcomeParent
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChild:
		return "child"
	case OutcomeParent:
		return "parent"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Supervisor is handed the child pid on the parent path. It is the place to
// reap or observe the child; ForkBranch does neither on its own.
type Supervisor interface {
	Adopt(ctx context.Context, pid int) error
}

type ForkBranch struct {
	dup        procdup.Duplicator
	out        io.Writer
	message    string
	supervisor Supervisor
	state      atomic.Int32
}

type Option func(*ForkBranch)

// WithOutput sets where the child path writes its greeting.
func WithOutput(w io.Writer) Option {
	return func(f *ForkBranch) {
		f.out = w
	}
}

func WithMessage(msg string) Option {
	return func(f *ForkBranch) {
		f.message = msg
	}
}

func WithSupervisor(s Supervisor) Option {
	return func(f *ForkBranch) {
		f.supervisor = s
	}
}

func New(dup procdup.Duplicator, opts ...Option) *ForkBranch {
	f := &ForkBranch{
		dup:     dup,
		out:     os.Stdout,
		message: DefaultMessage,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *ForkBranch) State() State {
	return State(f.state.Load())
}

// Execute duplicates the process exactly once and runs the path matching the
// observed result. It returns ErrAlreadyForked on every call after the first.
func (f *ForkBranch) Execute(ctx context.Context) (Outcome, error) {
	if !f.state.CompareAndSwap(int32(NotForked), int32(Forked)) {
		return OutcomeNone, ErrAlreadyForked
	}

	res := f.dup.Duplicate(ctx)

	switch res.Kind() {
	case procdup.KindChild:
		return OutcomeChild, f.runChild(res)
	case procdup.KindParent:
		return OutcomeParent, f.runParent(ctx, res)
	case procdup.KindFailed:
		err := res.Err()
		var dupErr *procdup.DuplicationError
		reason := procdup.ReasonOther
		if errors.As(err, &dupErr) {
			reason = dupErr.Reason()
		}
		syslog.L.Error(err).
			WithMessage("process duplication failed").
			WithFields(map[string]interface{}{
				"pid":    os.Getpid(),
				"reason": reason.String(),
			}).Write()
		return OutcomeFailed, err
	default:
		return OutcomeNone, fmt.Errorf("%w: %s", ErrUnknownResult, res.Kind())
	}
}

func (f *ForkBranch) runChild(res procdup.Result) error {
	syslog.L.Info().
		WithMessage("took branch").
		WithFields(map[string]interface{}{
			"branch": "child",
			"pid":    os.Getpid(),
			"dup_id": res.DuplicationID(),
		}).Write()

	if _, err := fmt.Fprintln(f.out, f.message); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}

func (f *ForkBranch) runParent(ctx context.Context, res procdup.Result) error {
	syslog.L.Info().
		WithMessage("took branch").
		WithFields(map[string]interface{}{
			"branch":    "parent",
			"pid":       os.Getpid(),
			"child_pid": res.ChildPID(),
			"dup_id":    res.DuplicationID(),
		}).Write()

	if f.supervisor == nil {
		return nil
	}
	if err := f.supervisor.Adopt(ctx, res.ChildPID()); err != nil {
		return fmt.Errorf("supervise child %d: %w", res.ChildPID(), err)
	}
	return nil
}

// ExitCode maps the result of Execute to a process exit status: 0 for either
// successful path, 1 for a duplication failure, 2 for anything else.
func ExitCode(outcome Outcome, err error) int {
	if err == nil {
		return 0
	}
	var dupErr *procdup.DuplicationError
	if outcome == OutcomeFailed || errors.As(err, &dupErr) {
		return 1
	}
	return 2
}
