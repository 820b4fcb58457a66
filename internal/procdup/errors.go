package procdup

import (
	"context"
	"errors"
	"fmt"
)

// Reason is a coarse classification of a DuplicationError cause.
type Reason int

const (
	ReasonOther Reason = iota
	ReasonResourceExhausted
	ReasonPermission
	ReasonCanceled
)

func (r Reason) String() string {
	switch r {
	case ReasonResourceExhausted:
		return "resource exhausted"
	case ReasonPermission:
		return "permission denied"
	case ReasonCanceled:
		return "canceled"
	default:
		return "other"
	}
}

// DuplicationError reports that the OS did not create the duplicate. Only the
// original process exists when it is returned.
type DuplicationError struct {
	Cause error
}

func (e *DuplicationError) Error() string {
	return fmt.Sprintf("process duplication failed (%s): %v", e.Reason(), e.Cause)
}

func (e *DuplicationError) Unwrap() error {
	return e.Cause
}

func (e *DuplicationError) Reason() Reason {
	if e.Cause == nil {
		return ReasonOther
	}
	if errors.Is(e.Cause, context.Canceled) || errors.Is(e.Cause, context.DeadlineExceeded) {
		return ReasonCanceled
	}
	return classifyErrno(e.Cause)
}
