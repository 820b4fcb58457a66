//go:build unix

package procdup

import (
	"errors"

	"golang.org/x/sys/unix"
)

func classifyErrno(err error) Reason {
	switch {
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.ENOMEM):
		return ReasonResourceExhausted
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		return ReasonPermission
	default:
		return ReasonOther
	}
}
