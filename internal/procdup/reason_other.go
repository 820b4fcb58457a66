//go:build !unix

package procdup

import (
	"errors"
	"os"
)

func classifyErrno(err error) Reason {
	if errors.Is(err, os.ErrPermission) {
		return ReasonPermission
	}
	return ReasonOther
}
