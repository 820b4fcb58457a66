package procdup

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("Zero Value", func(t *testing.T) {
		var r Result
		assert.Equal(t, KindUnknown, r.Kind())
		assert.NoError(t, r.Err())
	})

	t.Run("Child", func(t *testing.T) {
		r := ChildResult("id")
		assert.Equal(t, KindChild, r.Kind())
		assert.Zero(t, r.ChildPID())
		assert.Equal(t, "id", r.DuplicationID())
		assert.NoError(t, r.Err())
		assert.Equal(t, "child", r.String())
	})

	t.Run("Parent", func(t *testing.T) {
		r := ParentResult(99, "id")
		assert.Equal(t, KindParent, r.Kind())
		assert.Equal(t, 99, r.ChildPID())
		assert.NoError(t, r.Err())
		assert.Equal(t, "parent(child=99)", r.String())
	})

	t.Run("Failed", func(t *testing.T) {
		r := FailedResult(syscall.EAGAIN)
		assert.Equal(t, KindFailed, r.Kind())
		assert.Zero(t, r.ChildPID())
		assert.Empty(t, r.DuplicationID())

		var dupErr *DuplicationError
		require.True(t, errors.As(r.Err(), &dupErr))
		assert.Equal(t, ReasonResourceExhausted, dupErr.Reason())
	})

	t.Run("Failed Keeps DuplicationError", func(t *testing.T) {
		orig := &DuplicationError{Cause: syscall.EPERM}
		r := FailedResult(orig)
		assert.Same(t, orig, r.Err())
	})
}
