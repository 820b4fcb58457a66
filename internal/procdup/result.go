package procdup

import "fmt"

// Kind discriminates a Result.
type Kind int

const (
	KindUnknown Kind = iota
	KindChild
	KindParent
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindChild:
		return "child"
	case KindParent:
		return "parent"
	case KindFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Result is what one Duplicate call observes in one process. The zero value
// has KindUnknown and is never returned by a Duplicator.
type Result struct {
	kind     Kind
	childPID int
	dupID    string
	err      *DuplicationError
}

// ChildResult is observed by the newly created process.
func ChildResult(dupID string) Result {
	return Result{kind: KindChild, dupID: dupID}
}

// ParentResult is observed by the original process.
func ParentResult(childPID int, dupID string) Result {
	return Result{kind: KindParent, childPID: childPID, dupID: dupID}
}

// FailedResult is observed when no duplicate was created.
func FailedResult(cause error) Result {
	var dupErr *DuplicationError
	if de, ok := cause.(*DuplicationError); ok {
		dupErr = de
	} else {
		dupErr = &DuplicationError{Cause: cause}
	}
	return Result{kind: KindFailed, err: dupErr}
}

func (r Result) Kind() Kind { return r.kind }

// ChildPID is the pid of the duplicate. Zero unless Kind is KindParent.
func (r Result) ChildPID() int { return r.childPID }

// DuplicationID identifies the duplication on both sides. Empty for KindFailed.
func (r Result) DuplicationID() string { return r.dupID }

// Err returns a *DuplicationError for KindFailed and nil otherwise.
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

func (r Result) String() string {
	switch r.kind {
	case KindParent:
		return fmt.Sprintf("parent(child=%d)", r.childPID)
	case KindFailed:
		return fmt.Sprintf("failed(%v)", r.err)
	default:
		return r.kind.String()
	}
}
