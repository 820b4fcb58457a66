package procdup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MarkerEnv is set in the environment of a duplicate. Its value is
// "<parent pid>:<duplication id>".
const MarkerEnv = "FORKBRANCH_DUPLICATE"

type marker struct {
	parentPID int
	id        string
}

func (m marker) String() string {
	return strconv.Itoa(m.parentPID) + ":" + m.id
}

func parseMarker(raw string) (marker, error) {
	pidStr, id, ok := strings.Cut(raw, ":")
	if !ok {
		return marker{}, fmt.Errorf("malformed duplication marker %q", raw)
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil || pid <= 0 {
		return marker{}, fmt.Errorf("malformed parent pid in duplication marker %q", raw)
	}
	if _, err := uuid.Parse(id); err != nil {
		return marker{}, fmt.Errorf("malformed duplication id in marker %q: %w", raw, err)
	}
	return marker{parentPID: pid, id: id}, nil
}

// withMarker returns env without any existing marker entry, with m appended.
func withMarker(env []string, m marker) []string {
	prefix := MarkerEnv + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+m.String())
}
