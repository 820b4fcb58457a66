package procdup

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarker(t *testing.T) {
	id := uuid.NewString()

	m, err := parseMarker("1234:" + id)
	require.NoError(t, err)
	assert.Equal(t, 1234, m.parentPID)
	assert.Equal(t, id, m.id)
	assert.Equal(t, "1234:"+id, m.String())

	for name, raw := range map[string]string{
		"Empty":        "",
		"No Separator": "1234",
		"Bad Pid":      "abc:" + id,
		"Zero Pid":     "0:" + id,
		"Bad Id":       "1234:not-a-uuid",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseMarker(raw)
			assert.Error(t, err)
		})
	}
}

func TestWithMarker(t *testing.T) {
	m := marker{parentPID: 7, id: uuid.NewString()}
	env := []string{"A=1", MarkerEnv + "=stale", "B=2"}

	out := withMarker(env, m)

	var markers []string
	for _, kv := range out {
		if strings.HasPrefix(kv, MarkerEnv+"=") {
			markers = append(markers, kv)
		}
	}
	require.Len(t, markers, 1)
	assert.Equal(t, MarkerEnv+"="+m.String(), markers[0])
	assert.Contains(t, out, "A=1")
	assert.Contains(t, out, "B=2")
	assert.Len(t, env, 3, "input slice must not be modified")
}
