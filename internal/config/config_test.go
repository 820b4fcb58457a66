package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"FORKBRANCH_LOG_LEVEL", "FORKBRANCH_SYSLOG"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.Syslog)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("FORKBRANCH_LOG_LEVEL", "debug")
		t.Setenv("FORKBRANCH_SYSLOG", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.Syslog)
	})

	t.Run("Invalid Bool", func(t *testing.T) {
		t.Setenv("FORKBRANCH_SYSLOG", "sometimes")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}
