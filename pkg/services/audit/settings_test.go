package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Contains(t, s.SensitiveFlagNames, "token")
	assert.Contains(t, s.HighRiskVerbs, "execute_sql")
	assert.Contains(t, s.DangerousCommands, "sudo")
	assert.Equal(t, 10, s.MaxCapabilities)
}

func TestLoadSettings_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_capabilities: 5\nsensitive_flags:\n  - passphrase\n"), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 5, s.MaxCapabilities)
	assert.Equal(t, []string{"passphrase"}, s.SensitiveFlagNames)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultSettings().DangerousCommands, s.DangerousCommands)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
