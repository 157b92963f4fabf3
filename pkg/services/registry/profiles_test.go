package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".connaudit")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProfileRegistry_GetProfiles(t *testing.T) {
	path := writeRegistry(t, `
[work]
config = /home/me/work/connectors.json

[personal]
config = /home/me/connectors.json
`)

	reg, err := NewProfileRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	names := []string{profiles[0].Name, profiles[1].Name}
	assert.Contains(t, names, "work")
	assert.Contains(t, names, "personal")
}

func TestProfileRegistry_GetProfile(t *testing.T) {
	path := writeRegistry(t, "[work]\nconfig = /tmp/connectors.json\n")

	reg, err := NewProfileRegistry(path)
	require.NoError(t, err)

	profile, err := reg.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/connectors.json", profile.Path)

	_, err = reg.GetProfile("missing")
	assert.ErrorContains(t, err, "not found")
}

func TestProfileRegistry_ProfileWithoutConfigPath(t *testing.T) {
	path := writeRegistry(t, "[broken]\nother = x\n")

	reg, err := NewProfileRegistry(path)
	require.NoError(t, err)

	_, err = reg.GetProfile("broken")
	assert.ErrorContains(t, err, "no config path")
}
