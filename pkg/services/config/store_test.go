package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestStore_LoadConnectorsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.json")
	writeFile(t, path, `{
	  "connectors": {
	    "github": {
	      "command": "npx",
	      "args": ["-y", "@github/mcp-server"],
	      "capabilities": ["read"]
	    }
	  }
	}`)

	set, err := NewStore(path).Load()
	require.NoError(t, err)

	require.Len(t, set, 1)
	assert.Equal(t, "github", set["github"].ID)
	assert.Equal(t, "npx", set["github"].Command)
	assert.Equal(t, []string{"-y", "@github/mcp-server"}, set["github"].Args)
}

func TestStore_LoadMCPServersAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	writeFile(t, path, `{"mcpServers": {"files": {"command": "server"}}}`)

	set, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "server", set["files"].Command)
}

func TestStore_LoadRejectsEmptyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, `{"connectors": {"": {"command": "x"}}}`)

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "empty id")
}

func TestStore_LoadKeepsMissingCommandForAudit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	writeFile(t, path, `{"connectors": {"svc": {"args": ["run"]}}}`)

	set, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "", set["svc"].Command)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.json")
	store := NewStore(path)

	set := domain.ConfigSet{
		"github": {
			ID:           "github",
			Command:      "npx",
			Args:         []string{"--token", "${env:GITHUB_TOKEN}"},
			Capabilities: []string{"read"},
		},
	}
	require.NoError(t, store.Save(set))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestStore_SaveNilSetInvalid(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, store.Save(nil), domain.ErrInvalidArgument)
}

func TestStore_SaveRotatesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "connectors.json")
	store := NewStore(path)

	for i := 0; i < 6; i++ {
		require.NoError(t, store.Save(domain.ConfigSet{
			"svc": {ID: "svc", Command: "run"},
		}))
	}

	backups, err := filepath.Glob(path + ".bak-*")
	require.NoError(t, err)
	assert.Len(t, backups, defaultMaxBackups)
}

func TestStore_RestoreBringsBackPreviousVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectors.json")
	store := NewStore(path)

	first := domain.ConfigSet{"svc": {ID: "svc", Command: "one"}}
	second := domain.ConfigSet{"svc": {ID: "svc", Command: "two"}}
	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	require.NoError(t, store.Restore())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "one", loaded["svc"].Command)
}

func TestStore_RestoreWithoutBackupsFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, store.Restore(), "no backups")
}
