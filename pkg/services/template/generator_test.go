package template

import (
	"regexp"
	"testing"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyIDIsInvalidArgument(t *testing.T) {
	_, err := Generate("", domain.ArchetypeDatabase)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerate_DatabaseArchetype(t *testing.T) {
	cfg, err := Generate("mydb", domain.ArchetypeDatabase)
	require.NoError(t, err)

	assert.Equal(t, "mydb", cfg.ID)
	assert.Equal(t, "npx", cfg.Command)
	assert.Contains(t, cfg.Args, "--connection-string")
	assert.Contains(t, cfg.Args, "${env:MYDB_CONNECTION_STRING}")
	assert.Equal(t, []string{"list_tables", "execute_query", "describe_table"}, cfg.Capabilities)
}

func TestGenerate_CloudProviderHasBothKeyPlaceholders(t *testing.T) {
	cfg, err := Generate("aws", domain.ArchetypeCloudProvider)
	require.NoError(t, err)

	assert.Contains(t, cfg.Args, "${env:AWS_ACCESS_KEY}")
	assert.Contains(t, cfg.Args, "${env:AWS_SECRET_KEY}")
	assert.Equal(t, []string{"list_resources", "describe_resource", "get_resource"}, cfg.Capabilities)
}

func TestGenerate_UnknownArchetypeFallsBackToGeneric(t *testing.T) {
	cfg, err := Generate("thing", domain.Archetype("mystery"))
	require.NoError(t, err)

	assert.Contains(t, cfg.Args, "--token")
	assert.Contains(t, cfg.Args, "${env:THING_TOKEN}")
	assert.Equal(t, []string{"read", "list"}, cfg.Capabilities)
}

func TestGenerate_PackageReferenceIsPinned(t *testing.T) {
	pinned := regexp.MustCompile(`@\d+\.\d+\.\d+$`)
	for _, archetype := range []domain.Archetype{
		domain.ArchetypeDatabase, domain.ArchetypeAIModel,
		domain.ArchetypeCloudProvider, domain.ArchetypeGeneric,
	} {
		cfg, err := Generate("svc", archetype)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(cfg.Args), 2)
		assert.Regexp(t, pinned, cfg.Args[1], "archetype %s", archetype)
	}
}

func TestGenerate_PassesCredentialScan(t *testing.T) {
	for _, archetype := range []domain.Archetype{
		domain.ArchetypeDatabase, domain.ArchetypeAIModel,
		domain.ArchetypeCloudProvider, domain.ArchetypeGeneric,
	} {
		cfg, err := Generate("sample", archetype)
		require.NoError(t, err)
		assert.Empty(t, audit.ScanCredentials(cfg, audit.DefaultSettings()), "archetype %s", archetype)
	}
}
