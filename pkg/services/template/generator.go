// Package template emits secure-by-construction baseline connector configs.
package template

import (
	"fmt"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/audit"
)

// archetypeDefaults selects the pinned package, the credential flags that get
// environment-reference placeholders, and the capability baseline for each
// connector archetype.
type archetypeDefaults struct {
	pkg          string
	secretFlags  []string
	capabilities []string
}

var defaults = map[domain.Archetype]archetypeDefaults{
	domain.ArchetypeDatabase: {
		pkg:          "@connectors/database-server@1.4.2",
		secretFlags:  []string{"connection-string"},
		capabilities: []string{"list_tables", "execute_query", "describe_table"},
	},
	domain.ArchetypeAIModel: {
		pkg:          "@connectors/ai-model-server@2.1.0",
		secretFlags:  []string{"api-key"},
		capabilities: []string{"generate_text", "generate_image", "embed_text"},
	},
	domain.ArchetypeCloudProvider: {
		pkg:          "@connectors/cloud-server@0.9.3",
		secretFlags:  []string{"access-key", "secret-key"},
		capabilities: []string{"list_resources", "describe_resource", "get_resource"},
	},
	domain.ArchetypeGeneric: {
		pkg:          "@connectors/generic-server@1.0.1",
		secretFlags:  []string{"token"},
		capabilities: []string{"read", "list"},
	},
}

// Generate produces a baseline config for the archetype. Every credential flag
// is pre-wired to its conventional environment reference, the package version
// is pinned, and the capability list is minimal, so a generated template comes
// back clean from the credential scanner.
//
// An unrecognized archetype falls back to the generic defaults; an empty id is
// host misuse.
func Generate(id string, archetype domain.Archetype) (domain.ConnectorConfig, error) {
	if id == "" {
		return domain.ConnectorConfig{}, fmt.Errorf("%w: empty connector id", domain.ErrInvalidArgument)
	}

	def, ok := defaults[archetype]
	if !ok {
		def = defaults[domain.ArchetypeGeneric]
	}

	args := []string{"-y", def.pkg}
	for _, flag := range def.secretFlags {
		envVar := audit.EnvVarName(id, flag)
		args = append(args, audit.FlagMarker+flag, audit.EnvRefMarker+envVar+"}")
	}

	return domain.ConnectorConfig{
		ID:           id,
		Command:      "npx",
		Args:         args,
		Capabilities: append([]string(nil), def.capabilities...),
	}, nil
}
