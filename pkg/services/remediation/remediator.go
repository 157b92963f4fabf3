// Package remediation rewrites a config set into a safer but behaviorally
// equivalent form, reusing the audit scanners' detection rules.
package remediation

import (
	"fmt"
	"strings"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/audit"
)

// Secure returns a hardened deep copy of the set plus a log of applied fixes.
// The input is never mutated.
//
// Only deterministic fixes are applied: hardcoded values paired with a
// sensitive flag are replaced with their synthesized environment reference,
// and the wildcard capability is removed. Shape-only secret matches are left
// alone because the correct variable name cannot be inferred without a flag,
// and dangerous launch commands are never edited since removing the command
// would break the connector.
//
// Secure is idempotent: running it on its own output applies no further fixes.
func Secure(set domain.ConfigSet, settings audit.Settings) (domain.RemediationResult, error) {
	if set == nil {
		return domain.RemediationResult{}, fmt.Errorf("%w: nil config set", domain.ErrInvalidArgument)
	}

	hardened := set.Clone()
	var fixes []domain.FixRecord

	for _, id := range hardened.IDs() {
		cfg := hardened[id]

		for i, arg := range cfg.Args {
			if !audit.IsFlag(arg) {
				continue
			}
			name := audit.FlagName(arg)
			if !audit.IsSensitiveFlag(name, settings) || i+1 >= len(cfg.Args) {
				continue
			}
			if strings.Contains(cfg.Args[i+1], audit.EnvRefMarker) {
				continue
			}
			envVar := audit.EnvVarName(cfg.ID, name)
			cfg.Args[i+1] = audit.EnvRefMarker + envVar + "}"
			fixes = append(fixes, domain.FixRecord{
				Type:     domain.FixTypeCredential,
				Message:  fmt.Sprintf("replaced hardcoded %s%s value with ${env:%s}", audit.FlagMarker, name, envVar),
				Location: fmt.Sprintf("connectors.%s.args[%d]", cfg.ID, i+1),
			})
		}

		if kept := withoutWildcard(cfg.Capabilities); len(kept) != len(cfg.Capabilities) {
			cfg.Capabilities = kept
			fixes = append(fixes, domain.FixRecord{
				Type:     domain.FixTypePermission,
				Message:  "removed wildcard capability",
				Location: fmt.Sprintf("connectors.%s.capabilities", cfg.ID),
			})
		}

		hardened[id] = cfg
	}

	return domain.RemediationResult{Hardened: hardened, Fixes: fixes}, nil
}

func withoutWildcard(capabilities []string) []string {
	if capabilities == nil {
		return nil
	}
	kept := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		if capability != audit.WildcardCapability {
			kept = append(kept, capability)
		}
	}
	return kept
}
