package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

const (
	// FlagMarker introduces a long flag in a connector argument list.
	FlagMarker = "--"
	// EnvRefMarker opens an environment-reference placeholder. Values that
	// already carry one are never flagged as embedded secrets.
	EnvRefMarker = "${env:"
)

// IsFlag reports whether an argument introduces a flag name.
func IsFlag(arg string) bool {
	return strings.HasPrefix(arg, FlagMarker)
}

// FlagName returns the lower-cased flag name with the marker stripped.
func FlagName(arg string) string {
	return strings.ToLower(strings.TrimPrefix(arg, FlagMarker))
}

// IsSensitiveFlag reports whether a flag name looks credential-bearing.
func IsSensitiveFlag(name string, settings Settings) bool {
	for _, kw := range settings.SensitiveFlagNames {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// EnvVarName synthesizes the environment variable a secret should move to,
// following the <ID>_<FLAG> convention with hyphens mapped to underscores.
func EnvVarName(id, flag string) string {
	sanitize := func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	}
	return sanitize(id) + "_" + sanitize(flag)
}

// secretShapeRule pairs a value predicate with the label used in messages.
// The rules are applied in order and the first match wins, which keeps
// detection messages deterministic.
type secretShapeRule struct {
	label   string
	pattern *regexp.Regexp
}

var secretShapeRules = []secretShapeRule{
	{
		label:   "provider API key",
		pattern: regexp.MustCompile(`^(?:sk-|ghp_|gho_|ghs_|github_pat_|glpat-|xox[abps]-|AKIA)[A-Za-z0-9_-]{20,}$`),
	},
	{
		label:   "UUID credential",
		pattern: regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
	},
	{
		label:   "bearer token",
		pattern: regexp.MustCompile(`^Bearer\s+\S+$`),
	},
	{
		label:   "secret token",
		pattern: regexp.MustCompile(`^[A-Za-z0-9_-]{20,}$`),
	},
	{
		label:   "base64-encoded secret",
		pattern: regexp.MustCompile(`^[A-Za-z0-9+/]{40,}={0,2}$`),
	},
}

// ScanCredentials detects likely embedded secrets in a connector's argument
// list. Two independent detections run over the args:
//
//   - a sensitive flag (e.g. --token) immediately followed by a value that is
//     not an environment reference;
//   - any standalone argument whose shape matches one of the ordered secret
//     heuristics above.
//
// An argument consumed as a sensitive flag's value is not re-tested against
// the shape rules, so a single secret yields a single issue.
func ScanCredentials(cfg domain.ConnectorConfig, settings Settings) []domain.Issue {
	var issues []domain.Issue

	consumed := make(map[int]bool)
	for i, arg := range cfg.Args {
		if !IsFlag(arg) {
			continue
		}
		name := FlagName(arg)
		if !IsSensitiveFlag(name, settings) || i+1 >= len(cfg.Args) {
			continue
		}
		value := cfg.Args[i+1]
		consumed[i+1] = true
		if strings.Contains(value, EnvRefMarker) {
			continue
		}
		envVar := EnvVarName(cfg.ID, name)
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityCritical,
			Message:  fmt.Sprintf("hardcoded secret passed to %s%s", FlagMarker, name),
			Location: fmt.Sprintf("connectors.%s.args[%d]", cfg.ID, i+1),
			Recommendation: fmt.Sprintf("replace the value with %s%s} and export %s",
				EnvRefMarker, envVar, envVar),
		})
	}

	for i, arg := range cfg.Args {
		if IsFlag(arg) || consumed[i] || strings.Contains(arg, EnvRefMarker) {
			continue
		}
		for _, rule := range secretShapeRules {
			if !rule.pattern.MatchString(arg) {
				continue
			}
			envVar := EnvVarName(cfg.ID, "secret")
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityCritical,
				Message:  fmt.Sprintf("argument looks like a hardcoded %s", rule.label),
				Location: fmt.Sprintf("connectors.%s.args[%d]", cfg.ID, i),
				Recommendation: fmt.Sprintf("move the value to an environment reference such as %s%s}",
					EnvRefMarker, envVar),
			})
			break
		}
	}

	return issues
}
