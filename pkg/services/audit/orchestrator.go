package audit

import (
	"strings"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// Orchestrator runs every scanner over a config set and aggregates the
// findings into a single report.
type Orchestrator struct {
	settings Settings
}

func NewOrchestrator(settings Settings) *Orchestrator {
	return &Orchestrator{settings: settings}
}

// Audit runs the credential, permission and command scanners over every
// connector. It fails closed: an absent or empty set produces an insecure
// report with a structural error issue rather than an error return.
//
// Connectors are visited in stable id order and the scanners run in a fixed
// order per connector, so identical input always yields an identical report.
func (o *Orchestrator) Audit(set domain.ConfigSet) domain.AuditReport {
	if len(set) == 0 {
		return domain.AuditReport{
			Secure: false,
			Issues: []domain.Issue{{
				Severity: domain.SeverityError,
				Message:  "invalid or empty configuration",
			}},
		}
	}

	var issues []domain.Issue
	for _, id := range set.IDs() {
		cfg := set[id]
		issues = append(issues, ScanCredentials(cfg, o.settings)...)
		issues = append(issues, ScanPermissions(cfg, o.settings)...)
		issues = append(issues, ScanCommand(cfg, o.settings)...)
	}

	return domain.AuditReport{
		Secure:          len(issues) == 0,
		Issues:          issues,
		Recommendations: synthesizeRecommendations(issues),
	}
}

// synthesizeRecommendations buckets issues into credential, permission and
// command classes and emits at most one recommendation per non-empty bucket,
// always in that order.
func synthesizeRecommendations(issues []domain.Issue) []domain.Recommendation {
	var credential, permission, command bool
	for _, issue := range issues {
		switch {
		case strings.Contains(issue.Message, "hardcoded"):
			credential = true
		case strings.Contains(issue.Location, ".capabilities"):
			permission = true
		case strings.Contains(issue.Location, ".command"):
			command = true
		}
	}

	var recs []domain.Recommendation
	if credential {
		recs = append(recs, domain.Recommendation{
			Title: "Move secrets to environment references",
			Steps: []string{
				"Replace hardcoded values with ${env:VAR} placeholders",
				"Export the referenced variables in the launch environment",
				"Rotate any credential that was committed in plain text",
			},
		})
	}
	if permission {
		recs = append(recs, domain.Recommendation{
			Title: "Apply least-privilege capabilities",
			Steps: []string{
				"Remove wildcard and unused capability grants",
				"Grant only the operations the connector actually needs",
				"Review high-risk capabilities with the connector owner",
			},
		})
	}
	if command {
		recs = append(recs, domain.Recommendation{
			Title: "Harden the launch command",
			Steps: []string{
				"Pin package versions instead of floating tags",
				"Avoid shell metacharacters in launch commands",
				"Launch binaries directly rather than through a shell wrapper",
			},
		})
	}
	return recs
}
