package audit

import (
	"fmt"
	"strings"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// ScanCommand flags dangerous or injection-shaped launch commands. A missing
// command is a structural error and short-circuits the remaining checks: there
// is nothing meaningful to inspect.
func ScanCommand(cfg domain.ConnectorConfig, settings Settings) []domain.Issue {
	location := fmt.Sprintf("connectors.%s.command", cfg.ID)

	if cfg.Command == "" {
		return []domain.Issue{{
			Severity:       domain.SeverityError,
			Message:        "connector has a missing or empty launch command",
			Location:       location,
			Recommendation: "set the command used to start the connector",
		}}
	}

	var issues []domain.Issue

	var dangerous []string
	for _, token := range settings.DangerousCommands {
		if strings.Contains(cfg.Command, token) {
			dangerous = append(dangerous, token)
		}
	}
	if len(dangerous) > 0 {
		issues = append(issues, domain.Issue{
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("launch command contains dangerous token(s): %s", strings.Join(dangerous, ", ")),
			Location:       location,
			Recommendation: "launch the connector binary directly instead of destructive or privileged commands",
		})
	}

	var injection []string
	for _, token := range settings.InjectionTokens {
		if strings.Contains(cfg.Command, token) {
			injection = append(injection, token)
		}
	}
	if len(injection) > 0 {
		issues = append(issues, domain.Issue{
			Severity:       domain.SeverityCritical,
			Message:        fmt.Sprintf("launch command contains shell metacharacter(s): %s", strings.Join(injection, " ")),
			Location:       location,
			Recommendation: "remove shell expansion and command chaining from the launch command",
		})
	}

	return issues
}
