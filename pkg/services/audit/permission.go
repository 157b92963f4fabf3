package audit

import (
	"fmt"
	"strings"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// WildcardCapability grants everything and is always flagged critical.
const WildcardCapability = "*"

// ScanPermissions flags over-broad or excessive capability grants. The three
// checks are independent and any subset may fire for one connector.
func ScanPermissions(cfg domain.ConnectorConfig, settings Settings) []domain.Issue {
	var issues []domain.Issue
	location := fmt.Sprintf("connectors.%s.capabilities", cfg.ID)

	var highRisk []string
	for _, capability := range cfg.Capabilities {
		for _, verb := range settings.HighRiskVerbs {
			if strings.Contains(capability, verb) {
				highRisk = append(highRisk, capability)
				break
			}
		}
	}
	if len(highRisk) > 0 {
		issues = append(issues, domain.Issue{
			Severity:       domain.SeverityWarning,
			Message:        fmt.Sprintf("high-risk capabilities granted: %s", strings.Join(highRisk, ", ")),
			Location:       location,
			Recommendation: "confirm the connector needs each of these operations",
		})
	}

	for _, capability := range cfg.Capabilities {
		if capability == WildcardCapability {
			issues = append(issues, domain.Issue{
				Severity:       domain.SeverityCritical,
				Message:        "wildcard capability grants unrestricted access",
				Location:       location,
				Recommendation: "replace the wildcard with an explicit capability list",
			})
			break
		}
	}

	if len(cfg.Capabilities) > settings.MaxCapabilities {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityInfo,
			Message: fmt.Sprintf("connector is granted %d capabilities (threshold %d)",
				len(cfg.Capabilities), settings.MaxCapabilities),
			Location:       location,
			Recommendation: "trim grants the connector does not use",
		})
	}

	return issues
}
