package audit

import (
	"fmt"
	"testing"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestScanPermissions_HighRiskVerbs(t *testing.T) {
	cfg := domain.ConnectorConfig{
		ID:           "db",
		Command:      "server",
		Capabilities: []string{"list_tables", "execute_sql", "delete_rows"},
	}

	issues := ScanPermissions(cfg, DefaultSettings())

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "high-risk capabilities granted: execute_sql, delete_rows", issues[0].Message)
	assert.Equal(t, "connectors.db.capabilities", issues[0].Location)
}

func TestScanPermissions_Wildcard(t *testing.T) {
	cfg := domain.ConnectorConfig{
		ID:           "svc",
		Command:      "server",
		Capabilities: []string{"*"},
	}

	issues := ScanPermissions(cfg, DefaultSettings())

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Equal(t, "wildcard capability grants unrestricted access", issues[0].Message)
}

func TestScanPermissions_ExcessiveCount(t *testing.T) {
	var caps []string
	for i := 0; i < 11; i++ {
		caps = append(caps, fmt.Sprintf("read_%d", i))
	}
	cfg := domain.ConnectorConfig{ID: "svc", Command: "server", Capabilities: caps}

	issues := ScanPermissions(cfg, DefaultSettings())

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "11 capabilities")
}

func TestScanPermissions_ChecksAreIndependent(t *testing.T) {
	caps := []string{"*", "admin_panel"}
	for i := 0; i < 9; i++ {
		caps = append(caps, fmt.Sprintf("read_%d", i))
	}
	cfg := domain.ConnectorConfig{ID: "svc", Command: "server", Capabilities: caps}

	issues := ScanPermissions(cfg, DefaultSettings())

	assert.Len(t, issues, 3)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Equal(t, domain.SeverityCritical, issues[1].Severity)
	assert.Equal(t, domain.SeverityInfo, issues[2].Severity)
}

func TestScanPermissions_ReadOnlyGrantsClean(t *testing.T) {
	cfg := domain.ConnectorConfig{
		ID:           "svc",
		Command:      "server",
		Capabilities: []string{"read", "list"},
	}
	assert.Empty(t, ScanPermissions(cfg, DefaultSettings()))
}
