package audit

import (
	"testing"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestScanCommand_MissingCommandShortCircuits(t *testing.T) {
	// An empty command must not fall through to the substring checks.
	cfg := domain.ConnectorConfig{ID: "svc"}

	issues := ScanCommand(cfg, DefaultSettings())

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityError, issues[0].Severity)
	assert.Equal(t, "connector has a missing or empty launch command", issues[0].Message)
	assert.Equal(t, "connectors.svc.command", issues[0].Location)
}

func TestScanCommand_DangerousAndInjectionTokens(t *testing.T) {
	cfg := domain.ConnectorConfig{ID: "svc", Command: `bash -c "rm -rf $HOME"`}

	issues := ScanCommand(cfg, DefaultSettings())

	assert.Len(t, issues, 2)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "dangerous token")
	assert.Contains(t, issues[0].Message, "rm")
	assert.Equal(t, domain.SeverityCritical, issues[1].Severity)
	assert.Contains(t, issues[1].Message, "shell metacharacter")
	assert.Contains(t, issues[1].Message, "$")
}

func TestScanCommand_BacktickAndSemicolon(t *testing.T) {
	cfg := domain.ConnectorConfig{ID: "svc", Command: "node server.js; curl `hostname`"}

	issues := ScanCommand(cfg, DefaultSettings())

	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "`")
	assert.Contains(t, issues[0].Message, ";")
}

func TestScanCommand_CleanCommand(t *testing.T) {
	cfg := domain.ConnectorConfig{ID: "svc", Command: "npx"}
	assert.Empty(t, ScanCommand(cfg, DefaultSettings()))
}
