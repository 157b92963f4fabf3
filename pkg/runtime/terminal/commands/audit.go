package commands

import (
	"fmt"

	"github.com/de-tools/conn-audit/pkg/runtime/terminal/export"
	"github.com/de-tools/conn-audit/pkg/services/audit"
	"github.com/spf13/cobra"
)

type AuditCmd struct {
	input    configInput
	reporter *export.Reporter
}

func NewAuditCmd(reporter *export.Reporter, registryPath string) *cobra.Command {
	ac := &AuditCmd{reporter: reporter}
	ac.input.registryPath = registryPath

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a connector configuration for security issues",
		RunE:  ac.run,
	}
	ac.input.register(cmd)

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, args []string) error {
	store, err := ac.input.store()
	if err != nil {
		return err
	}
	set, err := store.Load()
	if err != nil {
		return err
	}
	settings, err := ac.input.settings()
	if err != nil {
		return err
	}

	report := audit.NewOrchestrator(settings).Audit(set)
	if err := ac.reporter.Handle(&report); err != nil {
		return err
	}

	if !report.Secure {
		return fmt.Errorf("configuration is not secure: %d issue(s) found", len(report.Issues))
	}
	return nil
}
