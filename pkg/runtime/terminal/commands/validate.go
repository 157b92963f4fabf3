package commands

import (
	"fmt"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/envref"
	"github.com/spf13/cobra"
)

// EnvReporter renders an env-reference validation report.
type EnvReporter interface {
	HandleEnvReport(report *domain.EnvValidationReport) error
}

type ValidateEnvCmd struct {
	input    configInput
	reporter EnvReporter
}

func NewValidateEnvCmd(reporter EnvReporter, registryPath string) *cobra.Command {
	vc := &ValidateEnvCmd{reporter: reporter}
	vc.input.registryPath = registryPath

	cmd := &cobra.Command{
		Use:   "validate-env",
		Short: "Check that ${env:NAME} references resolve in the current environment",
		RunE:  vc.run,
	}
	vc.input.register(cmd)

	return cmd
}

func (vc *ValidateEnvCmd) run(cmd *cobra.Command, args []string) error {
	store, err := vc.input.store()
	if err != nil {
		return err
	}
	set, err := store.Load()
	if err != nil {
		return err
	}

	report := envref.Validate(set, nil)
	if err := vc.reporter.HandleEnvReport(&report); err != nil {
		return err
	}

	if !report.Valid {
		return fmt.Errorf("%d environment variable(s) unresolved", len(report.Unresolved))
	}
	return nil
}
