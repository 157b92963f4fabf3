package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/remediation"
	"github.com/spf13/cobra"
)

// FixReporter renders an applied fix log.
type FixReporter interface {
	HandleFixes(result *domain.RemediationResult) error
}

type SecureCmd struct {
	input    configInput
	dryRun   bool
	reporter FixReporter
	output   io.Writer
}

func NewSecureCmd(reporter FixReporter, output io.Writer, registryPath string) *cobra.Command {
	sc := &SecureCmd{reporter: reporter, output: output}
	sc.input.registryPath = registryPath

	cmd := &cobra.Command{
		Use:   "secure",
		Short: "Rewrite a connector configuration into a hardened form",
		RunE:  sc.run,
	}
	sc.input.register(cmd)
	cmd.Flags().BoolVar(&sc.dryRun, "dry-run", false, "Report fixes without writing the config file")

	return cmd
}

func (sc *SecureCmd) run(cmd *cobra.Command, args []string) error {
	store, err := sc.input.store()
	if err != nil {
		return err
	}
	set, err := store.Load()
	if err != nil {
		return err
	}
	settings, err := sc.input.settings()
	if err != nil {
		return err
	}

	result, err := remediation.Secure(set, settings)
	if err != nil {
		return fmt.Errorf("remediation failed: %w", err)
	}

	if err := sc.reporter.HandleFixes(&result); err != nil {
		return err
	}

	if sc.dryRun || len(result.Fixes) == 0 {
		return nil
	}
	if err := store.Save(result.Hardened); err != nil {
		return fmt.Errorf("failed to persist hardened config: %w", err)
	}
	fmt.Fprintln(sc.output, "Hardened configuration written (previous version backed up).")
	return nil
}
