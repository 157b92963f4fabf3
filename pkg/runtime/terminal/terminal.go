package terminal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/conn-audit/pkg/runtime/terminal/commands"
	"github.com/de-tools/conn-audit/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

const registryFileName = ".connaudit"

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	plain    *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// RegistryPath overrides the profile registry location
	// (default $HOME/.connaudit).
	RegistryPath string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.RegistryPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			opts.RegistryPath = filepath.Join(home, registryFileName)
		}
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
		plain:    NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caudit",
		Short: "Connector configuration security auditor",
	}

	cmd.AddCommand(commands.NewAuditCmd(cli.reporter, opts.RegistryPath))
	cmd.AddCommand(commands.NewSecureCmd(cli.plain, opts.Output, opts.RegistryPath))
	cmd.AddCommand(commands.NewValidateEnvCmd(cli.plain, opts.RegistryPath))
	cmd.AddCommand(commands.NewTemplateCmd(opts.Output))
	cmd.AddCommand(commands.NewDigestCmd(opts.Output, opts.RegistryPath))

	return cmd
}
