package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/integrity"
	"github.com/spf13/cobra"
)

type DigestCmd struct {
	input  configInput
	verify string
	output io.Writer
}

func NewDigestCmd(output io.Writer, registryPath string) *cobra.Command {
	dc := &DigestCmd{output: output}
	dc.input.registryPath = registryPath

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute or verify the integrity digest of a connector configuration",
		RunE:  dc.run,
	}
	dc.input.register(cmd)
	cmd.Flags().StringVar(&dc.verify, "verify", "", "Previously recorded digest to verify against")

	return cmd
}

func (dc *DigestCmd) run(cmd *cobra.Command, args []string) error {
	store, err := dc.input.store()
	if err != nil {
		return err
	}
	set, err := store.Load()
	if err != nil {
		return err
	}

	if dc.verify != "" {
		if !integrity.Verify(set, domain.IntegrityDigest(dc.verify)) {
			return fmt.Errorf("digest mismatch: configuration has been modified")
		}
		fmt.Fprintln(dc.output, "Digest verified: configuration unchanged.")
		return nil
	}

	fmt.Fprintln(dc.output, string(integrity.Digest(set)))
	return nil
}
