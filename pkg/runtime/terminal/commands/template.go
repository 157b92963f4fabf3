package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/conn-audit/pkg/models/api"
	"github.com/de-tools/conn-audit/pkg/models/domain"
	"github.com/de-tools/conn-audit/pkg/services/template"
	"github.com/spf13/cobra"
)

type TemplateCmd struct {
	id        string
	archetype string
	output    io.Writer
}

func NewTemplateCmd(output io.Writer) *cobra.Command {
	tc := &TemplateCmd{output: output}

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a secure baseline connector configuration",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.id, "id", "", "Connector id for the generated config")
	cmd.Flags().StringVar(&tc.archetype, "archetype", string(domain.ArchetypeGeneric),
		"Connector archetype (database, ai-model, cloud-provider, generic)")

	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (tc *TemplateCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := template.Generate(tc.id, domain.Archetype(tc.archetype))
	if err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}

	encoded, err := json.MarshalIndent(map[string]api.Connector{
		cfg.ID: api.FromDomainConnector(cfg),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}

	fmt.Fprintln(tc.output, string(encoded))
	return nil
}
