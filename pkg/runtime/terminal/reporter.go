package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// Reporter outputs remediation and env-validation results to the console in a
// plain text form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) HandleFixes(result *domain.RemediationResult) error {
	tmpl := `
Applied {{len .Fixes}} fix(es)
{{range .Fixes}}
- [{{.Type}}] {{.Message}}
  at {{.Location}}
{{end}}`
	t, err := template.New("fixes").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, result)
}

func (c *Reporter) HandleEnvReport(report *domain.EnvValidationReport) error {
	tmpl := `
Environment references: {{if .Valid}}all resolved{{else}}unresolved variables found{{end}}
{{range .References}}
- {{.Placeholder}} ({{.ConnectorID}}): {{if .Resolved}}resolved{{else}}MISSING{{end}}
{{end}}{{if .Unresolved}}
Export the following variables before launching:
{{range .Unresolved}}  {{.}}
{{end}}{{end}}`
	t, err := template.New("envreport").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, report)
}
