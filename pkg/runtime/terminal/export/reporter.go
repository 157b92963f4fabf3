package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

type TableConfig struct {
	SeverityWidth int
	LocationWidth int
	MessageWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		SeverityWidth: 10,
		LocationWidth: 40,
		MessageWidth:  60,
	}
}

// Reporter renders audit reports as fixed-width text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.AuditReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(severity, location, message string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.SeverityWidth, severity,
				c.config.LocationWidth, location,
				c.config.MessageWidth, message)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.SeverityWidth+2),
				strings.Repeat("-", c.config.LocationWidth+2),
				strings.Repeat("-", c.config.MessageWidth+2))
		},
		"verdict": func(secure bool) string {
			if secure {
				return "SECURE"
			}
			return "INSECURE"
		},
	}

	tmpl := `
Audit result: {{verdict .Secure}} ({{len .Issues}} issue(s))
{{if .Issues}}
{{separator}}
{{formatRow "Severity" "Location" "Message"}}
{{separator}}
{{range .Issues}}{{formatRow (printf "%s" .Severity) .Location .Message}}
{{end}}{{separator}}
{{end}}{{range .Recommendations}}
{{.Title}}:
{{range .Steps}}  - {{.}}
{{end}}{{end}}`

	t, err := template.New("audit").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
