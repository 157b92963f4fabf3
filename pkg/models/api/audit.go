package api

import (
	"sort"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

type Connector struct {
	Command      string   `json:"command"`
	Args         []string `json:"args,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

type ConfigSet struct {
	Connectors map[string]Connector `json:"connectors"`
}

type Issue struct {
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	Location       string `json:"location,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type Recommendation struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type AuditReport struct {
	Secure          bool             `json:"secure"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}

type FixRecord struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

type RemediationResult struct {
	Hardened ConfigSet   `json:"hardened"`
	Fixes    []FixRecord `json:"fixes"`
}

type EnvReference struct {
	Variable    string `json:"variable"`
	Resolved    bool   `json:"resolved"`
	ConnectorID string `json:"connector_id"`
	Placeholder string `json:"placeholder"`
}

type EnvValidationReport struct {
	Valid      bool           `json:"valid"`
	Unresolved []string       `json:"unresolved,omitempty"`
	References []EnvReference `json:"references"`
}

type DigestResponse struct {
	Digest string `json:"digest"`
}

type VerifyRequest struct {
	Config ConfigSet `json:"config"`
	Digest string    `json:"digest"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func (cs ConfigSet) ToDomain() domain.ConfigSet {
	set := make(domain.ConfigSet, len(cs.Connectors))
	for id, c := range cs.Connectors {
		set[id] = domain.ConnectorConfig{
			ID:           id,
			Command:      c.Command,
			Args:         c.Args,
			Capabilities: c.Capabilities,
		}
	}
	return set
}

func FromDomainSet(set domain.ConfigSet) ConfigSet {
	out := ConfigSet{Connectors: make(map[string]Connector, len(set))}
	for id, cfg := range set {
		out.Connectors[id] = Connector{
			Command:      cfg.Command,
			Args:         cfg.Args,
			Capabilities: cfg.Capabilities,
		}
	}
	return out
}

func FromDomainReport(report domain.AuditReport) AuditReport {
	out := AuditReport{
		Secure:          report.Secure,
		Issues:          make([]Issue, 0, len(report.Issues)),
		Recommendations: make([]Recommendation, 0, len(report.Recommendations)),
	}
	for _, issue := range report.Issues {
		out.Issues = append(out.Issues, Issue{
			Severity:       string(issue.Severity),
			Message:        issue.Message,
			Location:       issue.Location,
			Recommendation: issue.Recommendation,
		})
	}
	for _, rec := range report.Recommendations {
		out.Recommendations = append(out.Recommendations, Recommendation{
			Title: rec.Title,
			Steps: rec.Steps,
		})
	}
	return out
}

func FromDomainRemediation(result domain.RemediationResult) RemediationResult {
	out := RemediationResult{
		Hardened: FromDomainSet(result.Hardened),
		Fixes:    make([]FixRecord, 0, len(result.Fixes)),
	}
	for _, fix := range result.Fixes {
		out.Fixes = append(out.Fixes, FixRecord{
			Type:     string(fix.Type),
			Message:  fix.Message,
			Location: fix.Location,
		})
	}
	return out
}

func FromDomainEnvReport(report domain.EnvValidationReport) EnvValidationReport {
	out := EnvValidationReport{
		Valid:      report.Valid,
		Unresolved: append([]string(nil), report.Unresolved...),
		References: make([]EnvReference, 0, len(report.References)),
	}
	sort.Strings(out.Unresolved)
	for _, ref := range report.References {
		out.References = append(out.References, EnvReference{
			Variable:    ref.Variable,
			Resolved:    ref.Resolved,
			ConnectorID: ref.ConnectorID,
			Placeholder: ref.Placeholder,
		})
	}
	return out
}

func FromDomainConnector(cfg domain.ConnectorConfig) Connector {
	return Connector{
		Command:      cfg.Command,
		Args:         cfg.Args,
		Capabilities: cfg.Capabilities,
	}
}
