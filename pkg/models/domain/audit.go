package domain

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Issue is a single finding produced by one of the scanners.
type Issue struct {
	Severity Severity
	Message  string
	// Location is a dotted path into the config set,
	// e.g. "connectors.github.args[3]".
	Location string
	// Recommendation is an optional per-issue hint, typically naming the
	// environment variable a hardcoded value should move to.
	Recommendation string
}

// Recommendation is a synthesized remediation guide covering a whole
// class of issues (credential, permission or command).
type Recommendation struct {
	Title string
	Steps []string
}

type AuditReport struct {
	Secure bool
	// Issues appear in detection order: connectors in stable id order,
	// credential then permission then command findings per connector.
	Issues []Issue
	// Recommendations appear in bucket order: credential, permission, command.
	Recommendations []Recommendation
}
