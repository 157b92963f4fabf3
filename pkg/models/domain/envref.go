package domain

// EnvReference is one occurrence of a ${env:NAME} placeholder inside a
// connector argument.
type EnvReference struct {
	Variable    string
	Resolved    bool
	ConnectorID string
	// Placeholder is the raw token as it appears in the argument,
	// e.g. "${env:API_URL}".
	Placeholder string
}

type EnvValidationReport struct {
	Valid bool
	// Unresolved holds the distinct variable names that are not defined in
	// the environment, in sorted order.
	Unresolved []string
	// References lists every placeholder occurrence in detection order.
	References []EnvReference
}
