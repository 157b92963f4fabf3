package domain

type FixType string

const (
	FixTypeCredential FixType = "credential"
	FixTypePermission FixType = "permission"
)

// FixRecord logs one change the remediator applied to a config set.
type FixRecord struct {
	Type     FixType
	Message  string
	Location string
}

// RemediationResult carries the hardened copy of a config set together with
// the log of applied fixes. The input set is never mutated.
type RemediationResult struct {
	Hardened ConfigSet
	Fixes    []FixRecord
}
