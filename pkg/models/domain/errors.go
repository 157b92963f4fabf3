package domain

import "errors"

// ErrInvalidArgument marks host misuse of the core API (nil sets, empty ids).
// It is distinct from audit findings, which describe properties of the
// audited data and are reported inside an AuditReport instead.
var ErrInvalidArgument = errors.New("invalid argument")
