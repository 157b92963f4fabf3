package domain

// IntegrityDigest is a hex-encoded content digest bound to a canonical
// serialization of a ConfigSet. Any change to any connector field yields a
// different digest.
type IntegrityDigest string
