// Package integrity computes tamper-evidence digests over config sets.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

// canonicalConnector is the serialization shape digests are computed over.
// Connectors are ordered by id and fields keep a fixed order, so the digest
// only depends on content, never on map iteration order.
type canonicalConnector struct {
	ID           string   `json:"id"`
	Command      string   `json:"command"`
	Args         []string `json:"args"`
	Capabilities []string `json:"capabilities"`
}

// Digest returns the hex-encoded sha256 digest of the canonical serialization
// of the set.
func Digest(set domain.ConfigSet) domain.IntegrityDigest {
	canonical := make([]canonicalConnector, 0, len(set))
	for _, id := range set.IDs() {
		cfg := set[id]
		canonical = append(canonical, canonicalConnector{
			ID:           cfg.ID,
			Command:      cfg.Command,
			Args:         cfg.Args,
			Capabilities: cfg.Capabilities,
		})
	}

	// Marshalling a slice of flat structs cannot fail.
	encoded, _ := json.Marshal(canonical)
	sum := sha256.Sum256(encoded)
	return domain.IntegrityDigest(hex.EncodeToString(sum[:]))
}

// Verify recomputes the digest of the set and compares it with the supplied
// one.
func Verify(set domain.ConfigSet, digest domain.IntegrityDigest) bool {
	return Digest(set) == digest
}
