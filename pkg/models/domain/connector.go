package domain

import "sort"

// ConnectorConfig describes how a single connector is launched: the command,
// its ordered arguments, and the capabilities it may exercise without prompting.
type ConnectorConfig struct {
	ID           string
	Command      string
	Args         []string
	Capabilities []string
}

// Clone returns a deep copy of the config. Scanners treat their input as
// read-only; remediation works on clones.
func (c ConnectorConfig) Clone() ConnectorConfig {
	out := c
	if c.Args != nil {
		out.Args = make([]string, len(c.Args))
		copy(out.Args, c.Args)
	}
	if c.Capabilities != nil {
		out.Capabilities = make([]string, len(c.Capabilities))
		copy(out.Capabilities, c.Capabilities)
	}
	return out
}

// ConfigSet maps connector id to its launch configuration.
type ConfigSet map[string]ConnectorConfig

// IDs returns the connector ids in stable (sorted) order. Reports are built
// in this order so identical sets always produce identical output.
func (cs ConfigSet) IDs() []string {
	ids := make([]string, 0, len(cs))
	for id := range cs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the set.
func (cs ConfigSet) Clone() ConfigSet {
	out := make(ConfigSet, len(cs))
	for id, cfg := range cs {
		out[id] = cfg.Clone()
	}
	return out
}
