// Package config owns the on-disk lifecycle of connector config files:
// parsing, validated ingestion, atomic writes and backup rotation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

const (
	defaultMaxBackups = 3
	backupTimeLayout  = "20060102T150405.000000000"
)

type fileConnector struct {
	Command      string   `json:"command"`
	Args         []string `json:"args,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// fileConfig is the wire shape of a connector config file. MCPServers is
// accepted as a read alias for the key used by common MCP clients; files are
// always written back under "connectors".
type fileConfig struct {
	Connectors map[string]fileConnector `json:"connectors,omitempty"`
	MCPServers map[string]fileConnector `json:"mcpServers,omitempty"`
}

// Store loads and persists one connector config file.
type Store struct {
	path       string
	maxBackups int
}

func NewStore(path string) *Store {
	return &Store{path: path, maxBackups: defaultMaxBackups}
}

// Load reads and validates the config file. Structural problems inside
// individual connectors (e.g. a missing command) are preserved for the
// auditor to report; only an unparseable file or an empty connector id is an
// error here.
func (s *Store) Load() (domain.ConfigSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	entries := fc.Connectors
	if entries == nil {
		entries = fc.MCPServers
	}

	set := make(domain.ConfigSet, len(entries))
	for id, entry := range entries {
		if id == "" {
			return nil, fmt.Errorf("config %s contains a connector with an empty id", s.path)
		}
		set[id] = domain.ConnectorConfig{
			ID:           id,
			Command:      entry.Command,
			Args:         entry.Args,
			Capabilities: entry.Capabilities,
		}
	}
	return set, nil
}

// Save writes the set back to disk. The previous file version is rotated into
// a timestamped backup first, and the new content lands via a temp file plus
// rename so a crash can never leave a half-written config behind.
func (s *Store) Save(set domain.ConfigSet) error {
	if set == nil {
		return fmt.Errorf("%w: nil config set", domain.ErrInvalidArgument)
	}

	fc := fileConfig{Connectors: make(map[string]fileConnector, len(set))}
	for id, cfg := range set {
		fc.Connectors[id] = fileConnector{
			Command:      cfg.Command,
			Args:         cfg.Args,
			Capabilities: cfg.Capabilities,
		}
	}

	encoded, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := s.backup(); err != nil {
		return err
	}
	return s.writeAtomic(encoded)
}

// Restore replaces the config file with its most recent backup.
func (s *Store) Restore() error {
	backups, err := s.listBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found for %s", s.path)
	}
	latest := backups[len(backups)-1]
	data, err := os.ReadFile(latest)
	if err != nil {
		return fmt.Errorf("failed to read backup %s: %w", latest, err)
	}
	return s.writeAtomic(data)
}

func (s *Store) backup() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config for backup: %w", err)
	}

	name := fmt.Sprintf("%s.bak-%s", s.path, time.Now().UTC().Format(backupTimeLayout))
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return s.pruneBackups()
}

func (s *Store) pruneBackups() error {
	backups, err := s.listBackups()
	if err != nil {
		return err
	}
	for len(backups) > s.maxBackups {
		if err := os.Remove(backups[0]); err != nil {
			return fmt.Errorf("failed to prune backup: %w", err)
		}
		backups = backups[1:]
	}
	return nil
}

// listBackups returns backup paths sorted oldest first. The timestamp format
// sorts lexically, so name order is age order.
func (s *Store) listBackups() ([]string, error) {
	matches, err := filepath.Glob(s.path + ".bak-*")
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}
