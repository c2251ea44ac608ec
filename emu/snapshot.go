package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is a serializable image of the architectural state. It backs
// the externally-loaded-state lifecycle: a core starts zeroed or
// restored from a snapshot, and can be captured back at any
// instruction boundary.
type Snapshot struct {
	R  [32]uint32 `json:"r"`
	IP uint32     `json:"ip"`
	AC uint32     `json:"ac"`
	PC uint32     `json:"pc"`
	TC uint32     `json:"tc"`
}

// Snapshot captures the current architectural state.
func (c *Core) Snapshot() *Snapshot {
	return &Snapshot{
		R:  c.R,
		IP: c.IP,
		AC: c.AC,
		PC: c.PC,
		TC: c.TC,
	}
}

// Restore overwrites the architectural state from a snapshot.
func (c *Core) Restore(s *Snapshot) {
	c.R = s.R
	c.IP = s.IP
	c.AC = s.AC
	c.PC = s.PC
	c.TC = s.TC
}

// LoadSnapshot reads a JSON snapshot from a file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	s := &Snapshot{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return s, nil
}

// Save writes the snapshot as indented JSON to a file.
func (s *Snapshot) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
