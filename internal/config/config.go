// Package config loads the YAML topology files the babelsim CLI simulates,
// the same way the rest of the pack leans on gopkg.in/yaml.v3 for
// structured config rather than a bespoke flag-only setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Edge describes one bidirectional link between two nodes, identified by a
// small integer id shared by both endpoints.
type Edge struct {
	ID     int    `yaml:"id"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Metric uint16 `yaml:"metric"`
}

// Topology is the full simulated network: its node set, its edges, and how
// many ticks to run before reporting the converged route tables.
type Topology struct {
	Nodes []string `yaml:"nodes"`
	Edges []Edge   `yaml:"edges"`
	Ticks int      `yaml:"ticks"`
}

// Load reads and parses a topology file from disk.
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var top Topology
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if top.Ticks <= 0 {
		top.Ticks = 20
	}
	return &top, nil
}
