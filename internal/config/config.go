// Package config loads the evaluator's two numeric bounds: the maximum
// command count and the maximum stack-trace depth. Both default when no
// bounds file is supplied, and can be overridden by a small YAML
// document.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Default resource bounds for a single interpret() call.
const (
	DefaultMaxCommands   = 500000
	DefaultMaxStackDepth = 10000
)

// Bounds caps the evaluator's resource usage for one interpret() call.
type Bounds struct {
	MaxCommands   int `yaml:"maxCommands"`
	MaxStackDepth int `yaml:"maxStackDepth"`
}

// DefaultBounds returns the built-in resource-bound defaults.
func DefaultBounds() Bounds {
	return Bounds{MaxCommands: DefaultMaxCommands, MaxStackDepth: DefaultMaxStackDepth}
}

// Load reads Bounds from a YAML file at path. Fields absent from the
// document keep their built-in defaults rather than zeroing out.
func Load(path string) (Bounds, error) {
	b := DefaultBounds()
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("config: reading bounds file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("config: parsing bounds file: %w", err)
	}
	if b.MaxCommands <= 0 {
		b.MaxCommands = DefaultMaxCommands
	}
	if b.MaxStackDepth <= 0 {
		b.MaxStackDepth = DefaultMaxStackDepth
	}
	return b, nil
}
