package blueprint

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Blueprint describes a root rectangle and how to split it.
type Blueprint struct {
	// Name identifies the blueprint in output. Load defaults it to the file
	// name without extension.
	Name string `yaml:"name" json:"name"`

	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	// Split is applied to the root node; nil leaves the root a leaf.
	Split *Split `yaml:"split" json:"split"`
}

// Split describes one split of a node and the splits of its children.
type Split struct {
	// Target selects the child of the enclosing split this split applies
	// to: a bound name, "remaining", or a decimal child index. It is
	// ignored on the root split.
	Target string `yaml:"target" json:"target"`

	// Axis is "rows" or "cols".
	Axis string `yaml:"axis" json:"axis"`

	// Strict rejects constraints that leave remaining space.
	Strict bool `yaml:"strict" json:"strict"`

	// Constraints holds numbers and constraint tokens.
	Constraints []any `yaml:"constraints" json:"constraints"`

	// Names binds names to children by position; empty entries are skipped.
	Names []string `yaml:"names" json:"names"`

	// NameAt binds names to children by index.
	NameAt map[int]string `yaml:"name_at" json:"name_at"`

	// Splits are applied to this split's children.
	Splits []Split `yaml:"splits" json:"splits"`
}

// Format identifies a blueprint encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// FormatFromPath returns the Format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: .yaml, .yml, .json, .jsonc, .hcl)", ErrUnsupportedFormat, path)
	}
}
