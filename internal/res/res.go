// Package res contains various resources embedded within xwin that are used
// elsewhere.
package res

import (
	_ "embed"
	"fmt"
)

// Profile file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yml"
)

// DefaultTOML contains the example profile in TOML.
//
//go:embed default.toml
var DefaultTOML []byte

// DefaultYAML contains the example profile in YAML.
//
//go:embed default.yml
var DefaultYAML []byte

// DefaultProfile returns the example profile in the given format.
func DefaultProfile(format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		return DefaultTOML, nil
	case FormatYAML, "yaml":
		return DefaultYAML, nil
	}
	return nil, fmt.Errorf("unknown profile format %q", format)
}
