// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is returned when a Format value is not recognized.
var ErrInvalidFormat = errors.New("invalid output format")

// Format is an encoding for displaying the configuration.
type Format string

// Validate returns an error if the Format is not recognized.
func (f Format) Validate() error {
	switch f {
	case FormatTOML, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected toml or yaml)", ErrInvalidFormat, string(f))
	}
}

// Encode renders cfg in the requested format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config as TOML: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode config as YAML: %w", err)
		}
	}
	return buf.Bytes(), nil
}
