// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// Overrides take precedence over environment variables and defaults.
	// Keys are the Key* constants; the CLI fills it from flags the user set.
	Overrides map[string]any
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type envProvider struct{}

// NewProvider creates a configuration provider backed by the process environment.
func NewProvider() Provider {
	return &envProvider{}
}

// Load merges defaults, SWINSTALL_* variables and opts.Overrides.
func (p *envProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return loadWithOptions(ctx, opts)
}
