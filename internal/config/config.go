// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/swinstall/swinstall/internal/issue"
	"github.com/swinstall/swinstall/pkg/types"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "swinstall"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "SWINSTALL"
)

// Configuration keys. Nested keys map to environment variables with dots
// replaced by underscores (venv.dir -> SWINSTALL_VENV_DIR).
const (
	KeySoftware     = "software"
	KeyPlatform     = "platform"
	KeyRunner       = "runner"
	KeyStrict       = "strict"
	KeyLogLevel     = "log_level"
	KeyVerbose      = "verbose"
	KeyVenvDir      = "venv.dir"
	KeyVenvPackages = "venv.packages"
)

// Keys returns every configuration key.
func Keys() []string {
	return []string{KeySoftware, KeyPlatform, KeyRunner, KeyStrict, KeyLogLevel, KeyVerbose, KeyVenvDir, KeyVenvPackages}
}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// loadWithOptions merges defaults, environment and overrides, then validates
// the result.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault(KeySoftware, defaults.Software.String())
	v.SetDefault(KeyPlatform, defaults.Platform)
	v.SetDefault(KeyRunner, defaults.Runner.String())
	v.SetDefault(KeyStrict, defaults.Strict)
	v.SetDefault(KeyLogLevel, defaults.LogLevel.String())
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeyVenvDir, defaults.Venv.Dir)
	v.SetDefault(KeyVenvPackages, packageStrings(defaults.Venv.Packages))

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	cfg := fromViper(v)

	if err := cfg.Validate(); err != nil {
		return nil, invalidConfigError(err)
	}
	if err := validateSchema(cfg); err != nil {
		return nil, invalidConfigError(err)
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	level := LogLevel(strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))))

	// Environment values arrive as a single string; accept commas as well as
	// whitespace between package names.
	var packages []types.PackageName
	for _, entry := range v.GetStringSlice(KeyVenvPackages) {
		for _, name := range strings.FieldsFunc(entry, func(r rune) bool { return r == ',' || r == ' ' }) {
			packages = append(packages, types.PackageName(name))
		}
	}

	return &Config{
		Software: types.PackageName(strings.TrimSpace(v.GetString(KeySoftware))),
		Platform: strings.TrimSpace(v.GetString(KeyPlatform)),
		Runner:   RunnerMode(strings.TrimSpace(v.GetString(KeyRunner))),
		Strict:   v.GetBool(KeyStrict),
		LogLevel: level,
		Verbose:  v.GetBool(KeyVerbose),
		Venv: VenvConfig{
			Dir:      strings.TrimSpace(v.GetString(KeyVenvDir)),
			Packages: packages,
		},
	}
}

func invalidConfigError(err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(EnvPrefix + "_* environment").
		WithSuggestion("Run 'swinstall config show' with the variable unset to see the defaults").
		WithSuggestion("Valid runners: exec, shell, dry-run; valid log levels: debug, info, warn, error").
		WithIssue(issue.InvalidConfigId).
		Wrap(err).
		BuildError()
}

func packageStrings(pkgs []types.PackageName) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.String()
	}
	return out
}
