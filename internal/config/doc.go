// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// Values come from built-in defaults, SWINSTALL_* environment variables and
// explicit overrides (command-line flags), in increasing order of precedence.
// There is no configuration file. The merged configuration is validated by Go
// Validate methods and against the embedded CUE schema (config_schema.cue).
package config
