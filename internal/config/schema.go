// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed config_schema.cue
var configSchema string

// validateSchema unifies cfg with the #Config definition of the embedded schema.
func validateSchema(cfg *Config) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema, cue.Filename("config_schema.cue"))
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	cfgValue := ctx.Encode(cfg)
	if cfgValue.Err() != nil {
		return fmt.Errorf("failed to encode config: %w", cfgValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	if err := schema.Unify(cfgValue).Validate(cue.Concrete(true)); err != nil {
		return formatSchemaError(err)
	}
	return nil
}

// formatSchemaError flattens CUE errors into "<path>: <message>" lines, with
// paths in dotted form (venv.packages[0]).
func formatSchemaError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("config does not match schema: %w", err)
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		path := formatPath(e.Path())
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path == "" {
			lines = append(lines, msg)
			continue
		}
		lines = append(lines, path+": "+msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("config does not match schema: %s", lines[0])
	}
	return fmt.Errorf("config does not match schema:\n  %s", strings.Join(lines, "\n  "))
}

// formatPath joins a CUE error path, writing numeric elements as indices.
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if isIndex(part) && i > 0 {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
