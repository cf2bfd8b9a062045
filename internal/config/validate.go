package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// validateSchema checks raw YAML against the embedded #Config definition.
// The schema is compiled per call; config loading happens once per run so
// caching the cue.Value is not worth a package-level context.
func validateSchema(data []byte) error {
	// An empty document means all defaults; CUE would see it as null.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal: schema.cue does not compile: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("internal: #Config not found in schema: %w", err)
	}

	if err := cueyaml.Validate(data, def); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
