package qagen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// validateEnvelope checks a normalized envelope against the fixed
// result schema. On failure it returns a SchemaViolationError carrying
// a bounded preview of the rejected JSON for the remediation prompt.
func validateEnvelope(env map[string]any, previewLen int) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	// The jsonschema library validates a parsed JSON value, so round-trip
	// through encoding/json to erase the typed values inside the map.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse envelope: %w", err)
	}

	schema, err := compiledEnvelopeSchema()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", envelopeSchemaName, err)
	}

	if err := schema.Validate(parsed); err != nil {
		return &SchemaViolationError{
			Fragment: preview(string(raw), previewLen),
			Err:      err,
		}
	}
	return nil
}

// compiledEnvelopeSchema compiles the result schema once per process.
func compiledEnvelopeSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(envelopeSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		schemaURL := fmt.Sprintf("schema://%s.json", envelopeSchemaName)
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaErr
}
