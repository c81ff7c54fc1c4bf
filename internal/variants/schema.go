package variants

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/promptvary/internal/variantgen"
)

// recordSchema is the JSON Schema every persisted record must satisfy.
// Checked before writing and again when a saved file is loaded, so a
// hand-edited file is caught early.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"original":             map[string]any{"type": "string", "minLength": 1},
		"requested_difficulty": map[string]any{"enum": []any{"easier", "equivalent", "harder"}},
		"variant":              map[string]any{"type": "string", "minLength": 1},
		"reasoning":            map[string]any{"type": "string"},
		"transformations_used": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"evaluation": map[string]any{"type": []any{"number", "null"}},
		"timestamp":  map[string]any{"type": "string"},
	},
	"required": []any{
		"original", "requested_difficulty", "variant", "reasoning",
		"transformations_used", "evaluation", "timestamp",
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go
		// literals. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://variant-record.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateRecords checks every record against the record schema.
func validateRecords(records []variantgen.Record) error {
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}

	for i, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("record %d: marshal: %w", i, err)
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return fmt.Errorf("record %d: parse: %w", i, err)
		}
		if err := schema.Validate(parsed); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
