package recognition

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema describes the record shape the prompt asks for. It is used for
// diagnostics only: a model answer that deviates is logged, not rejected,
// because the mapper already tolerates partial documents.
const recordSchema = `{
  "type": "object",
  "properties": {
    "scientificName": {"type": "string"},
    "commonName": {"type": "string"},
    "chineseName": {"type": "string"},
    "classification": {
      "type": "object",
      "properties": {
        "kingdom": {"type": "string"},
        "phylum": {"type": "string"},
        "clazz": {"type": "string"},
        "class": {"type": "string"},
        "order": {"type": "string"},
        "family": {"type": "string"},
        "genus": {"type": "string"},
        "species": {"type": "string"}
      }
    },
    "habitat": {"type": "string"},
    "distribution": {"type": "string"},
    "characteristics": {"type": "string"},
    "sizeRange": {"type": "string"},
    "diet": {"type": "string"},
    "conservationStatus": {"type": "string"},
    "description": {"type": "string"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  },
  "required": ["scientificName", "chineseName", "confidence"]
}`

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record.json", strings.NewReader(recordSchema)); err != nil {
			compileSchemaErr = fmt.Errorf("failed to load record schema: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = compiler.Compile("record.json")
	})
	return compiledSchema, compileSchemaErr
}

// ValidateDocument checks a coerced JSON document against the record schema.
// A non-nil return means the model deviated from the requested shape; callers
// log it and continue with tolerant mapping.
func ValidateDocument(doc string) error {
	schema, err := compiledRecordSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return fmt.Errorf("failed to decode document for validation: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("document does not match record schema: %w", err)
	}
	return nil
}
