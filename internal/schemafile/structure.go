package schemafile

import (
	"bytes"
	"fmt"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"sigs.k8s.io/yaml"
)

// JSONSchema is the structural schema of interface definition documents.
//
//go:embed resources/document.schema.json
var JSONSchema []byte

// GetJSONSchema compiles the JSON schema once and caches it for reuse.
var GetJSONSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compile(JSONSchema)
})

func compile(data []byte) (*jsonschema.Schema, error) {
	const schemaFile = "resources/document.schema.json"

	unmarshaler, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaFile, unmarshaler); err != nil {
		return nil, fmt.Errorf("failed to add schema: %w", err)
	}

	sch, err := c.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return sch, nil
}

// CheckStructure validates raw YAML or JSON data against the document schema.
func CheckStructure(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal schema document: %w", err)
	}

	schema, err := GetJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid schema document: %w", err)
	}

	return nil
}
