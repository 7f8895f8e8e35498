package schemafile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses an interface definition document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}

	for i := range doc.Collections {
		c := &doc.Collections[i]
		for j := range c.Types {
			c.Types[j].Kind = strings.ToLower(strings.TrimSpace(c.Types[j].Kind))
		}
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
