package statement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML statement stream from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement stream %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse statement stream YAML: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.View == "" {
		doc.View = "app.View"
	}

	for i := range doc.Statements {
		defaultKind(&doc.Statements[i])
	}
}

// defaultKind treats entries without an explicit kind as literal text,
// recursively for macro bodies.
func defaultKind(s *Statement) {
	if s.Kind == "" {
		s.Kind = KindText
	}

	for i := range s.Children {
		defaultKind(&s.Children[i])
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statement stream: %w", err)
	}

	return data, nil
}
