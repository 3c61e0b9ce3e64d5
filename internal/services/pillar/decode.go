package pillar

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrPillarNotFound is returned when a source has no pillar document.
var ErrPillarNotFound = errors.New("pillar document not found")

// ErrInvalidDocument is returned when a document is not a mapping.
var ErrInvalidDocument = errors.New("pillar document must be a mapping")

// DecodeDocument parses a YAML or JSON pillar document.
func DecodeDocument(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pillar document: %w", err)
	}

	if doc == nil {
		return make(map[string]any), nil
	}

	root, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidDocument, doc)
	}

	return root, nil
}
