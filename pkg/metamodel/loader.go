package metamodel

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Load reads and decodes a meta-model document from a local file path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta-model %s: %w", path, err)
	}
	return Decode(data)
}

// Decode decodes a meta-model document from raw JSON
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode meta-model: %w", err)
	}
	if len(doc.Structures) == 0 && len(doc.Enumerations) == 0 && len(doc.TypeAliases) == 0 {
		return nil, fmt.Errorf("meta-model declares no structures, enumerations or type aliases")
	}
	return &doc, nil
}
