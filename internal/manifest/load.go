package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadValues loads a values file into a context.
func LoadValues(path string) (Values, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	var values Values
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}

	return values, nil
}

// RenderToYAML serializes a rendered document for output.
func RenderToYAML(doc *Document) (string, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(data), nil
}
