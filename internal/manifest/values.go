package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Values is the configuration context for one render: an untyped tree of
// scalars, sequences, and nested mappings. It is treated as read-only for
// the duration of a render.
type Values map[string]any

// UnmarshalYAML decodes a values document. The top-level "ports" key is
// decoded into ordered Records so that intra-record field order survives;
// everything else becomes plain maps, slices, and scalars.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("values must be a mapping, got %s", nodeKind(node))
	}

	out := make(Values, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		if key == "ports" && val.Kind == yaml.SequenceNode {
			var records []Record
			if err := val.Decode(&records); err != nil {
				return fmt.Errorf("ports: %w", err)
			}
			out[key] = records
			continue
		}

		var raw any
		if err := val.Decode(&raw); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = raw
	}

	*v = out
	return nil
}

// Lookup resolves a dotted path (e.g. "service.type") against the tree.
// Returns false when any segment is absent or a non-mapping is traversed.
func (v Values) Lookup(path string) (any, bool) {
	var current any = map[string]any(v)

	for _, segment := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// String returns the string at path. Non-string values report false.
func (v Values) String(path string) (string, bool) {
	raw, ok := v.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// StringMap returns the mapping at path with values rendered as strings.
func (v Values) StringMap(path string) (map[string]string, bool) {
	raw, ok := v.Lookup(path)
	if !ok {
		return nil, false
	}
	m, ok := asMap(raw)
	if !ok {
		return nil, false
	}

	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = toString(val)
	}
	return out, true
}

// Records returns the ordered record sequence at path.
func (v Values) Records(path string) ([]Record, bool) {
	raw, ok := v.Lookup(path)
	if !ok {
		return nil, false
	}

	switch seq := raw.(type) {
	case []Record:
		return seq, true
	case []any:
		out := make([]Record, 0, len(seq))
		for _, item := range seq {
			record, ok := item.(Record)
			if !ok {
				return nil, false
			}
			out = append(out, record)
		}
		return out, true
	}
	return nil, false
}

// asMap unwraps the two mapping shapes that appear in a values tree.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Values:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// toString converts a scalar to its string representation.
func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// nodeKind names a yaml node kind for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
