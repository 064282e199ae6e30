package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is one named value in a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered sequence of fields. YAML mappings decode into Records
// preserving declaration order, which plain Go maps would lose.
type Record []Field

// UnmarshalYAML decodes a mapping node into an ordered Record.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("record must be a mapping, got %s", nodeKind(node))
	}

	record := make(Record, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", node.Content[i].Value, err)
		}
		record = append(record, Field{Name: node.Content[i].Value, Value: value})
	}

	*r = record
	return nil
}

// MarshalYAML encodes the record as a mapping in field order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name}
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, field := range r {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Project evaluates each record's templated field values against the full
// context and returns one output record per input record, preserving both
// record order and intra-record field order. Raw scalars pass through
// unchanged; rendered template output is coerced best-effort (integer, then
// boolean, then string). An empty input yields an empty, non-nil output.
func Project(records []Record, values Values) ([]Record, error) {
	out := make([]Record, 0, len(records))

	for i, record := range records {
		projected := make(Record, 0, len(record))
		for _, field := range record {
			expr, ok := field.Value.(string)
			if !ok || !strings.Contains(expr, "{{") {
				projected = append(projected, field)
				continue
			}

			rendered, err := Eval(expr, values)
			if err != nil {
				return nil, fmt.Errorf("record %d field %q: %w", i, field.Name, err)
			}
			projected = append(projected, Field{Name: field.Name, Value: coerceScalar(rendered)})
		}
		out = append(out, projected)
	}

	return out, nil
}

// coerceScalar converts rendered template text to the narrowest primitive
// that parses: integer, boolean, then string.
func coerceScalar(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
