package manifest

import "fmt"

// Render assembles a Service document from the values context.
//
// A closed gate returns (nil, nil): the document is conditionally omitted,
// not failed. Gate evaluation errors also close the gate. Everything past
// the gate is fail-fast: missing identity fields and template errors abort
// the render with no partial document.
func Render(values Values) (*Document, error) {
	open, _ := CheckGate(values)
	if !open {
		return nil, nil
	}

	name, ok := values.String("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}

	selector, ok := values.StringMap("selector")
	if !ok || len(selector) == 0 {
		return nil, fmt.Errorf("%w: selector", ErrMissingField)
	}

	doc := &Document{
		APIVersion: APIVersionV1,
		Kind:       KindService,
		Metadata:   Metadata{Name: name},
		Spec: ServiceSpec{
			Selector: selector,
			Ports:    []Record{},
		},
	}

	doc.Metadata.Labels = mergedLabels(values)

	annotations, err := renderedAnnotations(values)
	if err != nil {
		return nil, err
	}
	doc.Metadata.Annotations = annotations

	if records, ok := values.Records("ports"); ok {
		projected, err := Project(records, values)
		if err != nil {
			return nil, fmt.Errorf("ports: %w", err)
		}
		doc.Spec.Ports = projected
	}

	optional := []struct {
		path string
		dst  *string
	}{
		{"service.type", &doc.Spec.Type},
		{"service.clusterIP", &doc.Spec.ClusterIP},
		{"service.loadBalancerIP", &doc.Spec.LoadBalancerIP},
		{"service.externalTrafficPolicy", &doc.Spec.ExternalTrafficPolicy},
	}
	for _, field := range optional {
		rendered, err := optionalScalar(values, field.path)
		if err != nil {
			return nil, err
		}
		*field.dst = rendered
	}

	return doc, nil
}

// mergedLabels deep-merges the label fragments in precedence order
// (commonLabels first, component labels win). Returns nil when no fragment
// contributes anything, so the labels field stays absent rather than empty.
func mergedLabels(values Values) map[string]string {
	fragments := make([]map[string]any, 0, 2)
	for _, path := range []string{"commonLabels", "labels"} {
		raw, ok := values.Lookup(path)
		if !ok {
			continue
		}
		if m, ok := asMap(raw); ok && len(m) > 0 {
			fragments = append(fragments, m)
		}
	}

	if len(fragments) == 0 {
		return nil
	}

	merged := MergeAll(fragments...)
	labels := make(map[string]string, len(merged))
	for k, v := range merged {
		labels[k] = toString(v)
	}
	return labels
}

// renderedAnnotations template-expands annotation values. Returns nil when
// the context supplies no annotations.
func renderedAnnotations(values Values) (map[string]string, error) {
	raw, ok := values.Lookup("annotations")
	if !ok {
		return nil, nil
	}
	m, ok := asMap(raw)
	if !ok || len(m) == 0 {
		return nil, nil
	}

	annotations := make(map[string]string, len(m))
	for k, v := range m {
		rendered, err := Eval(toString(v), values)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", k, err)
		}
		annotations[k] = rendered
	}
	return annotations, nil
}

// optionalScalar looks up and template-expands an optional scalar field.
// Absent or empty sources yield "", which callers treat as "omit".
func optionalScalar(values Values, path string) (string, error) {
	raw, ok := values.Lookup(path)
	if !ok {
		return "", nil
	}

	source := toString(raw)
	if source == "" {
		return "", nil
	}

	rendered, err := Eval(source, values)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return rendered, nil
}
