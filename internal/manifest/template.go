package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultMaxDepth bounds recursive template expansion. A value that resolves
// to another template is re-expanded against the same top-level context;
// exceeding the bound fails instead of looping on self-referential chains.
const DefaultMaxDepth = 10

// Eval renders a template expression against the full values context.
// Expressions use Go template syntax with the sprig function map. When the
// expanded output still contains placeholder syntax (a context value that is
// itself a template), it is re-expanded until it settles or the depth bound
// is hit.
func Eval(expr string, values Values) (string, error) {
	return EvalDepth(expr, values, DefaultMaxDepth)
}

// EvalDepth is Eval with an explicit expansion bound.
func EvalDepth(expr string, values Values, maxDepth int) (string, error) {
	if !strings.Contains(expr, "{{") {
		return expr, nil
	}

	current := expr
	for depth := 0; depth < maxDepth; depth++ {
		out, err := evalOnce(current, values)
		if err != nil {
			return "", fmt.Errorf("expanding %q: %w", expr, err)
		}
		if !strings.Contains(out, "{{") {
			return out, nil
		}
		current = out
	}

	return "", fmt.Errorf("expanding %q: %w (%d levels)", expr, ErrMaxDepthExceeded, maxDepth)
}

// evalOnce performs a single expansion pass.
func evalOnce(expr string, values Values) (string, error) {
	tmpl, err := template.New("expr").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		if isMissingReference(err) {
			return "", fmt.Errorf("%w: %v", ErrUnresolvedReference, err)
		}
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}

	return buf.String(), nil
}

// isMissingReference matches the exec errors text/template produces for
// placeholder paths that do not exist in the context.
func isMissingReference(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "no entry for key") ||
		strings.Contains(msg, "can't evaluate field") ||
		strings.Contains(msg, "nil data")
}
