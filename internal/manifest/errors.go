package manifest

import "errors"

// Error kinds surfaced by the rendering pipeline. Gate errors are recovered
// locally (the gate closes); the rest abort the render of the document.
var (
	// ErrInvalidConstraint reports an unparseable gate constraint.
	ErrInvalidConstraint = errors.New("invalid version constraint")

	// ErrInvalidVersion reports an unparseable gate version string.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMissingField reports an absent required context field.
	ErrMissingField = errors.New("missing required field")

	// ErrTemplateSyntax reports a malformed template expression.
	ErrTemplateSyntax = errors.New("template syntax error")

	// ErrUnresolvedReference reports a placeholder path absent from the context.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrMaxDepthExceeded reports a template expansion that never settled
	// within the depth bound (typically a self-referential value chain).
	ErrMaxDepthExceeded = errors.New("max expansion depth exceeded")
)
