package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// gateOps normalizes unicode comparison operators to constraint syntax.
var gateOps = strings.NewReplacer("≥", ">=", "≤", "<=", "≠", "!=")

// EvaluateGate reports whether version satisfies constraint. Constraints use
// semver range syntax (">=3.0.0", "=1.2.3", ">=1.0.0, <2.0.0", hyphen
// ranges); unicode ≥ ≤ ≠ are accepted. Version precedence follows semver:
// numeric identifiers compare numerically, a pre-release orders before its
// release. Pure function: no side effects, no context access.
func EvaluateGate(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(gateOps.Replace(strings.TrimSpace(constraint)))
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrInvalidConstraint, constraint, err)
	}

	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrInvalidVersion, version, err)
	}

	return c.Check(v), nil
}

// CheckGate evaluates the optional gate in a values context. Without a gate
// the result is open. The version string may itself be a template and is
// expanded against the full context before parsing. The error reports why a
// gate could not be evaluated; Render ignores it (fail-closed), lint
// surfaces it.
func CheckGate(values Values) (bool, error) {
	raw, ok := values.Lookup("gate")
	if !ok {
		return true, nil
	}
	if _, isMap := asMap(raw); !isMap {
		return false, fmt.Errorf("%w: gate must be a mapping", ErrInvalidConstraint)
	}

	constraint, ok := values.String("gate.constraint")
	if !ok {
		return false, fmt.Errorf("%w: gate.constraint", ErrMissingField)
	}
	version, ok := values.String("gate.version")
	if !ok {
		return false, fmt.Errorf("%w: gate.version", ErrMissingField)
	}

	expanded, err := Eval(version, values)
	if err != nil {
		return false, fmt.Errorf("gate.version: %w", err)
	}

	return EvaluateGate(constraint, expanded)
}
