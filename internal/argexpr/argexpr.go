// Package argexpr turns command-line assignments such as
// "charge1=2*e" or "position2=[0, 0, 1e-3]" into tool arguments.
//
// Right-hand sides are expr-lang expressions evaluated with the physical
// constants pi, eps0, mu0, k, e, me, mp and c in scope, plus sqrt, sin, cos,
// tan and rad (degrees to radians). Numbers become JSON numbers and
// three-element lists become {x, y, z} vectors.
package argexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/expr-lang/expr"

	"github.com/leofalp/emcalc/core/physics"
)

// ErrInvalidAssignment is returned for input that is not name=expression or
// whose expression does not yield a number or a three-element vector.
var ErrInvalidAssignment = errors.New("invalid assignment")

// Environment returns the identifiers available to expressions.
func Environment() map[string]any {
	return map[string]any{
		"pi":   math.Pi,
		"eps0": physics.Epsilon0,
		"mu0":  physics.Mu0,
		"k":    physics.K,
		"e":    1.602176634e-19,
		"me":   9.1093837015e-31,
		"mp":   1.67262192369e-27,
		"c":    299792458.0,
		"sqrt": math.Sqrt,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"rad":  func(deg float64) float64 { return deg * math.Pi / 180 },
	}
}

// Evaluate evaluates each name=expression assignment and returns the
// resulting argument object. A later assignment to the same name wins.
func Evaluate(assignments []string) (map[string]any, error) {
	env := Environment()
	args := make(map[string]any, len(assignments))

	for _, assignment := range assignments {
		name, source, ok := strings.Cut(assignment, "=")
		name = strings.TrimSpace(name)
		if !ok || !isIdentifier(name) || strings.TrimSpace(source) == "" {
			return nil, fmt.Errorf("%w: %q, want name=expression", ErrInvalidAssignment, assignment)
		}

		value, err := evaluate(source, env)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAssignment, name, err)
		}
		args[name] = value
	}
	return args, nil
}

func evaluate(source string, env map[string]any) (any, error) {
	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("expression error: %w", err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluation error: %w", err)
	}

	if list, ok := result.([]any); ok {
		if len(list) != 3 {
			return nil, fmt.Errorf("vector needs 3 components, got %d", len(list))
		}
		components := [3]float64{}
		for i, item := range list {
			f, ok := toFloat(item)
			if !ok {
				return nil, fmt.Errorf("vector component %d is %T, not a number", i, item)
			}
			components[i] = f
		}
		return map[string]any{"x": components[0], "y": components[1], "z": components[2]}, nil
	}

	if f, ok := toFloat(result); ok {
		return f, nil
	}
	return nil, fmt.Errorf("result %v (%T) is neither a number nor a vector", result, result)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
