package skema

import "github.com/getkin/kin-openapi/openapi3"

// Schema is a node of a validation tree. Implementations validate a Value,
// returning either a sanitized (possibly transformed) copy or the first
// failure encountered.
//
// All node types are immutable after construction and safe for concurrent use.
type Schema interface {
	// eval validates v at path p. Exactly one of the results is meaningful:
	// a nil error means the returned Value is the sanitized output.
	eval(v Value, p Path) (Value, *ErrorContext)

	// OpenAPISchema projects the node onto an OpenAPI 3 schema object.
	OpenAPISchema() (*openapi3.Schema, error)
}

// Evaluate validates v against s, starting at the root path. On success it
// returns the sanitized output value; on failure the error is an
// *ErrorContext describing the first violation in depth-first order.
func Evaluate(s Schema, v Value) (Value, error) {
	out, ec := s.eval(v, Path{})
	if ec != nil {
		return Value{}, ec
	}
	return out, nil
}

func invalidType(o overrides, code string, expected string, v Value, p Path) *ErrorContext {
	return o.fail(code, p, map[string]any{
		"expected": expected,
		"actual":   v.Kind().String(),
	})
}
