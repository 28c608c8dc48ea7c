package skema

import (
	"math"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

// NumberSchema validates number values.
type NumberSchema struct {
	min        *float64
	max        *float64
	integer    bool
	coerce     bool
	optional   bool
	transforms []Transform
	errs       overrides
}

// Number returns a schema accepting any finite number.
func Number() *NumberSchema { return &NumberSchema{} }

// Min requires the value to be at least n.
func (s *NumberSchema) Min(n float64) *NumberSchema {
	ns := *s
	ns.min = &n
	return &ns
}

// Max requires the value to be at most n.
func (s *NumberSchema) Max(n float64) *NumberSchema {
	ns := *s
	ns.max = &n
	return &ns
}

// Integer rejects values with a fractional part.
func (s *NumberSchema) Integer() *NumberSchema {
	ns := *s
	ns.integer = true
	return &ns
}

// Coerce accepts numeric strings, converting them before validation. Strings
// that do not parse fail the type check as usual.
func (s *NumberSchema) Coerce() *NumberSchema {
	ns := *s
	ns.coerce = true
	return &ns
}

// Optional makes null pass validation unchanged.
func (s *NumberSchema) Optional() *NumberSchema {
	ns := *s
	ns.optional = true
	return &ns
}

// Transform appends a transform applied after all constraints pass.
func (s *NumberSchema) Transform(t Transform) *NumberSchema {
	ns := *s
	ns.transforms = append(append([]Transform{}, s.transforms...), t)
	return &ns
}

// ToInteger appends the truncating transform.
func (s *NumberSchema) ToInteger() *NumberSchema { return s.Transform(ToInteger) }

// ErrorMessage replaces the message template for errors carrying code, on
// this node only.
func (s *NumberSchema) ErrorMessage(code, template string) *NumberSchema {
	ns := *s
	ns.errs = s.errs.with(code, template)
	return &ns
}

func (s *NumberSchema) eval(v Value, p Path) (Value, *ErrorContext) {
	if v.IsNull() && s.optional {
		return v, nil
	}
	if s.coerce && v.Kind() == KindString {
		if f, err := strconv.ParseFloat(v.Str(), 64); err == nil {
			v = Num(f)
		}
	}
	if v.Kind() != KindNumber {
		return Value{}, invalidType(s.errs, CodeNumberInvalidType, "number", v, p)
	}
	n := v.Float()
	if s.min != nil && n < *s.min {
		return Value{}, s.errs.fail(CodeNumberMin, p, map[string]any{
			"min": *s.min, "value": n,
		})
	}
	if s.max != nil && n > *s.max {
		return Value{}, s.errs.fail(CodeNumberMax, p, map[string]any{
			"max": *s.max, "value": n,
		})
	}
	if s.integer && n != math.Trunc(n) {
		return Value{}, s.errs.fail(CodeNumberInteger, p, map[string]any{
			"value": n,
		})
	}
	return applyTransforms(v, s.transforms), nil
}

// OpenAPISchema projects the node onto an OpenAPI number or integer schema.
func (s *NumberSchema) OpenAPISchema() (*openapi3.Schema, error) {
	out := openapi3.NewSchema()
	if s.integer {
		out.Type = &openapi3.Types{openapi3.TypeInteger}
	} else {
		out.Type = &openapi3.Types{openapi3.TypeNumber}
	}
	if s.min != nil {
		m := *s.min
		out.Min = &m
	}
	if s.max != nil {
		m := *s.max
		out.Max = &m
	}
	out.Nullable = s.optional
	return out, nil
}
