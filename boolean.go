package skema

import "github.com/getkin/kin-openapi/openapi3"

// BooleanSchema validates boolean values.
type BooleanSchema struct {
	optional bool
	errs     overrides
}

// Boolean returns a schema accepting true or false.
func Boolean() *BooleanSchema { return &BooleanSchema{} }

// Optional makes null pass validation unchanged.
func (s *BooleanSchema) Optional() *BooleanSchema {
	ns := *s
	ns.optional = true
	return &ns
}

// ErrorMessage replaces the message template for errors carrying code, on
// this node only.
func (s *BooleanSchema) ErrorMessage(code, template string) *BooleanSchema {
	ns := *s
	ns.errs = s.errs.with(code, template)
	return &ns
}

func (s *BooleanSchema) eval(v Value, p Path) (Value, *ErrorContext) {
	if v.IsNull() && s.optional {
		return v, nil
	}
	if v.Kind() != KindBool {
		return Value{}, invalidType(s.errs, CodeBooleanInvalidType, "boolean", v, p)
	}
	return v, nil
}

// OpenAPISchema projects the node onto an OpenAPI boolean schema.
func (s *BooleanSchema) OpenAPISchema() (*openapi3.Schema, error) {
	out := openapi3.NewSchema()
	out.Type = &openapi3.Types{openapi3.TypeBoolean}
	out.Nullable = s.optional
	return out, nil
}
