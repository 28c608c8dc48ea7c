package skema

import "github.com/getkin/kin-openapi/openapi3"

// ArraySchema validates array values, applying an element schema to every
// item in order.
type ArraySchema struct {
	item     Schema
	minItems *int
	maxItems *int
	optional bool
	errs     overrides
}

// Array returns a schema accepting arrays whose elements all satisfy item.
func Array(item Schema) *ArraySchema { return &ArraySchema{item: item} }

// MinItems requires at least n elements.
func (s *ArraySchema) MinItems(n int) *ArraySchema {
	ns := *s
	ns.minItems = &n
	return &ns
}

// MaxItems requires at most n elements.
func (s *ArraySchema) MaxItems(n int) *ArraySchema {
	ns := *s
	ns.maxItems = &n
	return &ns
}

// Optional makes null pass validation unchanged.
func (s *ArraySchema) Optional() *ArraySchema {
	ns := *s
	ns.optional = true
	return &ns
}

// ErrorMessage replaces the message template for errors carrying code, on
// this node only. Element errors are untouched.
func (s *ArraySchema) ErrorMessage(code, template string) *ArraySchema {
	ns := *s
	ns.errs = s.errs.with(code, template)
	return &ns
}

func (s *ArraySchema) eval(v Value, p Path) (Value, *ErrorContext) {
	if v.IsNull() && s.optional {
		return v, nil
	}
	if v.Kind() != KindArray {
		return Value{}, invalidType(s.errs, CodeArrayInvalidType, "array", v, p)
	}
	count := v.Len()
	if s.minItems != nil && count < *s.minItems {
		return Value{}, s.errs.fail(CodeArrayMinItems, p, map[string]any{
			"min": *s.minItems, "count": count,
		})
	}
	if s.maxItems != nil && count > *s.maxItems {
		return Value{}, s.errs.fail(CodeArrayMaxItems, p, map[string]any{
			"max": *s.maxItems, "count": count,
		})
	}
	out := make([]Value, count)
	for i, item := range v.Items() {
		res, ec := s.item.eval(item, p.child(Index(i)))
		if ec != nil {
			return Value{}, ec
		}
		out[i] = res
	}
	return Arr(out...), nil
}

// OpenAPISchema projects the node onto an OpenAPI array schema.
func (s *ArraySchema) OpenAPISchema() (*openapi3.Schema, error) {
	item, err := s.item.OpenAPISchema()
	if err != nil {
		return nil, err
	}
	out := openapi3.NewSchema()
	out.Type = &openapi3.Types{openapi3.TypeArray}
	out.Items = openapi3.NewSchemaRef("", item)
	if s.minItems != nil {
		out.MinItems = uint64(*s.minItems)
	}
	if s.maxItems != nil {
		m := uint64(*s.maxItems)
		out.MaxItems = &m
	}
	out.Nullable = s.optional
	return out, nil
}
