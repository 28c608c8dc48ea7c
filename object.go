package skema

import "github.com/getkin/kin-openapi/openapi3"

type field struct {
	name     string
	schema   Schema
	required bool
}

// ObjectSchema validates object values against a set of declared fields.
// Fields are checked in declaration order; the output contains exactly the
// declared fields that were present, in that order. Undeclared keys are
// dropped silently unless Strict rejects them.
type ObjectSchema struct {
	fields   []field
	index    map[string]int
	strict   bool
	optional bool
	errs     overrides
}

// Object returns a schema with no declared fields. Undeclared keys are
// dropped from the output.
func Object() *ObjectSchema {
	return &ObjectSchema{index: map[string]int{}}
}

// Field declares a required field. Redeclaring a name replaces the earlier
// declaration in place.
func (s *ObjectSchema) Field(name string, schema Schema) *ObjectSchema {
	return s.declare(name, schema, true)
}

// OptionalField declares a field that may be absent. An absent optional field
// is simply omitted from the output.
func (s *ObjectSchema) OptionalField(name string, schema Schema) *ObjectSchema {
	return s.declare(name, schema, false)
}

func (s *ObjectSchema) declare(name string, schema Schema, required bool) *ObjectSchema {
	ns := *s
	ns.fields = append([]field{}, s.fields...)
	ns.index = make(map[string]int, len(s.index)+1)
	for k, v := range s.index {
		ns.index[k] = v
	}
	f := field{name: name, schema: schema, required: required}
	if i, ok := ns.index[name]; ok {
		ns.fields[i] = f
	} else {
		ns.index[name] = len(ns.fields)
		ns.fields = append(ns.fields, f)
	}
	return &ns
}

// Strict rejects keys that are not declared as fields.
func (s *ObjectSchema) Strict() *ObjectSchema {
	ns := *s
	ns.strict = true
	return &ns
}

// Optional makes null pass validation unchanged.
func (s *ObjectSchema) Optional() *ObjectSchema {
	ns := *s
	ns.optional = true
	return &ns
}

// ErrorMessage replaces the message template for errors carrying code, on
// this node only. Nested field errors are untouched.
func (s *ObjectSchema) ErrorMessage(code, template string) *ObjectSchema {
	ns := *s
	ns.errs = s.errs.with(code, template)
	return &ns
}

func (s *ObjectSchema) eval(v Value, p Path) (Value, *ErrorContext) {
	if v.IsNull() && s.optional {
		return v, nil
	}
	if v.Kind() != KindObject {
		return Value{}, invalidType(s.errs, CodeObjectInvalidType, "object", v, p)
	}
	out := newObject(len(s.fields))
	for _, f := range s.fields {
		fv, present := v.Get(f.name)
		if !present {
			if f.required {
				return Value{}, s.errs.fail(CodeObjectMissingField, p.child(Key(f.name)), map[string]any{
					"field": f.name,
				})
			}
			continue
		}
		res, ec := f.schema.eval(fv, p.child(Key(f.name)))
		if ec != nil {
			return Value{}, ec
		}
		out.set(f.name, res)
	}
	if s.strict {
		for _, k := range v.Keys() {
			if _, declared := s.index[k]; !declared {
				return Value{}, s.errs.fail(CodeObjectUnknownKey, p.child(Key(k)), map[string]any{
					"key": k,
				})
			}
		}
	}
	return objectValue(out), nil
}

// OpenAPISchema projects the node onto an OpenAPI object schema. Strict mode
// maps to additionalProperties: false.
func (s *ObjectSchema) OpenAPISchema() (*openapi3.Schema, error) {
	out := openapi3.NewSchema()
	out.Type = &openapi3.Types{openapi3.TypeObject}
	out.Properties = make(openapi3.Schemas, len(s.fields))
	for _, f := range s.fields {
		prop, err := f.schema.OpenAPISchema()
		if err != nil {
			return nil, err
		}
		out.Properties[f.name] = openapi3.NewSchemaRef("", prop)
		if f.required {
			out.Required = append(out.Required, f.name)
		}
	}
	if s.strict {
		no := false
		out.AdditionalProperties = openapi3.AdditionalProperties{Has: &no}
	}
	out.Nullable = s.optional
	return out, nil
}
