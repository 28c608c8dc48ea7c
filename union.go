package skema

import "github.com/getkin/kin-openapi/openapi3"

type unionMode int

const (
	modeOneOf unionMode = iota
	modeAllOf
	modeBestOf
)

// Scorer ranks a variant's failure for BestOf error selection. Lower scores
// are better; among equal scores the earliest-declared variant wins.
type Scorer func(*ErrorContext) int

// UnionSchema combines variant schemas under one of three matching modes.
type UnionSchema struct {
	variants []Schema
	mode     unionMode
	scorer   Scorer
}

// OneOf accepts the first variant that validates, in declaration order. When
// every variant fails, the last variant's error is reported.
func OneOf(variants ...Schema) *UnionSchema {
	return &UnionSchema{variants: variants, mode: modeOneOf}
}

// AllOf requires every variant to validate the original value. The output is
// the last variant's transformed value; a failure from the first failing
// variant is reported as-is. With no variants the input passes unchanged.
func AllOf(variants ...Schema) *UnionSchema {
	return &UnionSchema{variants: variants, mode: modeAllOf}
}

// BestOf accepts the first variant that validates. When every variant fails,
// scorer ranks the failures and the lowest-scored one is reported; a nil
// scorer ranks every failure equally, so the first variant's error wins.
func BestOf(scorer Scorer, variants ...Schema) *UnionSchema {
	return &UnionSchema{variants: variants, mode: modeBestOf, scorer: scorer}
}

func (s *UnionSchema) eval(v Value, p Path) (Value, *ErrorContext) {
	switch s.mode {
	case modeAllOf:
		out := v
		for _, variant := range s.variants {
			res, ec := variant.eval(v, p)
			if ec != nil {
				return Value{}, ec
			}
			out = res
		}
		return out, nil

	case modeBestOf:
		var (
			best      *ErrorContext
			bestScore int
		)
		for _, variant := range s.variants {
			res, ec := variant.eval(v, p)
			if ec == nil {
				return res, nil
			}
			score := 0
			if s.scorer != nil {
				score = s.scorer(ec)
			}
			if best == nil || score < bestScore {
				best, bestScore = ec, score
			}
		}
		if best == nil {
			return Value{}, newError(CodeUnionNoMatch, p, nil)
		}
		return Value{}, best

	default: // modeOneOf
		var last *ErrorContext
		for _, variant := range s.variants {
			res, ec := variant.eval(v, p)
			if ec == nil {
				return res, nil
			}
			last = ec
		}
		if last == nil {
			return Value{}, newError(CodeUnionNoMatch, p, nil)
		}
		return Value{}, last
	}
}

// OpenAPISchema projects the union onto the matching OpenAPI combinator:
// oneOf, allOf, or anyOf for best-match unions.
func (s *UnionSchema) OpenAPISchema() (*openapi3.Schema, error) {
	refs := make(openapi3.SchemaRefs, 0, len(s.variants))
	for _, variant := range s.variants {
		vs, err := variant.OpenAPISchema()
		if err != nil {
			return nil, err
		}
		refs = append(refs, openapi3.NewSchemaRef("", vs))
	}
	out := openapi3.NewSchema()
	switch s.mode {
	case modeAllOf:
		out.AllOf = refs
	case modeBestOf:
		out.AnyOf = refs
	default:
		out.OneOf = refs
	}
	return out, nil
}
