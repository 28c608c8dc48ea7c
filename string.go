package skema

import (
	"regexp"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// patternCheck is the single pattern slot of a StringSchema. Presets and
// explicit patterns share it; whichever was set last wins.
type patternCheck struct {
	name   string
	format string
	match  func(string) bool
}

// StringSchema validates string values. Length bounds count runes, not bytes.
type StringSchema struct {
	minLen     *int
	maxLen     *int
	pattern    *patternCheck
	optional   bool
	custom     []func(string) error
	transforms []Transform
	errs       overrides
}

// String returns a schema accepting any string.
func String() *StringSchema { return &StringSchema{} }

// MinLength requires at least n characters.
func (s *StringSchema) MinLength(n int) *StringSchema {
	ns := *s
	ns.minLen = &n
	return &ns
}

// MaxLength requires at most n characters.
func (s *StringSchema) MaxLength(n int) *StringSchema {
	ns := *s
	ns.maxLen = &n
	return &ns
}

// Pattern requires the string to match the regular expression expr. It panics
// if expr does not compile, like regexp.MustCompile.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	re := regexp.MustCompile(expr)
	ns := *s
	ns.pattern = &patternCheck{name: expr, match: re.MatchString}
	return &ns
}

// Email requires a syntactically valid email address.
func (s *StringSchema) Email() *StringSchema {
	return s.preset("email", "email", govalidator.IsEmail)
}

// URL requires a syntactically valid URL.
func (s *StringSchema) URL() *StringSchema {
	return s.preset("url", "uri", govalidator.IsURL)
}

// UUID requires a canonically formatted UUID.
func (s *StringSchema) UUID() *StringSchema {
	return s.preset("uuid", "uuid", govalidator.IsUUID)
}

// IP requires an IPv4 or IPv6 address.
func (s *StringSchema) IP() *StringSchema {
	return s.preset("ip", "ip", govalidator.IsIP)
}

func (s *StringSchema) preset(name, format string, match func(string) bool) *StringSchema {
	ns := *s
	ns.pattern = &patternCheck{name: name, format: format, match: match}
	return &ns
}

// Optional makes null pass validation unchanged.
func (s *StringSchema) Optional() *StringSchema {
	ns := *s
	ns.optional = true
	return &ns
}

// Custom adds a predicate that runs after the built-in constraints. A non-nil
// error fails validation with the predicate's message.
func (s *StringSchema) Custom(fn func(string) error) *StringSchema {
	ns := *s
	ns.custom = append(append([]func(string) error{}, s.custom...), fn)
	return &ns
}

// Transform appends a transform applied after all constraints pass.
func (s *StringSchema) Transform(t Transform) *StringSchema {
	ns := *s
	ns.transforms = append(append([]Transform{}, s.transforms...), t)
	return &ns
}

// Trim appends the whitespace-trimming transform.
func (s *StringSchema) Trim() *StringSchema { return s.Transform(Trim) }

// Lowercase appends the lower-casing transform.
func (s *StringSchema) Lowercase() *StringSchema { return s.Transform(Lowercase) }

// Uppercase appends the upper-casing transform.
func (s *StringSchema) Uppercase() *StringSchema { return s.Transform(Uppercase) }

// ErrorMessage replaces the message template for errors carrying code, on
// this node only.
func (s *StringSchema) ErrorMessage(code, template string) *StringSchema {
	ns := *s
	ns.errs = s.errs.with(code, template)
	return &ns
}

func (s *StringSchema) eval(v Value, p Path) (Value, *ErrorContext) {
	if v.IsNull() && s.optional {
		return v, nil
	}
	if v.Kind() != KindString {
		return Value{}, invalidType(s.errs, CodeStringInvalidType, "string", v, p)
	}
	str := v.Str()
	n := utf8.RuneCountInString(str)
	if s.minLen != nil && n < *s.minLen {
		return Value{}, s.errs.fail(CodeStringTooShort, p, map[string]any{
			"min": *s.minLen, "length": n,
		})
	}
	if s.maxLen != nil && n > *s.maxLen {
		return Value{}, s.errs.fail(CodeStringTooLong, p, map[string]any{
			"max": *s.maxLen, "length": n,
		})
	}
	if s.pattern != nil && !s.pattern.match(str) {
		return Value{}, s.errs.fail(CodeStringPattern, p, map[string]any{
			"pattern": s.pattern.name,
		})
	}
	for _, fn := range s.custom {
		if err := fn(str); err != nil {
			return Value{}, s.errs.fail(CodeStringCustom, p, map[string]any{
				"message": err.Error(),
			})
		}
	}
	return applyTransforms(v, s.transforms), nil
}

// OpenAPISchema projects the node onto an OpenAPI string schema. Presets map
// to the corresponding format; explicit patterns to the pattern keyword.
func (s *StringSchema) OpenAPISchema() (*openapi3.Schema, error) {
	out := openapi3.NewSchema()
	out.Type = &openapi3.Types{openapi3.TypeString}
	if s.minLen != nil {
		out.MinLength = uint64(*s.minLen)
	}
	if s.maxLen != nil {
		m := uint64(*s.maxLen)
		out.MaxLength = &m
	}
	if s.pattern != nil {
		if s.pattern.format != "" {
			out.Format = s.pattern.format
		} else {
			out.Pattern = s.pattern.name
		}
	}
	out.Nullable = s.optional
	return out, nil
}
