package skema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/skemaly/skema/i18n"
)

// Error codes (exported consts for IDE completion and type safety by
// convention). Codes are dot-namespaced by schema kind.
const (
	CodeStringInvalidType  = "string.invalid_type"
	CodeStringTooShort     = "string.too_short"
	CodeStringTooLong      = "string.too_long"
	CodeStringPattern      = "string.pattern"
	CodeStringCustom       = "string.custom"
	CodeNumberInvalidType  = "number.invalid_type"
	CodeNumberMin          = "number.min"
	CodeNumberMax          = "number.max"
	CodeNumberInteger      = "number.integer"
	CodeBooleanInvalidType = "boolean.invalid_type"
	CodeArrayInvalidType   = "array.invalid_type"
	CodeArrayMinItems      = "array.min_items"
	CodeArrayMaxItems      = "array.max_items"
	CodeObjectInvalidType  = "object.invalid_type"
	CodeObjectMissingField = "object.missing_field"
	CodeObjectUnknownKey   = "object.unknown_key"
	CodeUnionNoMatch       = "union.no_match"
)

// ErrorContext is the structured description of a single validation failure:
// a machine-readable code, the path to the offending sub-value, a message
// template and its named parameters. It is constructed at the point of
// failure and not modified afterwards; the human-readable message is rendered
// lazily by Message.
type ErrorContext struct {
	Code     string
	Path     Path
	Template string
	Params   map[string]any
}

func newError(code string, path Path, params map[string]any) *ErrorContext {
	return &ErrorContext{Code: code, Path: path, Template: i18n.T(code), Params: params}
}

// Message renders the template, substituting each {param} token from Params.
// Tokens without a matching parameter are left verbatim.
func (e *ErrorContext) Message() string {
	msg := e.Template
	for name, val := range e.Params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", formatParam(val))
	}
	return msg
}

// Error implements error, summarizing code, path and rendered message.
func (e *ErrorContext) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message())
}

// AsErrorContext extracts an *ErrorContext from err using errors.As.
func AsErrorContext(err error) (*ErrorContext, bool) {
	if err == nil {
		return nil, false
	}
	var ec *ErrorContext
	if errors.As(err, &ec) {
		return ec, true
	}
	return nil, false
}

// formatParam renders a parameter value for message substitution. Integral
// floats render without a fractional part so bounds read naturally.
func formatParam(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// overrides maps an error code to a replacement message template. Keys that
// do not match a code produced by the declaring node are inert.
type overrides map[string]string

// with returns a copy of o with code mapped to template. The receiver is not
// modified, so derived schema nodes never share override maps.
func (o overrides) with(code, template string) overrides {
	m := make(overrides, len(o)+1)
	for k, v := range o {
		m[k] = v
	}
	m[code] = template
	return m
}

// fail builds an ErrorContext for code, applying a template override when one
// was declared for that exact code on this node.
func (o overrides) fail(code string, path Path, params map[string]any) *ErrorContext {
	ec := newError(code, path, params)
	if t, ok := o[code]; ok {
		ec.Template = t
	}
	return ec
}
