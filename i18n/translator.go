// Package i18n provides message templates for validation error codes.
//
// The default translator carries an English dictionary keyed by the full
// dot-namespaced error code. Applications may install their own Translator to
// localize or reword messages globally; per-node overrides on schemas take
// precedence over whatever the translator returns.
package i18n

import "sync"

// Translator resolves an error code to a message template. Templates may
// contain {param} placeholders that the error renderer substitutes.
type Translator interface {
	Template(code string) string
}

var defaultTemplates = map[string]string{
	"string.invalid_type":  "expected string, got {actual}",
	"string.too_short":     "string must be at least {min} characters long",
	"string.too_long":      "string must be at most {max} characters long",
	"string.pattern":       "string must match pattern: {pattern}",
	"string.custom":        "{message}",
	"number.invalid_type":  "expected number, got {actual}",
	"number.min":           "value {value} is less than minimum {min}",
	"number.max":           "value {value} is greater than maximum {max}",
	"number.integer":       "expected an integer value",
	"boolean.invalid_type": "expected boolean, got {actual}",
	"array.invalid_type":   "expected array, got {actual}",
	"array.min_items":      "array must contain at least {min} items",
	"array.max_items":      "array must contain at most {max} items",
	"object.invalid_type":  "expected object, got {actual}",
	"object.missing_field": "missing required field: {field}",
	"object.unknown_key":   "unknown key: {key}",
	"union.no_match":       "value did not match any variant",
}

type defaultTranslator struct{}

func (defaultTranslator) Template(code string) string {
	if t, ok := defaultTemplates[code]; ok {
		return t
	}
	return code
}

var (
	mu      sync.RWMutex
	current Translator = defaultTranslator{}
)

// SetTranslator installs t as the process-wide translator. Passing nil
// restores the default English dictionary.
func SetTranslator(t Translator) {
	mu.Lock()
	defer mu.Unlock()
	if t == nil {
		current = defaultTranslator{}
		return
	}
	current = t
}

// T resolves code through the installed translator. Unknown codes fall back
// to the code itself so errors stay identifiable.
func T(code string) string {
	mu.RLock()
	t := current
	mu.RUnlock()
	if s := t.Template(code); s != "" {
		return s
	}
	return code
}
