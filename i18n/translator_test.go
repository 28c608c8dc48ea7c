package i18n_test

import (
	"testing"

	"github.com/skemaly/skema/i18n"
)

type mapTranslator map[string]string

func (m mapTranslator) Template(code string) string { return m[code] }

func TestDefaultDictionary(t *testing.T) {
	if got := i18n.T("string.too_short"); got != "string must be at least {min} characters long" {
		t.Fatalf("template = %q", got)
	}
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	if got := i18n.T("nope.nothing"); got != "nope.nothing" {
		t.Fatalf("template = %q", got)
	}
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(mapTranslator{"string.too_short": "trop court (min {min})"})
	defer i18n.SetTranslator(nil)

	if got := i18n.T("string.too_short"); got != "trop court (min {min})" {
		t.Fatalf("template = %q", got)
	}
	// codes the custom translator does not know still fall back
	if got := i18n.T("number.min"); got != "number.min" {
		t.Fatalf("template = %q", got)
	}
}

func TestSetTranslatorNilRestoresDefault(t *testing.T) {
	i18n.SetTranslator(mapTranslator{})
	i18n.SetTranslator(nil)
	if got := i18n.T("object.unknown_key"); got != "unknown key: {key}" {
		t.Fatalf("template = %q", got)
	}
}
