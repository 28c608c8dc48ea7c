package skema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/skemaly/skema"
)

func mustFail(t *testing.T, s skema.Schema, v skema.Value) *skema.ErrorContext {
	t.Helper()
	_, err := skema.Evaluate(s, v)
	if err == nil {
		t.Fatalf("expected failure for %v", v)
	}
	ec, ok := skema.AsErrorContext(err)
	if !ok {
		t.Fatalf("error is not an ErrorContext: %v", err)
	}
	return ec
}

func mustPass(t *testing.T, s skema.Schema, v skema.Value) skema.Value {
	t.Helper()
	out, err := skema.Evaluate(s, v)
	if err != nil {
		t.Fatalf("unexpected failure for %v: %v", v, err)
	}
	return out
}

func TestStringType(t *testing.T) {
	ec := mustFail(t, skema.String(), skema.Num(1))
	if ec.Code != skema.CodeStringInvalidType {
		t.Fatalf("code = %s", ec.Code)
	}
	if ec.Params["actual"] != "number" {
		t.Fatalf("actual = %v", ec.Params["actual"])
	}
	out := mustPass(t, skema.String(), skema.Str("hi"))
	if out.Str() != "hi" {
		t.Fatalf("out = %v", out)
	}
}

func TestStringLengthCountsRunes(t *testing.T) {
	s := skema.String().MinLength(3).MaxLength(3)
	mustPass(t, s, skema.Str("héo")) // 3 runes, 4 bytes
	ec := mustFail(t, s, skema.Str("ab"))
	if ec.Code != skema.CodeStringTooShort {
		t.Fatalf("code = %s", ec.Code)
	}
	ec = mustFail(t, s, skema.Str("abcd"))
	if ec.Code != skema.CodeStringTooLong {
		t.Fatalf("code = %s", ec.Code)
	}
}

func TestStringPattern(t *testing.T) {
	s := skema.String().Pattern(`^[a-z]+$`)
	mustPass(t, s, skema.Str("abc"))
	ec := mustFail(t, s, skema.Str("abc1"))
	if ec.Code != skema.CodeStringPattern {
		t.Fatalf("code = %s", ec.Code)
	}
	if ec.Params["pattern"] != `^[a-z]+$` {
		t.Fatalf("pattern param = %v", ec.Params["pattern"])
	}
}

func TestStringPresets(t *testing.T) {
	cases := []struct {
		name   string
		schema *skema.StringSchema
		good   string
		bad    string
	}{
		{"email", skema.String().Email(), "a@example.com", "not-an-email"},
		{"url", skema.String().URL(), "https://example.com/x", "::nope::"},
		{"uuid", skema.String().UUID(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "6ba7b810"},
		{"ip", skema.String().IP(), "192.168.1.1", "999.1.1.1"},
	}
	for _, c := range cases {
		mustPass(t, c.schema, skema.Str(c.good))
		ec := mustFail(t, c.schema, skema.Str(c.bad))
		if ec.Code != skema.CodeStringPattern {
			t.Fatalf("%s: code = %s", c.name, ec.Code)
		}
		if ec.Params["pattern"] != c.name {
			t.Fatalf("%s: pattern param = %v", c.name, ec.Params["pattern"])
		}
	}
}

func TestStringPresetSlotLastWriteWins(t *testing.T) {
	// an explicit pattern set after a preset replaces it
	s := skema.String().Email().Pattern(`^[0-9]+$`)
	mustPass(t, s, skema.Str("123"))
	ec := mustFail(t, s, skema.Str("a@example.com"))
	if ec.Params["pattern"] != `^[0-9]+$` {
		t.Fatalf("pattern param = %v", ec.Params["pattern"])
	}
}

func TestStringCustomPredicate(t *testing.T) {
	s := skema.String().Custom(func(v string) error {
		if strings.Contains(v, " ") {
			return errors.New("must not contain spaces")
		}
		return nil
	})
	mustPass(t, s, skema.Str("ok"))
	ec := mustFail(t, s, skema.Str("not ok"))
	if ec.Code != skema.CodeStringCustom {
		t.Fatalf("code = %s", ec.Code)
	}
	if ec.Params["message"] != "must not contain spaces" {
		t.Fatalf("message param = %v", ec.Params["message"])
	}
	if ec.Message() != "must not contain spaces" {
		t.Fatalf("rendered = %q", ec.Message())
	}
}

func TestStringConstraintsRunBeforeTransforms(t *testing.T) {
	// the raw value is measured; trim happens only after constraints pass
	s := skema.String().MinLength(3).Trim()
	out := mustPass(t, s, skema.Str("  a"))
	if out.Str() != "a" {
		t.Fatalf("out = %q", out.Str())
	}
	ec := mustFail(t, skema.String().MaxLength(2).Trim(), skema.Str("  a"))
	if ec.Code != skema.CodeStringTooLong {
		t.Fatalf("code = %s", ec.Code)
	}
}

func TestStringTransformChainOrder(t *testing.T) {
	s := skema.String().Trim().Uppercase()
	out := mustPass(t, s, skema.Str("  abc  "))
	if out.Str() != "ABC" {
		t.Fatalf("out = %q", out.Str())
	}
}

func TestStringOptional(t *testing.T) {
	mustFail(t, skema.String(), skema.Null())
	out := mustPass(t, skema.String().MinLength(5).Optional(), skema.Null())
	if !out.IsNull() {
		t.Fatalf("optional null should pass through as null")
	}
}

func TestStringErrorMessageOverride(t *testing.T) {
	s := skema.String().MinLength(5).ErrorMessage(skema.CodeStringTooShort, "need {min}, got {length}")
	ec := mustFail(t, s, skema.Str("ab"))
	if ec.Message() != "need 5, got 2" {
		t.Fatalf("rendered = %q", ec.Message())
	}
	// an override for a code the node never emits is inert
	s2 := skema.String().ErrorMessage("number.min", "nope")
	ec = mustFail(t, s2, skema.Num(1))
	if ec.Code != skema.CodeStringInvalidType {
		t.Fatalf("code = %s", ec.Code)
	}
}
