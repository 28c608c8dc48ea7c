package skema_test

import (
	"testing"

	"github.com/skemaly/skema"
)

func TestArrayType(t *testing.T) {
	ec := mustFail(t, skema.Array(skema.Number()), skema.Num(1))
	if ec.Code != skema.CodeArrayInvalidType {
		t.Fatalf("code = %s", ec.Code)
	}
	out := mustPass(t, skema.Array(skema.Number()), skema.Arr())
	if out.Len() != 0 {
		t.Fatalf("empty array should validate with default bounds")
	}
}

func TestArrayBoundsCheckedBeforeElements(t *testing.T) {
	// the single element would fail too, but bounds are reported first
	s := skema.Array(skema.Number()).MinItems(2)
	ec := mustFail(t, s, skema.Arr(skema.Str("x")))
	if ec.Code != skema.CodeArrayMinItems {
		t.Fatalf("code = %s", ec.Code)
	}
	ec = mustFail(t, skema.Array(skema.Number()).MaxItems(1), skema.Arr(skema.Num(1), skema.Num(2)))
	if ec.Code != skema.CodeArrayMaxItems {
		t.Fatalf("code = %s", ec.Code)
	}
}

func TestArrayElementFailurePath(t *testing.T) {
	s := skema.Array(skema.String().MinLength(1))
	ec := mustFail(t, s, skema.Arr(skema.Str("a"), skema.Str("")))
	if ec.Code != skema.CodeStringTooShort {
		t.Fatalf("code = %s", ec.Code)
	}
	if got := ec.Path.String(); got != "/1" {
		t.Fatalf("path = %s, want /1", got)
	}
}

func TestArrayRebuildsFromTransformedElements(t *testing.T) {
	s := skema.Array(skema.String().Trim())
	out := mustPass(t, s, skema.Arr(skema.Str(" a "), skema.Str("b ")))
	want := skema.Arr(skema.Str("a"), skema.Str("b"))
	if !out.Equal(want) {
		t.Fatalf("out = %v, want %v", out, want)
	}
}

func TestArrayOptional(t *testing.T) {
	mustFail(t, skema.Array(skema.Number()), skema.Null())
	mustPass(t, skema.Array(skema.Number()).Optional(), skema.Null())
}
