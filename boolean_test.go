package skema_test

import (
	"testing"

	"github.com/skemaly/skema"
)

func TestBoolean(t *testing.T) {
	out := mustPass(t, skema.Boolean(), skema.Bool(true))
	if !out.Bool() {
		t.Fatalf("out = %v", out)
	}
	ec := mustFail(t, skema.Boolean(), skema.Str("true"))
	if ec.Code != skema.CodeBooleanInvalidType {
		t.Fatalf("code = %s", ec.Code)
	}
	mustFail(t, skema.Boolean(), skema.Null())
	mustPass(t, skema.Boolean().Optional(), skema.Null())
}
