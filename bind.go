package skema

import gojson "github.com/goccy/go-json"

// Bind validates v against s and decodes the sanitized output into T. The
// round-trip goes through JSON, so T's json tags apply.
func Bind[T any](s Schema, v Value) (T, error) {
	var out T
	sanitized, err := Evaluate(s, v)
	if err != nil {
		return out, err
	}
	raw, err := sanitized.MarshalJSON()
	if err != nil {
		return out, err
	}
	if err := gojson.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
