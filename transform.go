package skema

import (
	"math"
	"strconv"
	"strings"
)

// Transform rewrites a value after its constraints have passed. Transforms
// run in registration order; each receives the previous one's output.
//
// A transform must return a value, never fail. Built-in transforms pass
// values of a non-matching kind through untouched.
type Transform func(Value) Value

// Trim removes leading and trailing whitespace from string values.
func Trim(v Value) Value {
	if v.Kind() != KindString {
		return v
	}
	return Str(strings.TrimSpace(v.Str()))
}

// Lowercase lower-cases string values.
func Lowercase(v Value) Value {
	if v.Kind() != KindString {
		return v
	}
	return Str(strings.ToLower(v.Str()))
}

// Uppercase upper-cases string values.
func Uppercase(v Value) Value {
	if v.Kind() != KindString {
		return v
	}
	return Str(strings.ToUpper(v.Str()))
}

// ParseNumber converts numeric string values to numbers. Strings that do not
// parse are passed through unchanged.
func ParseNumber(v Value) Value {
	if v.Kind() != KindString {
		return v
	}
	f, err := strconv.ParseFloat(v.Str(), 64)
	if err != nil {
		return v
	}
	return Num(f)
}

// ToInteger truncates number values toward negative infinity.
func ToInteger(v Value) Value {
	if v.Kind() != KindNumber {
		return v
	}
	return Num(math.Floor(v.Float()))
}

// Stringify renders scalar values as strings. Arrays, objects and null pass
// through unchanged.
func Stringify(v Value) Value {
	switch v.Kind() {
	case KindString:
		return v
	case KindBool:
		return Str(strconv.FormatBool(v.Bool()))
	case KindNumber:
		return Str(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	}
	return v
}

func applyTransforms(v Value, ts []Transform) Value {
	for _, t := range ts {
		v = t(v)
	}
	return v
}
