package skema

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"
)

var errNonFiniteNumber = errors.New("skema: NaN and Inf are not representable in JSON")

// Kind identifies the runtime type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a generic JSON-like value: null, boolean, number, string, array or
// object. Objects preserve insertion order. The zero Value is null.
//
// Values handed to Evaluate are never mutated; validation builds fresh Values
// for its output.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  *object
}

// object is an insertion-ordered string->Value mapping.
type object struct {
	keys []string
	m    map[string]Value
}

func newObject(capacity int) *object {
	return &object{keys: make([]string, 0, capacity), m: make(map[string]Value, capacity)}
}

func (o *object) set(key string, v Value) {
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num returns a number Value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Str returns a string Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Arr returns an array Value over the given elements.
func Arr(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Member is a single key/value pair of an object Value.
type Member struct {
	Key   string
	Value Value
}

// M builds a Member for use with Obj.
func M(key string, v Value) Member { return Member{Key: key, Value: v} }

// Obj returns an object Value. Key order follows first insertion; a repeated
// key overwrites the earlier value in place.
func Obj(members ...Member) Value {
	o := newObject(len(members))
	for _, m := range members {
		o.set(m.Key, m.Value)
	}
	return Value{kind: KindObject, obj: o}
}

func objectValue(o *object) Value { return Value{kind: KindObject, obj: o} }

// Kind reports the runtime type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; false for non-boolean values.
func (v Value) Bool() bool { return v.b }

// Float returns the numeric payload; zero for non-number values.
func (v Value) Float() float64 { return v.num }

// Str returns the string payload; empty for non-string values.
func (v Value) Str() string { return v.str }

// Len returns the element count for arrays and the key count for objects;
// zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj.keys)
	}
	return 0
}

// Items returns the elements of an array value. The returned slice must not
// be mutated.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns an object's keys in insertion order. The returned slice must
// not be mutated.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.keys
}

// Get looks up a key of an object value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	val, ok := v.obj.m[key]
	return val, ok
}

// Equal reports deep equality. Objects compare by key set and per-key values;
// key order is not significant for equality.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj.keys) != len(w.obj.keys) {
			return false
		}
		for k, val := range v.obj.m {
			other, ok := w.obj.m[k]
			if !ok || !val.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value as JSON for debugging.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<" + v.kind.String() + ">"
	}
	return string(b)
}

// MarshalJSON encodes the value, keeping object keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return errNonFiniteNumber
		}
		buf.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindString:
		b, err := gojson.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := gojson.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := v.obj.m[k].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
