// Package json decodes JSON documents into skema values, preserving object
// key order.
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/skemaly/skema"
)

// DecodeBytes decodes a single JSON document from data. Trailing non-space
// content after the document is an error.
func DecodeBytes(data []byte) (skema.Value, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes a single JSON document from r.
func DecodeReader(r io.Reader) (skema.Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return skema.Value{}, err
	}
	switch _, err := dec.Token(); err {
	case io.EOF:
		return v, nil
	case nil:
		return skema.Value{}, errors.New("json: trailing data after document")
	default:
		return skema.Value{}, err
	}
}

func decodeValue(dec *gojson.Decoder) (skema.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return skema.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *gojson.Decoder, tok gojson.Token) (skema.Value, error) {
	switch t := tok.(type) {
	case nil:
		return skema.Null(), nil
	case bool:
		return skema.Bool(t), nil
	case string:
		return skema.Str(t), nil
	case gojson.Number:
		f, err := t.Float64()
		if err != nil {
			return skema.Value{}, err
		}
		return skema.Num(f), nil
	case float64:
		return skema.Num(t), nil
	case gojson.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
		return skema.Value{}, fmt.Errorf("json: unexpected delimiter %q", t.String())
	}
	return skema.Value{}, fmt.Errorf("json: unexpected token %v", tok)
}

func decodeArray(dec *gojson.Decoder) (skema.Value, error) {
	var items []skema.Value
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return skema.Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return skema.Value{}, err
	}
	return skema.Arr(items...), nil
}

func decodeObject(dec *gojson.Decoder) (skema.Value, error) {
	var members []skema.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return skema.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return skema.Value{}, fmt.Errorf("json: object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return skema.Value{}, err
		}
		members = append(members, skema.M(key, val))
	}
	if _, err := dec.Token(); err != nil { // closing }
		return skema.Value{}, err
	}
	return skema.Obj(members...), nil
}
