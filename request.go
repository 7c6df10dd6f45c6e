package stdagent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Request is the decoded input of one invocation. Values are JSON-compatible:
// string, json.Number, bool, nil, map[string]any and []any.
type Request map[string]any

// DecodeRequest decodes data as exactly one JSON object.
func DecodeRequest(data []byte) (Request, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode request: %w", ErrTrailingData)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode request: %w: got %s", ErrNotObject, jsonKind(v))
	}

	return Request(obj), nil
}

// Lookup returns the value stored under key. JSON null counts as absent.
func (r Request) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// String returns the value under key if it is a JSON string, def otherwise.
func (r Request) String(key, def string) string {
	v, ok := r.Lookup(key)
	if !ok {
		return def
	}

	s, ok := v.(string)
	if !ok {
		return def
	}

	return s
}

// Text returns the value under key coerced to text. Strings are returned
// as-is, numbers by their literal, booleans as true/false and objects or
// arrays as compact JSON. Absent keys yield def.
func (r Request) Text(key, def string) string {
	v, ok := r.Lookup(key)
	if !ok {
		return def
	}

	return toText(v)
}

// Bool returns the value under key if it is a JSON boolean, def otherwise.
func (r Request) Bool(key string, def bool) bool {
	v, ok := r.Lookup(key)
	if !ok {
		return def
	}

	b, ok := v.(bool)
	if !ok {
		return def
	}

	return b
}

// Int returns the value under key if it is an integral JSON number, def otherwise.
func (r Request) Int(key string, def int64) int64 {
	v, ok := r.Lookup(key)
	if !ok {
		return def
	}

	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return def
		}

		return i
	case int:
		return int64(n)
	case int64:
		return n
	default:
		return def
	}
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
