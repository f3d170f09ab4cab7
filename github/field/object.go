package field

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"github.com/jmgilman/ghrest/errors"
)

// Object is a decoded JSON object. A nil Object behaves like an empty one.
type Object map[string]any

// Parse decodes raw JSON into its generic form: Object-compatible
// map[string]any for objects, []any for arrays, json.Number for numbers.
// Numbers are kept as json.Number so 64-bit identifiers survive intact.
func Parse(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, decodeError(err, raw)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, decodeError(errors.New(errors.CodeDecodeFailed, "trailing data after JSON value"), raw)
	}
	return v, nil
}

// ParseObject decodes raw JSON that must be an object.
func ParseObject(raw []byte) (Object, error) {
	v, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, shapeError("object", v)
	}
	return Object(m), nil
}

// ParseArray decodes raw JSON that must be an array.
func ParseArray(raw []byte) ([]any, error) {
	v, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	a, ok := v.([]any)
	if !ok {
		return nil, shapeError("array", v)
	}
	return a, nil
}

// Has reports whether key is present, even if its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// IsNull reports whether key is present with a JSON null value.
func (o Object) IsNull(key string) bool {
	v, ok := o[key]
	return ok && v == nil
}

// String returns the string at key, or nil when the key is absent, null, or
// not a string.
func (o Object) String(key string) *string {
	s, ok := o[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// StringValue returns the string at key, or "" when it is unavailable.
func (o Object) StringValue(key string) string {
	s, _ := o[key].(string)
	return s
}

// Int returns the integer at key, or def when it is absent or not numeric.
func (o Object) Int(key string, def int) int {
	n, ok := toInt64(o[key])
	if !ok || n < math.MinInt || n > math.MaxInt {
		return def
	}
	return int(n)
}

// Int64 returns the integer at key, or def when it is absent or not numeric.
func (o Object) Int64(key string, def int64) int64 {
	n, ok := toInt64(o[key])
	if !ok {
		return def
	}
	return n
}

// Float64 returns the number at key, or def when it is absent or not numeric.
func (o Object) Float64(key string, def float64) float64 {
	switch v := o[key].(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// Bool returns the boolean at key, or false.
func (o Object) Bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

// Object returns the nested object at key, or nil.
func (o Object) Object(key string) Object {
	switch v := o[key].(type) {
	case map[string]any:
		return Object(v)
	case Object:
		return v
	}
	return nil
}

// Array returns the array at key, or def when it is absent or not an array.
func (o Object) Array(key string, def []any) []any {
	a, ok := o[key].([]any)
	if !ok {
		return def
	}
	return a
}

// Strings returns the string elements of the array at key. Non-string
// elements are skipped. Returns nil when the array is absent.
func (o Object) Strings(key string) []string {
	items := o.Array(key, nil)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Timestamp returns the ISO-8601 timestamp at key.
func (o Object) Timestamp(key string) Timestamp {
	s := o.String(key)
	if s == nil {
		return Timestamp{}
	}
	return NewTimestamp(*s)
}

// Objects decodes every element of items with decode, in order. A
// non-object element is a decode error.
func Objects[T any](items []any, decode func(Object) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		obj, ok := asObject(item)
		if !ok {
			err := shapeError("object", item)
			return nil, errors.WithContext(err, "index", i)
		}
		v, err := decode(obj)
		if err != nil {
			return nil, errors.WithContext(err, "index", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func asObject(v any) (Object, bool) {
	switch o := v.(type) {
	case map[string]any:
		return Object(o), true
	case Object:
		return o, true
	}
	return nil, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// GitHub occasionally renders integral values as 12.0.
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f), true
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), true
		}
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func decodeError(err error, raw []byte) error {
	wrapped := errors.Wrap(err, errors.CodeDecodeFailed, "malformed JSON")
	return errors.WithContext(wrapped, "size", len(raw))
}

func shapeError(want string, got any) error {
	err := errors.Newf(errors.CodeDecodeFailed, "expected JSON %s, got %s", want, kind(got))
	return errors.WithContext(err, "expected", want)
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	}
	return "value"
}
