package github

import (
	"fmt"

	"github.com/jmgilman/ghrest/github/field"
)

// Format selects how a response body is handed back to the caller.
type Format int

const (
	// FormatTyped decodes the body into the endpoint's entity type. It is the
	// zero value.
	FormatTyped Format = iota

	// FormatJSON parses the body into a generic map[string]any or []any.
	FormatJSON

	// FormatText returns the body unchanged, without parsing it.
	FormatText
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTyped:
		return "typed"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DecodeFunc builds an entity from a decoded JSON object.
type DecodeFunc[T any] func(field.Object) (T, error)

// Result holds one materialized response. Only the accessor matching
// Format carries data; the others return zero values.
type Result[T any] struct {
	format Format
	json   any
	typed  T
	text   string
}

// Format returns the representation this result was materialized into.
func (r *Result[T]) Format() Format {
	return r.format
}

// JSON returns the generic value for FormatJSON results: a map[string]any
// for objects or a []any for arrays. Numbers are json.Number.
func (r *Result[T]) JSON() any {
	return r.json
}

// Typed returns the decoded entity for FormatTyped results.
func (r *Result[T]) Typed() T {
	return r.typed
}

// Text returns the raw body for FormatText results.
func (r *Result[T]) Text() string {
	return r.text
}

// Materialize turns a single-object response body into the representation
// selected by f. It panics if f is not one of the declared formats.
func Materialize[T any](raw []byte, f Format, decode DecodeFunc[T]) (*Result[T], error) {
	return materialize(raw, f, func(raw []byte) (T, error) {
		var zero T
		obj, err := field.ParseObject(raw)
		if err != nil {
			return zero, err
		}
		return decode(obj)
	})
}

// MaterializeList turns a JSON array body into the representation selected
// by f. Typed lists keep the array's order.
func MaterializeList[T any](raw []byte, f Format, decode DecodeFunc[T]) (*Result[[]T], error) {
	return materialize(raw, f, func(raw []byte) ([]T, error) {
		items, err := field.ParseArray(raw)
		if err != nil {
			return nil, err
		}
		return field.Objects[T](items, decode)
	})
}

// MaterializeCollection turns a counted list body, such as
// {"total_count": 57, "repositories": [...]}, into the representation
// selected by f.
func MaterializeCollection[T any](
	raw []byte,
	f Format,
	countKey, itemsKey string,
	decode DecodeFunc[T],
) (*Result[*Collection[T]], error) {
	return materialize(raw, f, func(raw []byte) (*Collection[T], error) {
		obj, err := field.ParseObject(raw)
		if err != nil {
			return nil, err
		}
		return DecodeCollection(obj, countKey, itemsKey, decode)
	})
}

func materialize[T any](raw []byte, f Format, typed func([]byte) (T, error)) (*Result[T], error) {
	switch f {
	case FormatText:
		return &Result[T]{format: f, text: string(raw)}, nil
	case FormatJSON:
		v, err := field.Parse(raw)
		if err != nil {
			return nil, err
		}
		return &Result[T]{format: f, json: v}, nil
	case FormatTyped:
		v, err := typed(raw)
		if err != nil {
			return nil, err
		}
		return &Result[T]{format: f, typed: v}, nil
	}
	panic(fmt.Sprintf("github: unknown format %d", int(f)))
}
