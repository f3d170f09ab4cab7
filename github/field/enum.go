package field

import (
	"fmt"

	"github.com/jmgilman/ghrest/errors"
)

// EnumTable maps a closed set of Go constants to their wire strings.
//
// The zero value of T is reserved for "unset": it never appears in the table
// and is what Read returns for absent or null members.
type EnumTable[T comparable] struct {
	name     string
	toWire   map[T]string
	fromWire map[string]T
}

// NewEnumTable builds a table named name (used in error messages) from the
// constant -> wire string pairs. It panics on duplicate wire strings or when
// the zero value is mapped, both of which are programming errors.
func NewEnumTable[T comparable](name string, pairs map[T]string) EnumTable[T] {
	var zero T
	table := EnumTable[T]{
		name:     name,
		toWire:   make(map[T]string, len(pairs)),
		fromWire: make(map[string]T, len(pairs)),
	}
	for v, wire := range pairs {
		if v == zero {
			panic(fmt.Sprintf("field: enum %s maps its zero value", name))
		}
		if _, dup := table.fromWire[wire]; dup {
			panic(fmt.Sprintf("field: enum %s maps %q twice", name, wire))
		}
		table.toWire[v] = wire
		table.fromWire[wire] = v
	}
	return table
}

// Parse returns the constant for wire. Matching is exact and case-sensitive.
func (e EnumTable[T]) Parse(wire string) (T, error) {
	if v, ok := e.fromWire[wire]; ok {
		return v, nil
	}
	var zero T
	err := errors.Newf(errors.CodeDecodeFailed, "unknown %s value %q", e.name, wire)
	err = errors.WithContext(err, "enum", e.name)
	return zero, errors.WithContext(err, "value", wire)
}

// Wire returns the wire string for v, or "" for the unset value and for
// constants outside the table.
func (e EnumTable[T]) Wire(v T) string {
	return e.toWire[v]
}

// Read decodes the enum at key. Absent and null members yield the zero
// value; a non-string or unknown string is a decode error.
func (e EnumTable[T]) Read(obj Object, key string) (T, error) {
	var zero T
	raw, ok := obj[key]
	if !ok || raw == nil {
		return zero, nil
	}
	wire, ok := raw.(string)
	if !ok {
		err := errors.Newf(errors.CodeDecodeFailed, "%s must be a string, got %s", e.name, kind(raw))
		return zero, errors.WithContext(err, "field", key)
	}
	v, err := e.Parse(wire)
	if err != nil {
		return zero, errors.WithContext(err, "field", key)
	}
	return v, nil
}
