package github

import (
	"github.com/jmgilman/ghrest/errors"
	"github.com/jmgilman/ghrest/github/field"
)

// decoder keeps the first error raised while reading an entity so that the
// remaining fields can still be read without checking after every call.
type decoder struct {
	entity string
	obj    field.Object
	err    error
}

func newDecoder(entity string, obj field.Object) *decoder {
	return &decoder{entity: entity, obj: obj}
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = errors.WithContext(err, "entity", d.entity)
	}
}

// keep records an error raised by a nested entity, which already names
// itself.
func (d *decoder) keep(err error) {
	if d.err == nil {
		d.err = err
	}
}

// readEnum reads an enum member through table.
func readEnum[T comparable](d *decoder, table field.EnumTable[T], key string) T {
	v, err := table.Read(d.obj, key)
	if err != nil {
		d.fail(err)
	}
	return v
}

// readNested decodes the object at key, returning the zero value when the
// member is absent or null.
func readNested[T any](d *decoder, key string, decode DecodeFunc[T]) T {
	var zero T
	child := d.obj.Object(key)
	if child == nil {
		return zero
	}
	v, err := decode(child)
	if err != nil {
		d.keep(err)
		return zero
	}
	return v
}

// readList decodes the array of objects at key, keeping its order.
func readList[T any](d *decoder, key string, decode DecodeFunc[T]) []T {
	items := d.obj.Array(key, nil)
	if items == nil {
		return nil
	}
	out, err := field.Objects[T](items, decode)
	if err != nil {
		d.keep(err)
		return nil
	}
	return out
}
