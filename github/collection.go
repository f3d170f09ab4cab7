package github

import (
	"slices"

	"github.com/jmgilman/ghrest/github/field"
)

// Collection is one page of a counted list response. TotalCount is the
// server's total across all pages and is independent of Len.
type Collection[T any] struct {
	totalCount int
	items      []T
}

// NewCollection builds a collection from a declared total and a page of
// items. The items slice is copied.
func NewCollection[T any](totalCount int, items []T) *Collection[T] {
	return &Collection[T]{
		totalCount: totalCount,
		items:      append(make([]T, 0, len(items)), items...),
	}
}

// DecodeCollection reads the total from countKey and decodes each element
// of the itemsKey array in order. A missing array is an empty page.
func DecodeCollection[T any](
	obj field.Object,
	countKey, itemsKey string,
	decode DecodeFunc[T],
) (*Collection[T], error) {
	items, err := field.Objects[T](obj.Array(itemsKey, nil), decode)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{
		totalCount: obj.Int(countKey, 0),
		items:      items,
	}, nil
}

// TotalCount returns the declared total across all pages.
func (c *Collection[T]) TotalCount() int {
	return c.totalCount
}

// Items returns a copy of the materialized page.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items in this page.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
