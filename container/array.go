package container

import (
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// Array is the general container: a contiguous, indexed sequence of
// value.Item (spec §3 "Array ... The general Array stores Items").
type Array struct {
	hdr          heap.Header
	items        []value.Item
	isSpreadable bool
}

// NewArray returns an empty Array with the given ownership.
func NewArray(hdr heap.Header) *Array {
	return &Array{hdr: hdr}
}

// Header returns the container's ownership/ref-count header, satisfying
// heap.Freeable.
func (a *Array) Header() *heap.Header { return &a.hdr }

// ReleaseChildren drops this array's hold on each item it contains,
// satisfying heap.Freeable.
func (a *Array) ReleaseChildren(h *heap.Heap) {
	for _, it := range a.items {
		h.FreeItem(it)
	}
}

// Push appends an item (spec §4.4.1 "array_push").
func (a *Array) Push(it value.Item) { a.items = append(a.items, it) }

// SetSpreadable marks the array as spreadable: pushing it into a List
// splices its elements in rather than nesting it (spec §3, §4.4.1
// "array_spreadable").
func (a *Array) SetSpreadable() { a.isSpreadable = true }

// IsSpreadable reports whether this array splices into a containing List.
func (a *Array) IsSpreadable() bool { return a.isSpreadable }

// Len returns the element count.
func (a *Array) Len() int { return len(a.items) }

// Get returns the item at index i, or value.Null if i is out of bounds
// (spec §4.4.1 "array_get(arr, i) returns NULL on out-of-bounds, never an
// error").
func (a *Array) Get(i int) value.Item {
	if i < 0 || i >= len(a.items) {
		return value.Null
	}
	return a.items[i]
}

// Items returns the array's elements; callers must not mutate the slice.
func (a *Array) Items() []value.Item { return a.items }

// End finalises the array into an Item (spec §4.4.1 "array_end(arr) ->
// Item").
func (a *Array) End() value.Item {
	return value.FromContainerRef(value.KindArray, a)
}
