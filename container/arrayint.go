package container

import (
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// ArrayInt is a typed array of unboxed 56-bit-range ints (spec §3 "The
// typed variants store unboxed primitives").
type ArrayInt struct {
	hdr   heap.Header
	items []int64
}

// NewArrayInt returns an ArrayInt pre-sized to length, as array_int_new
// does (spec §4.4.1 "array_int(), each with *_new(len) (pre-sized without
// frame coupling)").
func NewArrayInt(hdr heap.Header, length int) *ArrayInt {
	return &ArrayInt{hdr: hdr, items: make([]int64, length)}
}

// Header satisfies heap.Freeable.
func (a *ArrayInt) Header() *heap.Header { return &a.hdr }

// ReleaseChildren is a no-op: ArrayInt holds unboxed scalars, never
// ref-counted children.
func (a *ArrayInt) ReleaseChildren(h *heap.Heap) {}

// Len returns the element count.
func (a *ArrayInt) Len() int { return len(a.items) }

// Set writes the value at index i.
func (a *ArrayInt) Set(i int, v int64) { a.items[i] = v }

// Raw returns the backing slice; callers must not retain it past the
// array's lifetime.
func (a *ArrayInt) Raw() []int64 { return a.items }

// Get returns the value at index i as an inline INT Item, or value.Null if
// i is out of bounds. Elements are INT-sized, so no numeric-stack boxing is
// needed and h is not used.
func (a *ArrayInt) Get(h *heap.Heap, i int) value.Item {
	if i < 0 || i >= len(a.items) {
		return value.Null
	}
	return value.FromInt(a.items[i])
}

// End finalises the array into an Item.
func (a *ArrayInt) End() value.Item {
	return value.FromContainerRef(value.KindArrayInt, a)
}

// ArrayInt64 is a typed array of boxed-width 64-bit ints.
type ArrayInt64 struct {
	hdr   heap.Header
	items []int64
}

// NewArrayInt64 returns an ArrayInt64 pre-sized to length.
func NewArrayInt64(hdr heap.Header, length int) *ArrayInt64 {
	return &ArrayInt64{hdr: hdr, items: make([]int64, length)}
}

// Header satisfies heap.Freeable.
func (a *ArrayInt64) Header() *heap.Header { return &a.hdr }

// ReleaseChildren is a no-op.
func (a *ArrayInt64) ReleaseChildren(h *heap.Heap) {}

// Len returns the element count.
func (a *ArrayInt64) Len() int { return len(a.items) }

// Set writes the value at index i.
func (a *ArrayInt64) Set(i int, v int64) { a.items[i] = v }

// Raw returns the backing slice.
func (a *ArrayInt64) Raw() []int64 { return a.items }

// Get boxes the value at index i via h's numeric stack.
func (a *ArrayInt64) Get(h *heap.Heap, i int) value.Item {
	if i < 0 || i >= len(a.items) {
		return value.Null
	}
	return h.PushInt64(a.items[i])
}

// End finalises the array into an Item.
func (a *ArrayInt64) End() value.Item {
	return value.FromContainerRef(value.KindArrayInt64, a)
}

// ArrayFloat is a typed array of doubles.
type ArrayFloat struct {
	hdr   heap.Header
	items []float64
}

// NewArrayFloat returns an ArrayFloat pre-sized to length.
func NewArrayFloat(hdr heap.Header, length int) *ArrayFloat {
	return &ArrayFloat{hdr: hdr, items: make([]float64, length)}
}

// Header satisfies heap.Freeable.
func (a *ArrayFloat) Header() *heap.Header { return &a.hdr }

// ReleaseChildren is a no-op.
func (a *ArrayFloat) ReleaseChildren(h *heap.Heap) {}

// Len returns the element count.
func (a *ArrayFloat) Len() int { return len(a.items) }

// Set writes the value at index i.
func (a *ArrayFloat) Set(i int, v float64) { a.items[i] = v }

// Raw returns the backing slice.
func (a *ArrayFloat) Raw() []float64 { return a.items }

// Get boxes the value at index i via h's numeric stack.
func (a *ArrayFloat) Get(h *heap.Heap, i int) value.Item {
	if i < 0 || i >= len(a.items) {
		return value.Null
	}
	return h.PushFloat64(a.items[i])
}

// End finalises the array into an Item.
func (a *ArrayFloat) End() value.Item {
	return value.FromContainerRef(value.KindArrayFloat, a)
}
