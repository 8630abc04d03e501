package container

import (
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// List is like Array but finalises under a flattening rule: a one-element
// list collapses to its element, an empty list collapses to NULL, and
// spreadable arrays pushed into it splice their elements in rather than
// nesting (spec §3 "List").
type List struct {
	hdr   heap.Header
	items []value.Item
}

// NewList returns an empty List.
func NewList(hdr heap.Header) *List {
	return &List{hdr: hdr}
}

// Header satisfies heap.Freeable.
func (l *List) Header() *heap.Header { return &l.hdr }

// ReleaseChildren drops this list's hold on each item it contains.
func (l *List) ReleaseChildren(h *heap.Heap) {
	for _, it := range l.items {
		h.FreeItem(it)
	}
}

// Push appends an item. If it is a spreadable Array, its elements are
// spliced in directly (spec §4.4.1 "Spreadable arrays, when pushed into a
// list, splice their elements in rather than nesting").
func (l *List) Push(it value.Item) {
	if it.Kind() == value.KindArray {
		if arr, ok := it.Ref().(*Array); ok && arr.IsSpreadable() {
			l.items = append(l.items, arr.Items()...)
			return
		}
	}
	l.items = append(l.items, it)
}

// Len returns the element count.
func (l *List) Len() int { return len(l.items) }

// Get returns the item at index i, or value.Null if out of bounds.
func (l *List) Get(i int) value.Item {
	if i < 0 || i >= len(l.items) {
		return value.Null
	}
	return l.items[i]
}

// Items returns the list's elements; callers must not mutate the slice.
func (l *List) Items() []value.Item { return l.items }

// End finalises the list, applying the flattening rule: empty -> NULL,
// one element -> that element, otherwise the List itself (spec §4.4.1
// "list_end(list) -> Item ... applies the flattening rule").
func (l *List) End() value.Item {
	switch len(l.items) {
	case 0:
		return value.Null
	case 1:
		return l.items[0]
	default:
		return value.FromContainerRef(value.KindList, l)
	}
}
