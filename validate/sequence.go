package validate

import (
	"github.com/lambda-lang/core/container"
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// sequence exposes a uniform (length, element-at) view over every
// container kind the validator treats as an ordered sequence: Array,
// List, and the typed numeric arrays. Mirrors container's own unexported
// sequence helper (aggregate.go), reimplemented here since it is not
// part of container's public API.
func sequence(h *heap.Heap, it value.Item) (get func(i int) value.Item, n int, ok bool) {
	switch it.Kind() {
	case value.KindArray:
		arr, isArr := it.Ref().(*container.Array)
		if !isArr {
			return nil, 0, false
		}
		return arr.Get, arr.Len(), true
	case value.KindList:
		l, isList := it.Ref().(*container.List)
		if !isList {
			return nil, 0, false
		}
		return l.Get, l.Len(), true
	case value.KindArrayInt:
		arr, isArr := it.Ref().(*container.ArrayInt)
		if !isArr {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	case value.KindArrayInt64:
		arr, isArr := it.Ref().(*container.ArrayInt64)
		if !isArr {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	case value.KindArrayFloat:
		arr, isArr := it.Ref().(*container.ArrayFloat)
		if !isArr {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	default:
		return nil, 0, false
	}
}

// mapOf extracts the *container.Map backing item, if item's kind is MAP or
// ELEMENT (an Element embeds Map, so it satisfies the Map-shaped dispatch
// rules TypeMap validation needs).
func mapOf(it value.Item) (*container.Map, bool) {
	switch it.Kind() {
	case value.KindMap:
		m, ok := it.Ref().(*container.Map)
		return m, ok
	case value.KindElement:
		e, ok := it.Ref().(*container.Element)
		if !ok {
			return nil, false
		}
		return &e.Map, true
	default:
		return nil, false
	}
}

// elementOf extracts the *container.Element backing item, if item's kind
// is ELEMENT.
func elementOf(it value.Item) (*container.Element, bool) {
	if it.Kind() != value.KindElement {
		return nil, false
	}
	e, ok := it.Ref().(*container.Element)
	return e, ok
}
