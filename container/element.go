package container

import (
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

// Element is a superset of Map: it carries a tag name and an ordered list
// of content children, modelled as an XML/HTML-ish node
// (spec §3 "Element. Superset of Map: has an associated tag name and an
// ordered list of content children").
type Element struct {
	Map
	typ      *types.TypeElmt
	children []value.Item
}

// NewElement creates an element bound to typ (spec §4.4.2 "elmt(type_index)
// ... creates an element bound to a TypeElmt").
func NewElement(hdr heap.Header, typ *types.TypeElmt) *Element {
	return &Element{
		Map: Map{hdr: hdr, typ: &typ.TypeMap, data: make([]value.Item, typ.Length())},
		typ: typ,
	}
}

// ElementType returns the element's type descriptor.
func (e *Element) ElementType() *types.TypeElmt { return e.typ }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.typ.Tag() }

// PushChild appends a content child, leaving finalisation to the caller
// via list_push/list_end on the builder side (spec §4.4.2 "elmt_fill
// ... leaving element body population to the caller via list_push before
// list_end").
func (e *Element) PushChild(it value.Item) { e.children = append(e.children, it) }

// Children returns the element's ordered content children.
func (e *Element) Children() []value.Item { return e.children }

// ReleaseChildren drops the element's hold on its attribute fields and its
// content children.
func (e *Element) ReleaseChildren(h *heap.Heap) {
	e.Map.ReleaseChildren(h)
	for _, it := range e.children {
		h.FreeItem(it)
	}
}

// End finalises the element into an Item.
func (e *Element) End() value.Item {
	return value.FromContainerRef(value.KindElement, e)
}
