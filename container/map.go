package container

import (
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

// Map stores fields packed according to its TypeMap's shape (spec §3
// "Map. {type: *TypeMap, data: raw bytes, data_cap, ref_cnt, is_heap}.
// Fields are stored packed in data at byte offsets dictated by the map's
// shape"). See the package doc comment for why data is a []value.Item
// slot array, indexed by shape position, rather than a raw byte buffer.
type Map struct {
	hdr  heap.Header
	typ  *types.TypeMap
	data []value.Item
}

// NewMap binds a new map to typ, pulled from the context's type list
// (spec §4.4.2 "map(type_index) binds a new map to an existing TypeMap").
func NewMap(hdr heap.Header, typ *types.TypeMap) *Map {
	return &Map{hdr: hdr, typ: typ, data: make([]value.Item, typ.Length())}
}

// Header satisfies heap.Freeable.
func (m *Map) Header() *heap.Header { return &m.hdr }

// ReleaseChildren drops this map's hold on each field value.
func (m *Map) ReleaseChildren(h *heap.Heap) {
	for _, it := range m.data {
		h.FreeItem(it)
	}
}

// Type returns the map's shape descriptor.
func (m *Map) Type() *types.TypeMap { return m.typ }

// Put appends a field, extending the map's shape if key is new (spec
// §4.3 "map_put(map, key, value) — append a field using
// alloc_shape_entry"). Writing an existing key overwrites its slot without
// growing the shape.
func (m *Map) Put(key string, fieldType *types.Type, val value.Item) {
	if entry, ok := m.typ.Field(key); ok {
		idx := shapeIndex(m.typ.Shape(), entry)
		m.data[idx] = val
		return
	}
	m.typ.Extend(key, fieldType)
	m.data = append(m.data, val)
}

// Get walks the shape linearly, matching by key name (spec §4.4.2
// "map_get(map, key_item) walks the shape linearly"). A shape entry with
// no name is a nested embedded map: the lookup recurses into it and, on
// miss, continues with the next sibling (mixin-style composition).
func (m *Map) Get(key string) (value.Item, bool) {
	idx := 0
	for e := m.typ.Shape(); e != nil; e = e.Next() {
		name, hasName := e.Name()
		if hasName && name == key {
			if idx < len(m.data) {
				return m.data[idx], true
			}
			return value.Null, true
		}
		if !hasName && idx < len(m.data) {
			if nested, ok := m.data[idx].Ref().(*Map); ok {
				if v, found := nested.Get(key); found {
					return v, true
				}
			}
		}
		idx++
	}
	return value.Null, false
}

// Keys returns the map's field names in shape order, skipping unnamed
// embedded-map entries (spec §4.4.2 "item_keys(item) returns a list of
// structural name strings in shape order").
func (m *Map) Keys() []string {
	var keys []string
	for e := m.typ.Shape(); e != nil; e = e.Next() {
		if name, hasName := e.Name(); hasName {
			keys = append(keys, name)
		}
	}
	return keys
}

// End finalises the map into an Item.
func (m *Map) End() value.Item {
	return value.FromContainerRef(value.KindMap, m)
}

// shapeIndex returns target's position in the shape starting at head.
func shapeIndex(head, target *types.ShapeEntry) int {
	i := 0
	for e := head; e != nil; e = e.Next() {
		if e == target {
			return i
		}
		i++
	}
	return -1
}
