package types

// TypeMap describes a map's field layout: the ordered shape that drives
// byte packing, its entry count, and the exact packed footprint (§3
// "TypeMap{length, byte_size, shape: ShapeEntry*}").
type TypeMap struct {
	Type
	shape    *ShapeEntry
	length   int
	byteSize int
}

// NewTypeMap returns an empty TypeMap descriptor ready to grow via Extend.
func NewTypeMap(name string) *TypeMap {
	return &TypeMap{Type: Type{base: BaseMap, name: name}}
}

// Shape returns the head of the field-descriptor list, or nil if empty.
func (m *TypeMap) Shape() *ShapeEntry { return m.shape }

// Length returns the number of fields in the shape.
func (m *TypeMap) Length() int { return m.length }

// ByteSize returns the packed footprint in bytes of an instance of this map.
func (m *TypeMap) ByteSize() int { return m.byteSize }

// Extend appends a field to the shape, growing it monotonically (§3
// "adding a field extends the shape (monotonically) for that instance's
// map type"; §4.3 invariant "TypeMap.length equals the number of entries;
// TypeMap.byte_size equals the end offset of the last entry"). It returns
// the new entry.
func (m *TypeMap) Extend(name string, fieldType Descriptor) *ShapeEntry {
	entry := AllocShapeEntry(name, true, fieldType, Last(m.shape))
	if m.shape == nil {
		m.shape = entry
	}
	m.length++
	m.byteSize = entry.byteOffset + sizeOf(entry.fieldType)
	return entry
}

// ExtendEmbedded appends an unnamed nested-map field to the shape.
func (m *TypeMap) ExtendEmbedded(fieldType Descriptor) *ShapeEntry {
	entry := AllocShapeEntry("", false, fieldType, Last(m.shape))
	if m.shape == nil {
		m.shape = entry
	}
	m.length++
	m.byteSize = entry.byteOffset + sizeOf(entry.fieldType)
	return entry
}

// Field looks up a field descriptor by name.
func (m *TypeMap) Field(name string) (*ShapeEntry, bool) {
	return Find(m.shape, name)
}

// TypeElmt describes an element's type: a TypeMap of attributes plus a tag
// name and expected child count (§3 "TypeElmt : TypeMap {name: StrView,
// content_length}").
type TypeElmt struct {
	TypeMap
	tag           string
	contentLength int // 0 means unconstrained
}

// NewTypeElmt returns an empty TypeElmt descriptor for elements tagged tag.
// An empty tag means any tag is accepted (§4.5 "if the type's name is
// non-empty, compare to the element's tag").
func NewTypeElmt(tag string) *TypeElmt {
	e := &TypeElmt{tag: tag}
	e.base = BaseElement
	e.name = tag
	return e
}

// Tag returns the element's required tag, or "" if any tag is accepted.
func (e *TypeElmt) Tag() string { return e.tag }

// ContentLength returns the required child count, or 0 if unconstrained.
func (e *TypeElmt) ContentLength() int { return e.contentLength }

// SetContentLength fixes the required child count.
func (e *TypeElmt) SetContentLength(n int) { e.contentLength = n }
