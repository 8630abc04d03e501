package types

// ShapeEntry is one field descriptor in a shape: an ordered, singly-linked
// list of {name, type, byte_offset} attached to a TypeMap/TypeElmt (§3, §4.3
// "a ShapeEntry is {name: *StrView|nil, type: *Type, byte_offset, next}").
// A nil Name marks a nested embedded map rather than a named field.
type ShapeEntry struct {
	name       string
	hasName    bool
	fieldType  Descriptor
	byteOffset int
	next       *ShapeEntry
}

// Name returns the field's key, and false if this entry describes a
// nested embedded map rather than a named field.
func (s *ShapeEntry) Name() (string, bool) { return s.name, s.hasName }

// Type returns the field's declared type: a primitive *Type, or any
// composite descriptor (TypeMap, TypeElmt, TypeArray, TypeUnary, TypeType,
// Union) when the field holds a nested structure.
func (s *ShapeEntry) Type() Descriptor { return s.fieldType }

// ByteOffset is the field's packed byte offset within the owning Map's
// data buffer.
func (s *ShapeEntry) ByteOffset() int { return s.byteOffset }

// Next returns the following entry in shape order, or nil at the end.
func (s *ShapeEntry) Next() *ShapeEntry { return s.next }

// sizeOf returns the packed byte width a field of typ occupies, mirroring
// the representation rules in §3: small scalars store inline, everything
// else (strings, decimals, containers, boxed int64/float/datetime) stores
// as a pointer-sized reference.
func sizeOf(typ Descriptor) int {
	const wordSize = 8
	if typ == nil {
		return wordSize
	}
	return wordSize
}

// AllocShapeEntry appends a field descriptor after prev, placing it at
// prev.byte_offset + sizeof(prev.type) (or byte offset 0 if prev is nil),
// per §4.3 "alloc_shape_entry(pool, key, type_id, prev)".
func AllocShapeEntry(name string, hasName bool, fieldType Descriptor, prev *ShapeEntry) *ShapeEntry {
	offset := 0
	if prev != nil {
		offset = prev.byteOffset + sizeOf(prev.fieldType)
	}
	entry := &ShapeEntry{
		name:       name,
		hasName:    hasName,
		fieldType:  fieldType,
		byteOffset: offset,
	}
	if prev != nil {
		prev.next = entry
	}
	return entry
}

// ShapeLen counts the entries in a shape starting at head.
func ShapeLen(head *ShapeEntry) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}

// ByteSize returns the end offset of the last entry in the shape, i.e. the
// exact packed footprint of a Map/Element using it (§3 "byte_size is the
// exact packed footprint").
func ByteSize(head *ShapeEntry) int {
	last := Last(head)
	if last == nil {
		return 0
	}
	return last.byteOffset + sizeOf(last.fieldType)
}

// Last returns the final entry in the shape, or nil if head is nil.
func Last(head *ShapeEntry) *ShapeEntry {
	if head == nil {
		return nil
	}
	e := head
	for e.next != nil {
		e = e.next
	}
	return e
}

// Find looks up a field by name, walking the shape linearly (§3 "reads by
// key name are linear in shape length").
func Find(head *ShapeEntry, name string) (*ShapeEntry, bool) {
	for e := head; e != nil; e = e.next {
		if e.hasName && e.name == name {
			return e, true
		}
	}
	return nil, false
}
