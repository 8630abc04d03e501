package types

// TypeArray describes an array/list type: an optional nested element type
// and an expected length (§3 "TypeArray{nested: *Type, length}"). A nil
// Nested means an untyped array — elements are not individually validated.
type TypeArray struct {
	Type
	nested Descriptor
	length int // 0 means unconstrained
}

// NewTypeArray returns a TypeArray descriptor. nested may be nil for an
// untyped array, a primitive *Type, or any composite descriptor (TypeMap,
// TypeElmt, TypeUnary, TypeType, Union) for an array of non-scalar items.
func NewTypeArray(nested Descriptor) *TypeArray {
	return &TypeArray{Type: Type{base: BaseArray}, nested: nested}
}

// Nested returns the declared element type, or nil if untyped.
func (a *TypeArray) Nested() Descriptor { return a.nested }

// Length returns the required element count, or 0 if unconstrained.
func (a *TypeArray) Length() int { return a.length }

// SetLength fixes the required element count.
func (a *TypeArray) SetLength(n int) { a.length = n }
