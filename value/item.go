package value

import "math"

// Ref is an opaque handle to a heap-managed payload: a boxed scalar on the
// numeric stack, or a container (string, array, list, map, element, decimal,
// function, type). Package heap defines the concrete types behind Ref and
// is the only package that type-asserts Item.Ref() back to them; value
// itself never inspects what a Ref points to.
type Ref interface{}

// INT56Min and INT56Max bound the inline INT payload (§3 "INT — a signed
// integer small enough to fit the payload (56 bits signed)").
const (
	INT56Max = 1<<55 - 1
	INT56Min = -(1 << 55)
)

// Item is the tagged value used everywhere in the runtime: a Kind
// discriminant recoverable in O(1), an inline scalar payload for NULL,
// BOOL, and INT, and a Ref for every other kind (§9 "Tagged value without
// pointer tricks": this struct stands in for the source's pointer-tagged
// 64-bit word).
type Item struct {
	kind   Kind
	scalar uint64 // inline payload for KindBool, KindInt
	ref    Ref    // heap.Ref for everything else
}

// Kind returns the Item's discriminant in O(1); it never dereferences ref.
func (it Item) Kind() Kind { return it.kind }

// Ref returns the Item's heap handle, or nil for inline-payload kinds.
func (it Item) Ref() Ref { return it.ref }

// Null is the canonical NULL Item; the zero Item also compares equal to it.
var Null = Item{kind: KindNull}

// Err is the canonical ERROR sentinel; never a valid data value.
var Err = Item{kind: KindError}

// FromNull returns the NULL Item.
func FromNull() Item { return Null }

// FromError returns the ERROR sentinel Item.
func FromError() Item { return Err }

// FromBool returns a BOOL Item with the given inline payload.
func FromBool(b bool) Item {
	var s uint64
	if b {
		s = 1
	}
	return Item{kind: KindBool, scalar: s}
}

// FromInt returns an INT Item. n must fit INT56Min..INT56Max; callers
// requiring overflow detection should check the range themselves (package
// container's arithmetic does this) since FromInt itself does not trap.
func FromInt(n int64) Item {
	return Item{kind: KindInt, scalar: uint64(n)}
}

// FromInt64Ref returns an INT64 Item referring to a boxed value on the
// numeric stack or heap.
func FromInt64Ref(ref Ref) Item { return Item{kind: KindInt64, ref: ref} }

// FromFloatRef returns a FLOAT Item referring to a boxed double.
func FromFloatRef(ref Ref) Item { return Item{kind: KindFloat, ref: ref} }

// FromDateTimeRef returns a DTIME Item referring to a boxed datetime.
func FromDateTimeRef(ref Ref) Item { return Item{kind: KindDateTime, ref: ref} }

// FromDecimalRef returns a DECIMAL Item referring to an arbitrary-precision
// decimal.
func FromDecimalRef(ref Ref) Item { return Item{kind: KindDecimal, ref: ref} }

// FromStringRef returns a STRING Item.
func FromStringRef(ref Ref) Item { return Item{kind: KindString, ref: ref} }

// FromSymbolRef returns a SYMBOL Item.
func FromSymbolRef(ref Ref) Item { return Item{kind: KindSymbol, ref: ref} }

// FromBinaryRef returns a BINARY Item.
func FromBinaryRef(ref Ref) Item { return Item{kind: KindBinary, ref: ref} }

// FromContainerRef returns an Item of the given container kind (RANGE,
// ARRAY, ARRAY_INT, ARRAY_INT64, ARRAY_FLOAT, LIST, MAP, ELEMENT) referring
// to ref. It panics if kind is not one of the container kinds, catching
// programmer error at the call site rather than producing a malformed Item.
func FromContainerRef(kind Kind, ref Ref) Item {
	switch kind {
	case KindRange, KindArray, KindArrayInt, KindArrayInt64, KindArrayFloat,
		KindList, KindMap, KindElement:
		return Item{kind: kind, ref: ref}
	default:
		panic("value.FromContainerRef: kind " + kind.String() + " is not a container kind")
	}
}

// FromFunctionRef returns a FUNC Item.
func FromFunctionRef(ref Ref) Item { return Item{kind: KindFunc, ref: ref} }

// FromTypeRef returns a TYPE Item carrying a type descriptor as a value.
func FromTypeRef(ref Ref) Item { return Item{kind: KindType, ref: ref} }

// AsBool returns the BOOL payload. It panics if it.Kind() != KindBool;
// callers that accept any Kind should check Kind() first (§4.1 "Accessors
// ... trap on a wrong discriminant in debug builds").
func (it Item) AsBool() bool {
	if it.kind != KindBool {
		panic("value.Item.AsBool: kind is " + it.kind.String() + ", not bool")
	}
	return it.scalar != 0
}

// AsInt returns the INT payload. It panics if it.Kind() != KindInt.
func (it Item) AsInt() int64 {
	if it.kind != KindInt {
		panic("value.Item.AsInt: kind is " + it.kind.String() + ", not int")
	}
	return int64(it.scalar)
}

// IsNull reports whether it is the NULL sentinel.
func (it Item) IsNull() bool { return it.kind == KindNull }

// IsError reports whether it is the ERROR sentinel.
func (it Item) IsError() bool { return it.kind == KindError }

// Float64 coerces a numeric Item to float64 using unbox, a caller-supplied
// function that reads an INT64/FLOAT/DECIMAL Ref's scalar value. unbox is
// supplied by package container, which owns the concrete boxed
// representations; value itself has no visibility into Ref payloads.
//
// Float64 panics if it is not numeric (IsNumeric() on its Kind).
func (it Item) Float64(unbox func(Item) float64) float64 {
	switch it.kind {
	case KindInt:
		return float64(it.AsInt())
	case KindInt64, KindFloat, KindDecimal:
		return unbox(it)
	default:
		panic("value.Item.Float64: kind " + it.kind.String() + " is not numeric")
	}
}

// IsNaNOrInf reports whether f is not a finite number, used by arithmetic
// to map decimal NaN/Infinity results to ERROR per §4.4.3.
func IsNaNOrInf(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
