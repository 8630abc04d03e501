// Package value defines Item, the tagged 64-bit word used throughout the
// Lambda runtime to represent every value: sentinels, scalars, and
// references into the heap-managed containers defined by package heap.
package value

// Kind identifies an Item's active discriminant.
//
// A Kind is recoverable from an Item in O(1) without dereferencing a heap
// object. Kind also doubles as the numeric coercion rank for INT..NUMBER:
// INT < INT64 < FLOAT < DECIMAL < NUMBER, so `KindInt <= k && k <= KindNumber`
// tests "is this a numeric kind" and ordinary comparison tests "does this
// fit within a required numeric rank".
type Kind uint8

const (
	// KindNull is the null sentinel. The zero Item has this kind.
	KindNull Kind = iota
	// KindError marks a value that is never valid data.
	KindError
	// KindBool holds a boolean payload inline.
	KindBool
	// KindInt holds a signed integer within the INT56 range inline.
	KindInt
	// KindInt64 refers to a boxed 64-bit integer on the numeric stack or heap.
	KindInt64
	// KindFloat refers to a boxed double.
	KindFloat
	// KindDecimal refers to an arbitrary-precision decimal.
	KindDecimal
	// KindNumber is a sentinel rank, never an Item's actual Kind, used only
	// as the upper bound of the numeric coercion ladder (§4.1).
	KindNumber
	// KindDateTime refers to a boxed datetime.
	KindDateTime
	// KindString refers to a string (pooled or arena-allocated).
	KindString
	// KindSymbol refers to an interned, namespaced symbol string.
	KindSymbol
	// KindBinary refers to a binary blob.
	KindBinary
	// KindRange refers to an inclusive {start,end} integer range.
	KindRange
	// KindArray refers to a general Array of Items.
	KindArray
	// KindArrayInt refers to an unboxed []int array.
	KindArrayInt
	// KindArrayInt64 refers to an unboxed []int64 array.
	KindArrayInt64
	// KindArrayFloat refers to an unboxed []float64 array.
	KindArrayFloat
	// KindList refers to a List, which flattens on construction.
	KindList
	// KindMap refers to a shape-directed packed-field Map.
	KindMap
	// KindElement refers to a tagged Element (Map plus content children).
	KindElement
	// KindFunc refers to a callable function value.
	KindFunc
	// KindType refers to a Type descriptor carried as a first-class value.
	KindType
	// KindAny is the heterogeneous carrier used for untyped map fields.
	KindAny
)

// String returns a human-readable label for k, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindError:
		return "error"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindNumber:
		return "number"
	case KindDateTime:
		return "datetime"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindBinary:
		return "binary"
	case KindRange:
		return "range"
	case KindArray:
		return "array"
	case KindArrayInt:
		return "array<int>"
	case KindArrayInt64:
		return "array<int64>"
	case KindArrayFloat:
		return "array<float>"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindElement:
		return "element"
	case KindFunc:
		return "func"
	case KindType:
		return "type"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether k participates in the numeric coercion ladder
// INT ⊂ INT64 ⊂ FLOAT ⊂ DECIMAL ⊂ NUMBER (§4.1).
func (k Kind) IsNumeric() bool {
	return k >= KindInt && k <= KindNumber && k != KindError
}

// SatisfiesRank reports whether k may be validated or consumed where the
// numeric rank min is required. Any operand at rank R may stand in for a
// required rank >= R (INT satisfies NUMBER; FLOAT does not satisfy INT).
func (k Kind) SatisfiesRank(min Kind) bool {
	return k.IsNumeric() && min.IsNumeric() && k <= min
}

// PromoteNumeric returns the coercion-ladder rank that a and b's mixing
// promotes to: INT/INT64 mixing yields INT64, any FLOAT side yields FLOAT,
// any DECIMAL side yields DECIMAL (§4.1).
func PromoteNumeric(a, b Kind) Kind {
	if a == KindDecimal || b == KindDecimal {
		return KindDecimal
	}
	if a == KindFloat || b == KindFloat {
		return KindFloat
	}
	if a == KindInt64 || b == KindInt64 {
		return KindInt64
	}
	return KindInt
}
