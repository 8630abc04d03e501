package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// layer that emits it.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryValue is for tagged-value, arithmetic, and allocation errors
	// (spec.md §7 "Value errors").
	CategoryValue

	// CategoryStructural is for validator errors (spec.md §7 "Structural errors").
	CategoryStructural

	// CategoryParser is for parser-driver and schema-load errors.
	CategoryParser
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryValue:
		return "value"
	case CategoryStructural:
		return "structural"
	case CategoryParser:
		return "parser"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_TYPE_MISMATCH").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification
	// (max_errors/max_depth/timeout_ms, spec.md §4.5 "Global controls").
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Value error codes (spec.md §7 "Value errors": runtime arithmetic,
// allocation, and coercion failures).
var (
	// E_TYPE_ERROR indicates an operand kind unsupported by the operator
	// (spec.md §4.4.3 "all others yield ERROR").
	E_TYPE_ERROR = code("E_TYPE_ERROR", CategoryValue)

	// E_OVERFLOW indicates integer overflow detected in INT arithmetic.
	E_OVERFLOW = code("E_OVERFLOW", CategoryValue)

	// E_DIVIDE_BY_ZERO indicates a zero divisor in div/idiv/mod.
	E_DIVIDE_BY_ZERO = code("E_DIVIDE_BY_ZERO", CategoryValue)

	// E_DECIMAL_NAN indicates a decimal operation produced NaN/Infinity.
	E_DECIMAL_NAN = code("E_DECIMAL_NAN", CategoryValue)

	// E_CONVERSION indicates a cast function could not normalise its operand.
	E_CONVERSION = code("E_CONVERSION", CategoryValue)

	// E_LENGTH_MISMATCH indicates mismatched operand lengths in a vectorised
	// array operation.
	E_LENGTH_MISMATCH = code("E_LENGTH_MISMATCH", CategoryValue)

	// E_OUT_OF_MEMORY indicates heap/arena allocation failure.
	E_OUT_OF_MEMORY = code("E_OUT_OF_MEMORY", CategoryValue)

	// E_FRAME_DISCIPLINE indicates frames were not opened/closed in LIFO order,
	// or the frame_end loop-bound safety guard tripped (spec.md §4.2).
	E_FRAME_DISCIPLINE = code("E_FRAME_DISCIPLINE", CategoryValue)
)

// Structural error codes (spec.md §7 "Structural errors": the validator).
var (
	// E_TYPE_MISMATCH indicates an item's runtime kind does not match the
	// declared type.
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryStructural)

	// E_MISSING_FIELD indicates a required map/element field is absent.
	E_MISSING_FIELD = code("E_MISSING_FIELD", CategoryStructural)

	// E_UNEXPECTED_FIELD indicates a field not declared by the type was present.
	E_UNEXPECTED_FIELD = code("E_UNEXPECTED_FIELD", CategoryStructural)

	// E_NULL_VALUE indicates a non-optional field held NULL.
	E_NULL_VALUE = code("E_NULL_VALUE", CategoryStructural)

	// E_INVALID_ELEMENT indicates an element's tag name did not match, or
	// the value was not an element at all.
	E_INVALID_ELEMENT = code("E_INVALID_ELEMENT", CategoryStructural)

	// E_CONSTRAINT_VIOLATION indicates a structural constraint (content
	// length, max_depth, occurrence count) was violated.
	E_CONSTRAINT_VIOLATION = code("E_CONSTRAINT_VIOLATION", CategoryStructural)

	// E_REFERENCE_ERROR indicates a named type reference could not be resolved.
	E_REFERENCE_ERROR = code("E_REFERENCE_ERROR", CategoryStructural)

	// E_OCCURRENCE_ERROR indicates a ?/+/* occurrence count was violated.
	E_OCCURRENCE_ERROR = code("E_OCCURRENCE_ERROR", CategoryStructural)

	// E_CIRCULAR_REFERENCE indicates re-entry into an already-visited named
	// type during validation.
	E_CIRCULAR_REFERENCE = code("E_CIRCULAR_REFERENCE", CategoryStructural)

	// E_PARSE_ERROR indicates a validator argument (nil item/type) or a
	// parser-driver input failure.
	E_PARSE_ERROR = code("E_PARSE_ERROR", CategoryStructural)
)

// Parser/schema-load error codes.
var (
	// E_SCHEMA_SYNTAX indicates a syntax error in a declarative schema file.
	E_SCHEMA_SYNTAX = code("E_SCHEMA_SYNTAX", CategoryParser)

	// E_UNKNOWN_TYPE indicates a schema referenced an undeclared type name.
	E_UNKNOWN_TYPE = code("E_UNKNOWN_TYPE", CategoryParser)

	// E_DUPLICATE_TYPE indicates a type name is declared more than once.
	E_DUPLICATE_TYPE = code("E_DUPLICATE_TYPE", CategoryParser)

	// E_ADAPTER_PARSE indicates a parser driver failed to produce a root item.
	E_ADAPTER_PARSE = code("E_ADAPTER_PARSE", CategoryParser)
)
