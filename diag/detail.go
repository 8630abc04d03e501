package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected type or value.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual type or value received.
	DetailKeyGot = "got"

	// DetailKeyTypeName is the declared type name involved in the diagnostic.
	DetailKeyTypeName = "type"

	// DetailKeyField is the map/element field (attribute) name.
	DetailKeyField = "field"

	// DetailKeyElementTag is the element tag name.
	DetailKeyElementTag = "element_tag"

	// DetailKeyIndex is the array/list index.
	DetailKeyIndex = "index"

	// DetailKeyUnionArm is the union arm index (0-based).
	DetailKeyUnionArm = "union_arm"

	// DetailKeyReason is the failure reason discriminant.
	DetailKeyReason = "reason"

	// DetailKeyFormat is the parser-driver format identifier (e.g. "json", "csv").
	DetailKeyFormat = "format"

	// DetailKeyName is an invalid identifier name (for naming errors).
	DetailKeyName = "name"

	// DetailKeyContext is contextual information (e.g. "heap", "validator").
	DetailKeyContext = "context"

	// DetailKeyFunction is the builtin function name (for arithmetic errors).
	DetailKeyFunction = "function"

	// DetailKeyOperator is the operator symbol (for arithmetic errors).
	DetailKeyOperator = "operator"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// TypeField creates detail entries for field diagnostics on a declared type.
func TypeField(typeName, fieldName string) []Detail {
	return []Detail{
		{Key: DetailKeyTypeName, Value: typeName},
		{Key: DetailKeyField, Value: fieldName},
	}
}
