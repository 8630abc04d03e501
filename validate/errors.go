package validate

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/lambda-lang/core/diag"
)

// Error codes for validation failures. These are aliases to the canonical
// codes in the diag package (spec.md §7's Structural error category),
// giving callers a stable Err* sentinel per error category.
var (
	// ErrTypeMismatch indicates an item's kind does not match its declared type.
	ErrTypeMismatch = diag.E_TYPE_MISMATCH

	// ErrMissingField indicates a required map field was absent.
	ErrMissingField = diag.E_MISSING_FIELD

	// ErrUnexpectedField indicates a field not present in the declared shape.
	ErrUnexpectedField = diag.E_UNEXPECTED_FIELD

	// ErrNullValue indicates a non-optional field held a null item.
	ErrNullValue = diag.E_NULL_VALUE

	// ErrInvalidElement indicates an element's tag or attributes did not match.
	ErrInvalidElement = diag.E_INVALID_ELEMENT

	// ErrConstraintViolation indicates a length/depth/content-count constraint failed.
	ErrConstraintViolation = diag.E_CONSTRAINT_VIOLATION

	// ErrReferenceError indicates a named type reference could not be resolved.
	ErrReferenceError = diag.E_REFERENCE_ERROR

	// ErrOccurrenceError indicates a ?/+/* occurrence count was not satisfied.
	ErrOccurrenceError = diag.E_OCCURRENCE_ERROR

	// ErrCircularReference indicates a named type was revisited during one
	// recursive descent, i.e. the schema is self-referential without a
	// terminating case.
	ErrCircularReference = diag.E_CIRCULAR_REFERENCE

	// ErrParseError indicates malformed input to the validator itself (a
	// nil type descriptor), not a structural mismatch in the value being
	// validated. An unresolvable type name is reported as ErrReferenceError.
	ErrParseError = diag.E_PARSE_ERROR

	// ErrLimitReached indicates the max_errors or timeout cap was hit
	// (max_depth is reported as ErrConstraintViolation).
	ErrLimitReached = diag.E_LIMIT_REACHED

	// ErrInternal indicates a recovered panic or other non-validation failure.
	ErrInternal = diag.E_INTERNAL
)

// Internal error sentinels for programmatic detection via errors.Is().
var (
	// ErrInternalFailure is the parent sentinel for all internal failures.
	// Use errors.Is(err, ErrInternalFailure) to detect any internal error.
	ErrInternalFailure = errors.New("internal validation failure")

	// ErrNilValidator is the panic value when Validate or
	// ValidateAgainstType is called on a nil receiver.
	ErrNilValidator = fmt.Errorf("%w: nil validator receiver", ErrInternalFailure)

	// ErrNilType describes a nil type descriptor. ValidateAgainstType does
	// not return it; it reports a nil type as an ErrParseError issue.
	ErrNilType = fmt.Errorf("%w: nil type descriptor", ErrInternalFailure)
)

// InternalErrorKind classifies internal errors for programmatic handling.
type InternalErrorKind int

const (
	// KindNilValidator indicates a nil validator receiver.
	KindNilValidator InternalErrorKind = iota
	// KindNilType indicates a nil type descriptor was passed to validate.
	KindNilType
	// KindDispatchPanic indicates a panic during recursive dispatch.
	KindDispatchPanic
)

// String returns a human-readable name for the error kind.
func (k InternalErrorKind) String() string {
	switch k {
	case KindNilValidator:
		return "nil validator"
	case KindNilType:
		return "nil type descriptor"
	case KindDispatchPanic:
		return "dispatch panic"
	default:
		return "unknown"
	}
}

// InternalError wraps internal failures with context for debugging.
type InternalError struct {
	Kind  InternalErrorKind
	Cause error
	Stack string // stack trace from panic recovery, empty otherwise
}

func (e *InternalError) Error() string {
	kindStr := e.Kind.String()
	if e.Cause != nil {
		return kindStr + ": " + e.Cause.Error()
	}
	return kindStr
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches target. InternalError always
// matches ErrInternalFailure, enabling errors.Is(err, ErrInternalFailure)
// to work for all internal errors including panic-derived ones.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternalFailure
}

// wrapPanicValue wraps a recovered panic value into an InternalError with
// a stack trace. Call with the result of recover() in a deferred function.
func wrapPanicValue(r any, kind InternalErrorKind) *InternalError {
	if r == nil {
		return nil
	}
	var cause error
	switch v := r.(type) {
	case error:
		cause = v
	case string:
		cause = errors.New(v)
	default:
		cause = fmt.Errorf("panic: %v", v)
	}
	return &InternalError{
		Kind:  kind,
		Cause: cause,
		Stack: string(debug.Stack()),
	}
}
