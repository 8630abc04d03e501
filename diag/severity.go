package diag

// Severity represents the severity level of a diagnostic issue.
//
// Severity is an ordered enumeration where lower numeric values are more severe.
// Use the comparison methods rather than raw numeric comparisons for clarity.
//
// Every caller that actually collects an Issue today picks one of the two
// extremes: heap.Frame's LIFO-discipline guard and the validator's
// max_errors/timeout_ms caps (spec.md §4.5 "Global controls")
// report Fatal, while every other structural, value, and parser-driver
// finding (diag's CategoryValue/CategoryStructural/CategoryParser codes)
// reports Error. Warning/Info/Hint exist so a future lenient decode path —
// e.g. tolerating a field the schema doesn't declare instead of rejecting
// the document — has somewhere to land without widening the Error
// definition; validate.Result.Warnings() already drains them into
// spec.md §4.5's ValidationResult.warnings whenever one is collected.
type Severity uint8

const (
	// Fatal marks a finding that ends the work it belongs to: the
	// frame-discipline checks in heap.Heap.FrameEnd (E_FRAME_DISCIPLINE,
	// reported in FrameEnd's Result, never by a panic) and the validator's
	// max_errors/timeout caps (E_LIMIT_REACHED) are the only emitters. A
	// Collector keeps accepting issues after a Fatal one.
	Fatal Severity = iota

	// Error is a structural, value, or schema finding that makes the
	// overall result unsuccessful but does not stop further collection —
	// the severity every E_* code in this package other than
	// E_FRAME_DISCIPLINE and E_LIMIT_REACHED is reported at.
	Error

	// Warning is a condition worth surfacing that does not fail validation
	// on its own; validate.Result keeps it out of Errors()/Valid() and
	// returns it from Warnings() instead.
	Warning

	// Info provides informational diagnostics that require no correction.
	Info

	// Hint provides suggestions for improvement.
	Hint
)

// String returns the canonical lowercase label for the severity.
//
// These values are used by FormatIssueJSON/FormatResultJSON and are part of
// the wire format stability guarantee. The returned strings are:
// "fatal", "error", "warning", "info", "hint".
func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the severity indicates a failure.
//
// Returns true for Fatal and Error severities. This matches the condition
// checked by !Result.OK().
func (s Severity) IsFailure() bool {
	return s <= Error
}

// IsMoreSevereThan reports whether s is more severe than other.
//
// Since lower numeric values are more severe, this returns s < other.
// Use this method instead of raw numeric comparisons for clarity.
func (s Severity) IsMoreSevereThan(other Severity) bool {
	return s < other
}

// IsAtLeastAsSevereAs reports whether s is at least as severe as other.
//
// Returns true when s is equal to or more severe than other.
func (s Severity) IsAtLeastAsSevereAs(other Severity) bool {
	return s <= other
}
