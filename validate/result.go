package validate

import "github.com/lambda-lang/core/diag"

// ValidationError is one structural diagnostic produced during validation
// (spec.md §4.5 "ValidationError{code, message, path, expected?, actual?,
// suggestions?}").
type ValidationError struct {
	Code     diag.Code
	Message  string
	Path     string
	Expected string
	Actual   string
}

// String renders the error the way a CLI report would (spec.md §6's
// validator CLI surface).
func (e ValidationError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Result is the outcome of a Validate/ValidateAgainstType call (spec.md
// §4.5 "ValidationResult{valid, errors, warnings, counts}").
type Result struct {
	errors       []ValidationError
	warnings     []ValidationError
	limitReached bool
}

// Valid reports whether validation found zero errors. Warnings never
// affect validity, matching spec.md §4.5's valid/error-count contract and
// the §6 CLI's "exit code 0 iff valid and error_count == 0" rule.
func (r Result) Valid() bool { return len(r.errors) == 0 }

// Errors returns the collected structural errors, in diag's severity/path
// total order.
func (r Result) Errors() []ValidationError { return r.errors }

// Warnings returns the collected non-fatal diagnostics.
func (r Result) Warnings() []ValidationError { return r.warnings }

// ErrorCount returns the number of collected errors.
func (r Result) ErrorCount() int { return len(r.errors) }

// LimitReached reports whether max_errors or timeout_ms cut validation
// short of a full traversal. Exceeding max_depth is reported as an
// ErrConstraintViolation error instead and does not set this flag.
func (r Result) LimitReached() bool { return r.limitReached }

// newResult converts a diag.Result (produced by the session's Collector)
// into the validator's public ValidationError/Result shape.
func newResult(res diag.Result) Result {
	out := Result{limitReached: res.LimitReached()}
	for issue := range res.Issues() {
		ve := ValidationError{
			Code:    issue.Code(),
			Message: issue.Message(),
			Path:    issue.Path(),
		}
		for _, d := range issue.Details() {
			switch d.Key {
			case diag.DetailKeyExpected:
				ve.Expected = d.Value
			case diag.DetailKeyGot:
				ve.Actual = d.Value
			}
		}
		if issue.Code() == ErrLimitReached {
			out.limitReached = true
		}
		if issue.Severity().IsFailure() {
			out.errors = append(out.errors, ve)
		} else {
			out.warnings = append(out.warnings, ve)
		}
	}
	return out
}
