package heap

import "github.com/lambda-lang/core/value"

// decimalRef is the ref-counted payload behind a DECIMAL Item (§3
// "Decimal. Arbitrary-precision decimal value with its own ref-count").
// The concrete decimal representation (shopspring/decimal) is owned by
// package container; heap only carries it as an opaque payload so the two
// packages stay decoupled the same way value.Ref decouples value from heap.
type decimalRef struct {
	Header
	Payload any
}

// NewDecimal wraps payload (a *decimal.Decimal from package container) in a
// ref-counted DECIMAL Item. The decimal is arena-owned by default, matching
// the evaluator's typical short-lived intermediate results; callers that
// need the value to survive past the current frame should Retain it after
// storing it somewhere heap-managed.
func (h *Heap) NewDecimal(payload any) value.Item {
	ref := &decimalRef{Header: NewArenaHeader(), Payload: payload}
	return value.FromDecimalRef(ref)
}

// DecimalPayload returns the opaque payload behind a DECIMAL Item, for
// package container to type-assert back to *decimal.Decimal.
func DecimalPayload(it value.Item) any {
	return it.Ref().(*decimalRef).Payload
}
