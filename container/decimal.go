package container

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// NewDecimal boxes d onto h and returns a DECIMAL Item (spec §3
// "Decimal. Arbitrary-precision decimal value with its own ref-count.
// Created via a decimal library with a decimal_ctx attached to
// EvalContext"; here the "decimal_ctx" is simply shopspring/decimal's
// package-level precision, per SPEC_FULL.md §4.4).
func NewDecimal(h *heap.Heap, d decimal.Decimal) value.Item {
	return h.NewDecimal(d)
}

// DecimalValue extracts the decimal.Decimal payload from a DECIMAL Item.
// It panics if it is not a DECIMAL Item.
func DecimalValue(it value.Item) decimal.Decimal {
	if it.Kind() != value.KindDecimal {
		panic(fmt.Sprintf("container: DecimalValue: item kind is %s, not DECIMAL", it.Kind()))
	}
	payload := heap.DecimalPayload(it)
	d, ok := payload.(decimal.Decimal)
	if !ok {
		panic("container: DecimalValue: decimal ref payload is not a decimal.Decimal")
	}
	return d
}

// ConvertToDecimal coerces a, which must be INT, INT64, FLOAT, or DECIMAL,
// into a decimal.Decimal, mirroring convert_to_decimal in the reference
// implementation (original_source/lambda/lambda-eval-num.cpp). FLOAT
// operands round-trip through their string form so the decimal result
// reflects the value the user sees printed, not float64's raw binary
// approximation.
func ConvertToDecimal(it value.Item, unboxFloat64 func(value.Item) float64, asInt64 func(value.Item) int64) (decimal.Decimal, bool) {
	switch it.Kind() {
	case value.KindInt:
		return decimal.NewFromInt(it.AsInt()), true
	case value.KindInt64:
		return decimal.NewFromInt(asInt64(it)), true
	case value.KindFloat:
		d, err := decimal.NewFromString(fmt.Sprintf("%g", unboxFloat64(it)))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case value.KindDecimal:
		return DecimalValue(it), true
	default:
		return decimal.Decimal{}, false
	}
}
