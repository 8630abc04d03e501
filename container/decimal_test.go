package container

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

func TestNewDecimalAndDecimalValue_RoundTrip(t *testing.T) {
	h := heap.New(nil)
	d := decimal.NewFromFloat(3.14)
	it := NewDecimal(h, d)
	if it.Kind() != value.KindDecimal {
		t.Fatalf("Kind() = %v, want decimal", it.Kind())
	}
	if !DecimalValue(it).Equal(d) {
		t.Errorf("DecimalValue() = %v, want %v", DecimalValue(it), d)
	}
}

func TestDecimalValue_PanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DecimalValue did not panic on a non-decimal Item")
		}
	}()
	DecimalValue(value.FromInt(1))
}

func TestConvertToDecimal(t *testing.T) {
	h := heap.New(nil)
	unbox := func(it value.Item) float64 { return heap.UnboxFloat64(it) }
	asInt := func(it value.Item) int64 { return heap.UnboxInt64(it) }

	d, ok := ConvertToDecimal(value.FromInt(7), unbox, asInt)
	if !ok || !d.Equal(decimal.NewFromInt(7)) {
		t.Errorf("ConvertToDecimal(INT 7) = (%v, %v), want (7, true)", d, ok)
	}

	d, ok = ConvertToDecimal(h.PushInt64(9), unbox, asInt)
	if !ok || !d.Equal(decimal.NewFromInt(9)) {
		t.Errorf("ConvertToDecimal(INT64 9) = (%v, %v), want (9, true)", d, ok)
	}

	d, ok = ConvertToDecimal(h.PushFloat64(2.5), unbox, asInt)
	if !ok || !d.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("ConvertToDecimal(FLOAT 2.5) = (%v, %v), want (2.5, true)", d, ok)
	}

	_, ok = ConvertToDecimal(value.FromBool(true), unbox, asInt)
	if ok {
		t.Error("ConvertToDecimal(BOOL) reported ok, want failure")
	}
}
