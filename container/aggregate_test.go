package container

import (
	"testing"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

func buildIntArray(h *heap.Heap, vals ...int64) value.Item {
	a := NewArray(h.NewArenaContainer())
	for _, v := range vals {
		a.Push(value.FromInt(v))
	}
	return a.End()
}

func TestFnAbs(t *testing.T) {
	h := heap.New(nil)
	result, err := FnAbs(h, value.FromInt(-5))
	if err != nil {
		t.Fatalf("FnAbs: %v", err)
	}
	if result.AsInt() != 5 {
		t.Errorf("abs(-5) = %v, want 5", result)
	}
}

func TestFnRound_FloorCeil(t *testing.T) {
	h := heap.New(nil)
	f := h.PushFloat64(2.6)

	if r, _ := FnRound(h, f); heap.UnboxFloat64(r) != 3 {
		t.Errorf("round(2.6) = %v, want 3", heap.UnboxFloat64(r))
	}
	if r, _ := FnFloor(h, f); heap.UnboxFloat64(r) != 2 {
		t.Errorf("floor(2.6) = %v, want 2", heap.UnboxFloat64(r))
	}
	if r, _ := FnCeil(h, f); heap.UnboxFloat64(r) != 3 {
		t.Errorf("ceil(2.6) = %v, want 3", heap.UnboxFloat64(r))
	}
	// INT/INT64 pass through unchanged.
	if r, _ := FnRound(h, value.FromInt(4)); r.AsInt() != 4 {
		t.Errorf("round(4) = %v, want 4", r)
	}
}

func TestFnMin2AndFnMax2(t *testing.T) {
	h := heap.New(nil)
	min, err := FnMin2(h, value.FromInt(3), value.FromInt(1))
	if err != nil || min.AsInt() != 1 {
		t.Errorf("min(3,1) = (%v, %v), want 1", min, err)
	}
	max, err := FnMax2(h, value.FromInt(3), value.FromInt(1))
	if err != nil || max.AsInt() != 3 {
		t.Errorf("max(3,1) = (%v, %v), want 3", max, err)
	}
}

func TestFnMin2_MixedFloatPromotesResult(t *testing.T) {
	h := heap.New(nil)
	f := h.PushFloat64(1.5)
	result, err := FnMin2(h, f, value.FromInt(2))
	if err != nil {
		t.Fatalf("FnMin2: %v", err)
	}
	if result.Kind() != value.KindFloat {
		t.Fatalf("result kind = %v, want float", result.Kind())
	}
}

func TestFnMin1_OverArray(t *testing.T) {
	h := heap.New(nil)
	arr := buildIntArray(h, 5, 2, 8, 1)
	result, err := FnMin1(h, arr)
	if err != nil {
		t.Fatalf("FnMin1: %v", err)
	}
	if result.AsInt() != 1 {
		t.Errorf("min([5 2 8 1]) = %v, want 1", result)
	}
}

func TestFnMin1_EmptyArrayIsError(t *testing.T) {
	h := heap.New(nil)
	arr := NewArray(h.NewArenaContainer()).End()
	_, err := FnMin1(h, arr)
	if err == nil {
		t.Fatal("expected error for empty array min")
	}
}

func TestFnMin1_ScalarPassesThrough(t *testing.T) {
	h := heap.New(nil)
	result, err := FnMin1(h, value.FromInt(9))
	if err != nil || result.AsInt() != 9 {
		t.Errorf("min(9) = (%v, %v), want 9", result, err)
	}
}

func TestFnMax1_OverTypedArray(t *testing.T) {
	h := heap.New(nil)
	a := NewArrayInt(h.NewArenaContainer(), 3)
	a.Set(0, 4)
	a.Set(1, 9)
	a.Set(2, 2)
	result, err := FnMax1(h, a.End())
	if err != nil {
		t.Fatalf("FnMax1: %v", err)
	}
	if result.AsInt() != 9 {
		t.Errorf("max = %v, want 9", result)
	}
}

func TestFnSum_EmptySequenceIsZero(t *testing.T) {
	h := heap.New(nil)
	arr := NewArray(h.NewArenaContainer()).End()
	result, err := FnSum(h, arr)
	if err != nil {
		t.Fatalf("FnSum: %v", err)
	}
	if result.AsInt() != 0 {
		t.Errorf("sum([]) = %v, want 0", result)
	}
}

func TestFnSum_AllIntegerStaysIntegral(t *testing.T) {
	h := heap.New(nil)
	arr := buildIntArray(h, 1, 2, 3)
	result, err := FnSum(h, arr)
	if err != nil {
		t.Fatalf("FnSum: %v", err)
	}
	if result.Kind() != value.KindInt || result.AsInt() != 6 {
		t.Errorf("sum([1 2 3]) = %v, want INT 6", result)
	}
}

func TestFnSum_MixedWithFloatPromotes(t *testing.T) {
	h := heap.New(nil)
	a := NewArray(h.NewArenaContainer())
	a.Push(value.FromInt(1))
	a.Push(h.PushFloat64(2.5))
	result, err := FnSum(h, a.End())
	if err != nil {
		t.Fatalf("FnSum: %v", err)
	}
	if result.Kind() != value.KindFloat || heap.UnboxFloat64(result) != 3.5 {
		t.Errorf("sum([1 2.5]) = %v, want FLOAT 3.5", result)
	}
}

func TestFnAvg(t *testing.T) {
	h := heap.New(nil)
	arr := buildIntArray(h, 2, 4, 6)
	result, err := FnAvg(h, arr)
	if err != nil {
		t.Fatalf("FnAvg: %v", err)
	}
	if heap.UnboxFloat64(result) != 4 {
		t.Errorf("avg([2 4 6]) = %v, want 4", heap.UnboxFloat64(result))
	}
}

func TestFnAvg_EmptySequenceIsError(t *testing.T) {
	h := heap.New(nil)
	arr := NewArray(h.NewArenaContainer()).End()
	_, err := FnAvg(h, arr)
	if err == nil {
		t.Fatal("expected error for empty array avg")
	}
}
