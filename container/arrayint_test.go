package container

import (
	"testing"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

func TestArrayInt_SetGet(t *testing.T) {
	h := heap.New(nil)
	a := NewArrayInt(h.NewArenaContainer(), 3)
	a.Set(0, 10)
	a.Set(1, 20)
	a.Set(2, 30)

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	got := a.Get(h, 1)
	if got.Kind() != value.KindInt || got.AsInt() != 20 {
		t.Fatalf("Get(1) = %v, want boxed INT 20", got)
	}
	if got := a.Get(h, 9); got != value.Null {
		t.Errorf("Get(out of bounds) = %v, want Null", got)
	}
}

func TestArrayInt64_GetBoxesInt64(t *testing.T) {
	h := heap.New(nil)
	a := NewArrayInt64(h.NewArenaContainer(), 1)
	a.Set(0, 1<<40)
	got := a.Get(h, 0)
	if got.Kind() != value.KindInt64 {
		t.Fatalf("Get(0) kind = %v, want int64", got.Kind())
	}
	if heap.UnboxInt64(got) != 1<<40 {
		t.Errorf("unboxed value = %d, want %d", heap.UnboxInt64(got), int64(1<<40))
	}
}

func TestArrayFloat_GetBoxesFloat64(t *testing.T) {
	h := heap.New(nil)
	a := NewArrayFloat(h.NewArenaContainer(), 1)
	a.Set(0, 3.5)
	got := a.Get(h, 0)
	if got.Kind() != value.KindFloat {
		t.Fatalf("Get(0) kind = %v, want float", got.Kind())
	}
	if heap.UnboxFloat64(got) != 3.5 {
		t.Errorf("unboxed value = %v, want 3.5", heap.UnboxFloat64(got))
	}
}

func TestTypedArrays_End(t *testing.T) {
	h := heap.New(nil)
	if NewArrayInt(h.NewArenaContainer(), 1).End().Kind() != value.KindArrayInt {
		t.Error("ArrayInt.End() kind mismatch")
	}
	if NewArrayInt64(h.NewArenaContainer(), 1).End().Kind() != value.KindArrayInt64 {
		t.Error("ArrayInt64.End() kind mismatch")
	}
	if NewArrayFloat(h.NewArenaContainer(), 1).End().Kind() != value.KindArrayFloat {
		t.Error("ArrayFloat.End() kind mismatch")
	}
}
