package container

import (
	"testing"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

func TestArray_PushGetLen(t *testing.T) {
	h := heap.New(nil)
	a := NewArray(h.NewArenaContainer())
	a.Push(value.FromInt(1))
	a.Push(value.FromInt(2))

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.Get(0).AsInt() != 1 || a.Get(1).AsInt() != 2 {
		t.Fatalf("unexpected elements")
	}
	if got := a.Get(5); got != value.Null {
		t.Errorf("Get(out of bounds) = %v, want Null", got)
	}
}

func TestArray_SpreadableDefaultsFalse(t *testing.T) {
	h := heap.New(nil)
	a := NewArray(h.NewArenaContainer())
	if a.IsSpreadable() {
		t.Error("array should not be spreadable by default")
	}
	a.SetSpreadable()
	if !a.IsSpreadable() {
		t.Error("SetSpreadable did not mark array spreadable")
	}
}

func TestArray_End(t *testing.T) {
	h := heap.New(nil)
	a := NewArray(h.NewArenaContainer())
	a.Push(value.FromInt(7))
	end := a.End()
	if end.Kind() != value.KindArray {
		t.Fatalf("End() kind = %v, want array", end.Kind())
	}
	if end.Ref().(*Array) != a {
		t.Error("End() did not reference the same array")
	}
}

func TestArray_ReleaseChildren(t *testing.T) {
	h := heap.New(nil)
	a := NewArray(h.NewHeapContainer())
	s := h.StrCopy([]byte("x"))
	a.Push(s)
	// ReleaseChildren must not panic when releasing a non-ref-counted INT
	// alongside a ref-counted string.
	a.Push(value.FromInt(1))
	a.ReleaseChildren(h)
}
