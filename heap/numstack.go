package heap

import (
	"time"

	"github.com/lambda-lang/core/value"
)

// boxedInt64, boxedFloat64, and boxedDateTime are the numeric stack's
// scalar slots. push_l/push_d/push_k in the source write the value into the
// numeric stack and return an Item whose payload pointer is the stack slot;
// here each slot is its own heap-allocated struct, so Go's GC — rather than
// slice-slot reuse — owns the storage, and value.Item.Ref() holds a stable
// pointer to it directly.
type boxedInt64 struct{ Value int64 }
type boxedFloat64 struct{ Value float64 }
type boxedDateTime struct{ Value time.Time }

// numStack tracks how many scalars have been pushed since the enclosing
// Heap was created, so FrameStart/FrameEnd can record and restore a
// position (§4.2 "Opening a frame records the current numeric-stack
// position").
type numStack struct {
	length int
}

// PushInt64 boxes an int64 onto the numeric stack and returns an INT64 Item
// referring to it. The returned Item is valid only within the enclosing
// frame (§4.2 "push_* return values remain valid only within the enclosing
// frame"); FrameEnd does not physically invalidate it (Go has no manual
// free) but callers must not rely on it surviving past the frame in which
// it was pushed.
func (h *Heap) PushInt64(n int64) value.Item {
	h.numStack.length++
	return value.FromInt64Ref(&boxedInt64{Value: n})
}

// PushFloat64 boxes a float64 onto the numeric stack and returns a FLOAT Item.
func (h *Heap) PushFloat64(f float64) value.Item {
	h.numStack.length++
	return value.FromFloatRef(&boxedFloat64{Value: f})
}

// PushDateTime boxes a time.Time onto the numeric stack and returns a DTIME Item.
func (h *Heap) PushDateTime(t time.Time) value.Item {
	h.numStack.length++
	return value.FromDateTimeRef(&boxedDateTime{Value: t})
}

// UnboxInt64 reads the boxed payload of an INT64 Item.
func UnboxInt64(it value.Item) int64 {
	return it.Ref().(*boxedInt64).Value
}

// UnboxFloat64 reads the boxed payload of a FLOAT Item.
func UnboxFloat64(it value.Item) float64 {
	return it.Ref().(*boxedFloat64).Value
}

// UnboxDateTime reads the boxed payload of a DTIME Item.
func UnboxDateTime(it value.Item) time.Time {
	return it.Ref().(*boxedDateTime).Value
}

// numStackPos returns the current numeric-stack position, for FrameStart.
func (h *Heap) numStackPos() int { return h.numStack.length }

// resetNumStack truncates the numeric-stack position counter back to pos,
// for FrameEnd.
func (h *Heap) resetNumStack(pos int) { h.numStack.length = pos }
