package container

import (
	"math"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// sequence exposes a uniform (length, element-at) view over the container
// kinds that fn_sum/fn_avg/fn_min1/fn_max1 iterate: Array, List, and the
// three typed numeric arrays (spec §4.4.3; lambda-eval-num.cpp fn_sum,
// fn_min1, fn_max1 each repeat this ARRAY/ARRAY_INT/ARRAY_INT64/
// ARRAY_FLOAT/LIST dispatch, consolidated here into one accessor).
func sequence(h *heap.Heap, it value.Item) (get func(i int) value.Item, n int, ok bool) {
	switch it.Kind() {
	case value.KindArray:
		arr, ok := it.Ref().(*Array)
		if !ok {
			return nil, 0, false
		}
		return arr.Get, arr.Len(), true
	case value.KindList:
		l, ok := it.Ref().(*List)
		if !ok {
			return nil, 0, false
		}
		return l.Get, l.Len(), true
	case value.KindArrayInt:
		arr, ok := it.Ref().(*ArrayInt)
		if !ok {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	case value.KindArrayInt64:
		arr, ok := it.Ref().(*ArrayInt64)
		if !ok {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	case value.KindArrayFloat:
		arr, ok := it.Ref().(*ArrayFloat)
		if !ok {
			return nil, 0, false
		}
		return func(i int) value.Item { return arr.Get(h, i) }, arr.Len(), true
	default:
		return nil, 0, false
	}
}

// FnAbs implements fn_abs: absolute value of INT, INT64, or FLOAT (spec
// §4.4.3).
func FnAbs(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt:
		n := it.AsInt()
		if n < 0 {
			n = -n
		}
		return value.FromInt(n), nil
	case value.KindInt64:
		n, _ := asInt64(h, it)
		if n < 0 {
			n = -n
		}
		return h.PushInt64(n), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.PushFloat64(math.Abs(f)), nil
	case value.KindDecimal:
		return NewDecimal(h, DecimalValue(it).Abs()), nil
	default:
		return value.Err, errTypeError("abs", it.Kind(), it.Kind())
	}
}

// roundingOp applies fn to a FLOAT operand and passes INT/INT64 through
// unchanged, the shared shape of fn_round/fn_floor/fn_ceil (lambda-eval-
// num.cpp).
func roundingOp(op string, h *heap.Heap, it value.Item, fn func(float64) float64) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt, value.KindInt64:
		return it, nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.PushFloat64(fn(f)), nil
	default:
		return value.Err, errTypeError(op, it.Kind(), it.Kind())
	}
}

// FnRound implements fn_round: rounds FLOAT to the nearest integer,
// returning it still as a FLOAT; INT/INT64 pass through (spec §4.4.3).
func FnRound(h *heap.Heap, it value.Item) (value.Item, error) {
	return roundingOp("round", h, it, math.Round)
}

// FnFloor implements fn_floor.
func FnFloor(h *heap.Heap, it value.Item) (value.Item, error) {
	return roundingOp("floor", h, it, math.Floor)
}

// FnCeil implements fn_ceil.
func FnCeil(h *heap.Heap, it value.Item) (value.Item, error) {
	return roundingOp("ceil", h, it, math.Ceil)
}

// FnMin2 implements fn_min2: two-argument scalar min, returning INT when
// both operands were integral, else FLOAT (spec §4.4.3).
func FnMin2(h *heap.Heap, a, b value.Item) (value.Item, error) {
	return minMax2(h, "min", a, b, func(x, y float64) float64 { return math.Min(x, y) })
}

// FnMax2 implements fn_max2.
func FnMax2(h *heap.Heap, a, b value.Item) (value.Item, error) {
	return minMax2(h, "max", a, b, func(x, y float64) float64 { return math.Max(x, y) })
}

func minMax2(h *heap.Heap, op string, a, b value.Item, pick func(x, y float64) float64) (value.Item, error) {
	fa, okA := asFloat64(h, a)
	fb, okB := asFloat64(h, b)
	if !okA || !okB {
		return value.Err, errTypeError(op, a.Kind(), b.Kind())
	}
	result := pick(fa, fb)
	if a.Kind() == value.KindFloat || b.Kind() == value.KindFloat {
		return h.PushFloat64(result), nil
	}
	return integralResult(h, a, b, int64(result)), nil
}

// integralResult boxes n as INT if it fits the INT56 range and both source
// operands were plain INT, else as INT64, matching the reference's
// "return as integer if both inputs were integers" rule.
func integralResult(h *heap.Heap, a, b value.Item, n int64) value.Item {
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt && checkINT56(n) {
		return value.FromInt(n)
	}
	return h.PushInt64(n)
}

// FnMin1 implements fn_min1: single-argument min over an array/list/typed
// array, or pass-through for a scalar numeric operand (spec §4.4.3).
func FnMin1(h *heap.Heap, it value.Item) (value.Item, error) {
	return minMax1(h, "min", it, func(x, y float64) bool { return x < y })
}

// FnMax1 implements fn_max1.
func FnMax1(h *heap.Heap, it value.Item) (value.Item, error) {
	return minMax1(h, "max", it, func(x, y float64) bool { return x > y })
}

func minMax1(h *heap.Heap, op string, it value.Item, better func(candidate, current float64) bool) (value.Item, error) {
	if it.Kind().IsNumeric() {
		return it, nil
	}
	get, n, ok := sequence(h, it)
	if !ok {
		return value.Err, errTypeError(op, it.Kind(), it.Kind())
	}
	if n == 0 {
		return value.Err, errTypeError(op, it.Kind(), it.Kind())
	}
	best, ok := asFloat64(h, get(0))
	if !ok {
		return value.Err, errTypeError(op, it.Kind(), it.Kind())
	}
	allInt := get(0).Kind() != value.KindFloat
	for i := 1; i < n; i++ {
		elem := get(i)
		f, ok := asFloat64(h, elem)
		if !ok {
			return value.Err, errTypeError(op, it.Kind(), it.Kind())
		}
		if elem.Kind() == value.KindFloat {
			allInt = false
		}
		if better(f, best) {
			best = f
		}
	}
	if !allInt {
		return h.PushFloat64(best), nil
	}
	n64 := int64(best)
	if checkINT56(n64) {
		return value.FromInt(n64), nil
	}
	return h.PushInt64(n64), nil
}

// FnSum implements fn_sum: sums an array/list/typed array elementwise,
// returning INT/INT64 when every element was integral, else FLOAT; an
// empty sequence sums to 0 (spec §4.4.3).
func FnSum(h *heap.Heap, it value.Item) (value.Item, error) {
	if it.Kind().IsNumeric() {
		return it, nil
	}
	get, n, ok := sequence(h, it)
	if !ok {
		return value.Err, errTypeError("sum", it.Kind(), it.Kind())
	}
	if n == 0 {
		return value.FromInt(0), nil
	}
	var sum float64
	allInt := true
	for i := 0; i < n; i++ {
		elem := get(i)
		f, ok := asFloat64(h, elem)
		if !ok {
			return value.Err, errTypeError("sum", elem.Kind(), elem.Kind())
		}
		if elem.Kind() == value.KindFloat {
			allInt = false
		}
		sum += f
	}
	if !allInt {
		return h.PushFloat64(sum), nil
	}
	n64 := int64(sum)
	if checkINT56(n64) {
		return value.FromInt(n64), nil
	}
	return h.PushInt64(n64), nil
}

// FnAvg implements fn_avg: arithmetic mean of an array/list/typed array,
// always returned as FLOAT; an empty sequence is an error (spec §4.4.3).
func FnAvg(h *heap.Heap, it value.Item) (value.Item, error) {
	get, n, ok := sequence(h, it)
	if !ok {
		return value.Err, errTypeError("avg", it.Kind(), it.Kind())
	}
	if n == 0 {
		return value.Err, errTypeError("avg", it.Kind(), it.Kind())
	}
	var sum float64
	for i := 0; i < n; i++ {
		f, ok := asFloat64(h, get(i))
		if !ok {
			return value.Err, errTypeError("avg", it.Kind(), it.Kind())
		}
		sum += f
	}
	return h.PushFloat64(sum / float64(n)), nil
}
