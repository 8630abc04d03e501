package container

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/value"
)

// stringContent returns the byte content behind a STRING, SYMBOL, or BINARY
// Item, and whether it is one of those kinds.
func stringContent(it value.Item) (string, bool) {
	switch it.Kind() {
	case value.KindString, value.KindSymbol, value.KindBinary:
		b, _ := heap.GetString(it)
		return string(b), true
	default:
		return "", false
	}
}

// FnInt implements fn_int: casts to INT, falling back to INT64 when the
// truncated value overflows INT56, or promoting a numeric string to DECIMAL
// when it does not parse as a plain integer (spec §4.4.3;
// original_source/lambda/lambda-eval-num.cpp fn_int).
func FnInt(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt:
		return it, nil
	case value.KindInt64, value.KindFloat:
		f, _ := asFloat64(h, it)
		n := int64(f)
		if !checkINT56(n) {
			return h.PushInt64(n), nil
		}
		return value.FromInt(n), nil
	case value.KindDecimal:
		return it, nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		if s == "" {
			return value.Err, errTypeError("int", it.Kind(), it.Kind())
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			if checkINT56(n) {
				return value.FromInt(n), nil
			}
			return h.PushInt64(n), nil
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return NewDecimal(h, d), nil
		}
		return value.Err, errTypeError("int", it.Kind(), it.Kind())
	default:
		return value.Err, errTypeError("int", it.Kind(), it.Kind())
	}
}

// FnInt64 implements fn_int64: casts to INT64 (spec §4.4.3).
func FnInt64(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt, value.KindInt64:
		n, _ := asInt64(h, it)
		return h.PushInt64(n), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.PushInt64(int64(f)), nil
	case value.KindDecimal:
		d := DecimalValue(it)
		n, ok := decimalToInt64(d)
		if !ok {
			return value.Err, errTypeError("int64", it.Kind(), it.Kind())
		}
		return h.PushInt64(n), nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return value.Err, errTypeError("int64", it.Kind(), it.Kind())
		}
		return h.PushInt64(n), nil
	default:
		return value.Err, errTypeError("int64", it.Kind(), it.Kind())
	}
}

func decimalToInt64(d decimal.Decimal) (int64, bool) {
	n, err := strconv.ParseInt(d.Truncate(0).String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FnFloat implements fn_float: casts to FLOAT, stripping thousands-comma
// separators from string input as the reference implementation does (spec
// §4.4.3; lambda-eval-num.cpp fn_float).
func FnFloat(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindFloat:
		return it, nil
	case value.KindInt, value.KindInt64:
		f, _ := asFloat64(h, it)
		return h.PushFloat64(f), nil
	case value.KindDecimal:
		f, _ := DecimalValue(it).Float64()
		return h.PushFloat64(f), nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.Err, errTypeError("float", it.Kind(), it.Kind())
		}
		return h.PushFloat64(f), nil
	default:
		return value.Err, errTypeError("float", it.Kind(), it.Kind())
	}
}

// FnDecimal implements fn_decimal: casts to DECIMAL (spec §4.4.3).
func FnDecimal(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindDecimal:
		return it, nil
	case value.KindInt, value.KindInt64:
		n, _ := asInt64(h, it)
		return NewDecimal(h, decimal.NewFromInt(n)), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		d, err := decimal.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
		if err != nil {
			return value.Err, errTypeError("decimal", it.Kind(), it.Kind())
		}
		return NewDecimal(h, d), nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		if s == "" {
			return value.Err, errTypeError("decimal", it.Kind(), it.Kind())
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return value.Err, errTypeError("decimal", it.Kind(), it.Kind())
		}
		return NewDecimal(h, d), nil
	default:
		return value.Err, errTypeError("decimal", it.Kind(), it.Kind())
	}
}

// FnBinary implements fn_binary: renders item as its binary (string-stored)
// form (spec §4.4.3).
func FnBinary(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindString, value.KindBinary:
		return it, nil
	case value.KindSymbol:
		b, _ := heap.GetString(it)
		return h.StrCopy(b), nil
	case value.KindInt:
		return h.StrCopy([]byte(strconv.FormatInt(it.AsInt(), 10))), nil
	case value.KindInt64:
		n, _ := asInt64(h, it)
		return h.StrCopy([]byte(strconv.FormatInt(n, 10))), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.StrCopy([]byte(strconv.FormatFloat(f, 'g', -1, 64))), nil
	default:
		return value.Err, errTypeError("binary", it.Kind(), it.Kind())
	}
}

// FnSymbol implements fn_symbol: renders item as a structural symbol string
// (spec §4.4.3).
func FnSymbol(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindSymbol:
		return it, nil
	case value.KindString:
		b, _ := heap.GetString(it)
		return h.CreateSymbol("", string(b)), nil
	case value.KindInt:
		return h.CreateSymbol("", strconv.FormatInt(it.AsInt(), 10)), nil
	case value.KindInt64:
		n, _ := asInt64(h, it)
		return h.CreateSymbol("", strconv.FormatInt(n, 10)), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.CreateSymbol("", strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return value.Err, errTypeError("symbol", it.Kind(), it.Kind())
	}
}

// parseNumericString attempts to parse s first as an INT56-range integer,
// then as a float, mirroring fn_pos/fn_neg's "try integer, then float"
// fallback for string/symbol operands.
func parseNumericString(h *heap.Heap, s string) (value.Item, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if checkINT56(n) {
			return value.FromInt(n), true
		}
		return h.PushInt64(n), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return h.PushFloat64(f), true
	}
	return value.Err, false
}

// FnPos implements unary +: numeric operands pass through unchanged;
// string/symbol operands are parsed as a number (spec §4.4.3; lambda-eval-
// num.cpp fn_pos).
func FnPos(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt, value.KindInt64, value.KindFloat, value.KindDecimal:
		return it, nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		if result, ok := parseNumericString(h, s); ok {
			return result, nil
		}
		return value.Err, errTypeError("pos", it.Kind(), it.Kind())
	default:
		return value.Err, errTypeError("pos", it.Kind(), it.Kind())
	}
}

// FnNeg implements unary -: negates numeric operands; string/symbol
// operands are parsed as a number and negated (spec §4.4.3; lambda-eval-
// num.cpp fn_neg).
func FnNeg(h *heap.Heap, it value.Item) (value.Item, error) {
	switch it.Kind() {
	case value.KindInt:
		return value.FromInt(-it.AsInt()), nil
	case value.KindInt64:
		n, _ := asInt64(h, it)
		return h.PushInt64(-n), nil
	case value.KindFloat:
		f, _ := asFloat64(h, it)
		return h.PushFloat64(-f), nil
	case value.KindDecimal:
		return NewDecimal(h, DecimalValue(it).Neg()), nil
	case value.KindString, value.KindSymbol:
		s, _ := stringContent(it)
		result, ok := parseNumericString(h, s)
		if !ok {
			return value.Err, errTypeError("neg", it.Kind(), it.Kind())
		}
		return FnNeg(h, result)
	default:
		return value.Err, errTypeError("neg", it.Kind(), it.Kind())
	}
}
