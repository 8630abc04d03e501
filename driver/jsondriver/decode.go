package jsondriver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/jsonc"

	"github.com/lambda-lang/core/container"
	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/validate/vpath"
	"github.com/lambda-lang/core/value"
)

// contentKey names the JSON object key that carries a decoded TypeElmt's
// ordered content children (see doc.go's "Element content convention").
const contentKey = "#content"

// Decode parses data as a single JSON document and builds a value.Item
// tree on h shaped by typ (SPEC_FULL.md §2's parser-driver surface).
// Decoding is lenient: a JSON/type shape mismatch is reported as an
// E_ADAPTER_PARSE diagnostic and decoded as best-effort NULL, so one bad
// leaf does not abort decoding the rest of the document. The returned
// Item is not validated; pass it to a validate.Validator for structural
// checking.
func (d *Driver) Decode(h *heap.Heap, source location.SourceID, data []byte, typ types.Descriptor) (value.Item, diag.Result) {
	if h == nil {
		return value.Null, diag.Result{}
	}
	if typ == nil {
		c := diag.NewCollectorUnlimited()
		c.Collect(d.parseError(source, 0, "jsondriver: nil type descriptor"))
		return value.Null, c.Result()
	}

	raw, c := d.decodeJSON(source, data)
	if raw == nil && c.HasFatal() {
		return value.Null, c.Result()
	}

	dc := &decodeCtx{driver: d, h: h, source: source, diags: c}
	item := dc.decodeValue(raw, typ, vpath.Root())
	return item, c.Result()
}

// DecodeArray parses data as a JSON array and decodes each element against
// elemType: the caller already knows every element's type, so no
// per-object $type tag is needed.
func (d *Driver) DecodeArray(h *heap.Heap, source location.SourceID, data []byte, elemType types.Descriptor) ([]value.Item, diag.Result) {
	if h == nil {
		return nil, diag.Result{}
	}
	if elemType == nil {
		c := diag.NewCollectorUnlimited()
		c.Collect(d.parseError(source, 0, "jsondriver: nil element type descriptor"))
		return nil, c.Result()
	}

	raw, c := d.decodeJSON(source, data)
	if raw == nil && c.HasFatal() {
		return nil, c.Result()
	}
	list, ok := raw.([]any)
	if !ok {
		c.Collect(d.parseError(source, 0, fmt.Sprintf("expected a JSON array, got %T", raw)))
		return nil, c.Result()
	}

	dc := &decodeCtx{driver: d, h: h, source: source, diags: c}
	items := make([]value.Item, 0, len(list))
	for i, elem := range list {
		items = append(items, dc.decodeValue(elem, elemType, vpath.Root().Index(i)))
	}
	return items, c.Result()
}

// decodeJSON preprocesses (unless strict) and unmarshals data into Go's
// generic any representation, normalizing json.Number into int64/float64
// via normalizeNumbers below.
func (d *Driver) decodeJSON(source location.SourceID, data []byte) (any, *diag.Collector) {
	c := diag.NewCollectorUnlimited()

	processed := data
	if !d.strictJSON {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		c.Collect(d.parseError(source, 0, "invalid JSON: "+err.Error()))
		return nil, c
	}
	if tok, err := dec.Token(); err == nil {
		c.Collect(d.parseError(source, int(dec.InputOffset()), fmt.Sprintf("unexpected content after root value: found %v", tok)))
	}
	return normalizeNumbers(raw), c
}

// parseError builds an E_ADAPTER_PARSE issue, attaching a point span when
// location tracking is enabled and the offset resolves to a real position.
func (d *Driver) parseError(source location.SourceID, offset int, msg string) diag.Issue {
	ib := diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE, msg).
		WithDetail(diag.DetailKeyFormat, "json")
	if d.trackLocations && d.registry != nil {
		pos := d.registry.PositionAt(source, offset)
		if !pos.IsZero() {
			ib = ib.WithSpan(location.Span{Source: source, Start: pos, End: pos})
		}
	}
	return ib.Build()
}

// decodeCtx threads the heap, source, and diagnostics collector through a
// single Decode/DecodeArray call's recursive descent, closing over
// per-call state rather than relying on a package global.
type decodeCtx struct {
	driver *Driver
	h      *heap.Heap
	source location.SourceID
	diags  *diag.Collector
}

func (c *decodeCtx) fail(offset int, p vpath.Builder, msg string) {
	c.failCode(diag.E_ADAPTER_PARSE, offset, p, msg)
}

// failCode is fail with an explicit code, so a decode-time finding that
// spec.md §7 already names as a structural error category (e.g.
// E_UNEXPECTED_FIELD) is reported under that code instead of the generic
// adapter-parse bucket.
func (c *decodeCtx) failCode(code diag.Code, offset int, p vpath.Builder, msg string) {
	ib := diag.NewIssue(diag.Error, code, msg).
		WithDetail(diag.DetailKeyFormat, "json").
		WithPath("", p.String())
	if c.driver.trackLocations && c.driver.registry != nil {
		pos := c.driver.registry.PositionAt(c.source, offset)
		if !pos.IsZero() {
			ib = ib.WithSpan(location.Span{Source: c.source, Start: pos, End: pos})
		}
	}
	c.diags.Collect(ib.Build())
}

// decodeValue dispatches on typ's concrete descriptor kind, mirroring
// validate.session.validate's own dispatch switch exactly (see
// validate/validator.go) so the shapes jsondriver builds are precisely
// the shapes the validator later expects to walk.
func (c *decodeCtx) decodeValue(raw any, typ types.Descriptor, p vpath.Builder) value.Item {
	switch t := typ.(type) {
	case *types.TypeElmt:
		return c.decodeElement(raw, t, p)
	case *types.TypeMap:
		return c.decodeMap(raw, t, p)
	case *types.TypeArray:
		return c.decodeArray(raw, t, p)
	case *types.Union:
		return c.decodeUnion(raw, t, p)
	case *types.TypeUnary:
		return c.decodeOccurrence(raw, t, p)
	case *types.TypeType:
		if t.Inner() == nil {
			c.fail(0, p, "type reference has no target")
			return value.Null
		}
		return c.decodeValue(raw, t.Inner(), p)
	case *types.Type:
		return c.decodePrimitive(raw, t, p)
	default:
		c.fail(0, p, fmt.Sprintf("unrecognised type descriptor %T", typ))
		return value.Null
	}
}

func (c *decodeCtx) decodePrimitive(raw any, typ *types.Type, p vpath.Builder) value.Item {
	if typ.Kind() == value.KindAny {
		return c.decodeDynamic(raw, p)
	}
	if raw == nil {
		return value.Null
	}
	switch typ.Kind() {
	case value.KindBool:
		b, ok := raw.(bool)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON boolean, got %T", raw))
			return value.Null
		}
		return value.FromBool(b)
	case value.KindInt:
		n, ok := asInt64(raw)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON integer, got %T", raw))
			return value.Null
		}
		return value.FromInt(n)
	case value.KindInt64:
		n, ok := asInt64(raw)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON integer, got %T", raw))
			return value.Null
		}
		return c.h.PushInt64(n)
	case value.KindFloat:
		f, ok := asFloat64(raw)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON number, got %T", raw))
			return value.Null
		}
		return c.h.PushFloat64(f)
	case value.KindDecimal:
		dval, ok := asDecimal(raw)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON number or numeric string, got %T", raw))
			return value.Null
		}
		return container.NewDecimal(c.h, dval)
	case value.KindString:
		s, ok := raw.(string)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON string, got %T", raw))
			return value.Null
		}
		return c.h.StrCopy([]byte(s))
	case value.KindSymbol:
		s, ok := raw.(string)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON string, got %T", raw))
			return value.Null
		}
		return c.h.CreateSymbol("", s)
	case value.KindBinary:
		s, ok := raw.(string)
		if !ok {
			c.fail(0, p, fmt.Sprintf("expected a JSON string, got %T", raw))
			return value.Null
		}
		return c.h.BinCopy([]byte(s))
	case value.KindNull:
		if raw != nil {
			c.fail(0, p, fmt.Sprintf("expected null, got %T", raw))
		}
		return value.Null
	default:
		c.fail(0, p, fmt.Sprintf("cannot decode a JSON value for kind %s", typ.Kind()))
		return value.Null
	}
}

// decodeDynamic decodes raw with no declared type to guide it (a KindAny
// primitive position), inferring the runtime kind directly from the JSON
// shape: object -> an untyped Map (an empty TypeMap extended on the fly
// via Map.Put), array -> Array, scalar -> its natural kind.
func (c *decodeCtx) decodeDynamic(raw any, p vpath.Builder) value.Item {
	switch v := raw.(type) {
	case nil:
		return value.Null
	case bool:
		return value.FromBool(v)
	case int64:
		return value.FromInt(v)
	case float64:
		return c.h.PushFloat64(v)
	case string:
		return c.h.StrCopy([]byte(v))
	case []any:
		arr := container.NewArray(c.h.NewHeapContainer())
		for i, elem := range v {
			arr.Push(c.decodeDynamic(elem, p.Index(i)))
		}
		return arr.End()
	case map[string]any:
		tm := types.NewTypeMap("")
		m := container.NewMap(c.h.NewHeapContainer(), tm)
		for key, val := range v {
			item := c.decodeDynamic(val, p.Field(key))
			// Put's fieldType argument only matters the first time a key
			// is added to an as-yet-unshaped TypeMap (it extends the
			// shape); a placeholder primitive keyed off the decoded
			// item's own kind keeps that call well-typed without
			// asserting anything the caller relies on, since nothing
			// structurally validates an ad hoc KindAny map against tm.
			m.Put(key, types.NewPrimitive(item.Kind()), item)
		}
		return m.End()
	default:
		c.fail(0, p, fmt.Sprintf("cannot decode a JSON value of type %T", raw))
		return value.Null
	}
}

func (c *decodeCtx) decodeMap(raw any, typ *types.TypeMap, p vpath.Builder) value.Item {
	obj, ok := raw.(map[string]any)
	if !ok {
		if raw != nil {
			c.fail(0, p, fmt.Sprintf("expected a JSON object, got %T", raw))
		}
		return value.Null
	}
	m := container.NewMap(c.h.NewHeapContainer(), typ)
	c.fillMap(m, typ, obj, p)
	return m.End()
}

// fillMap walks typ's shape, pulling each named field's value out of obj
// and decoding it against the field's declared type; an unnamed shape
// entry is an embedded mixin, so the same obj is recursively matched
// against its nested shape instead of a sub-object. Keys in obj that the
// shape does not declare are reported, not silently dropped, since the
// packed Map has no slot to hold them.
func (c *decodeCtx) fillMap(m *container.Map, typ *types.TypeMap, obj map[string]any, p vpath.Builder) {
	seen := make(map[string]bool, len(obj))
	for e := typ.Shape(); e != nil; e = e.Next() {
		name, hasName := e.Name()
		if !hasName {
			if nested, ok := e.Type().(*types.TypeMap); ok {
				c.fillMap(m, nested, obj, p)
			}
			continue
		}
		seen[name] = true
		val, present := obj[name]
		if !present {
			continue // left as the zero Item; validate reports MISSING_FIELD if required
		}
		item := c.decodeValue(val, e.Type(), p.Field(name))
		m.Put(name, nil, item)
	}
	for key := range obj {
		if key == contentKey || seen[key] {
			continue
		}
		c.failCode(diag.E_UNEXPECTED_FIELD, 0, p.Field(key), fmt.Sprintf("field %q is not declared on this type", key))
	}
}

func (c *decodeCtx) decodeElement(raw any, typ *types.TypeElmt, p vpath.Builder) value.Item {
	obj, ok := raw.(map[string]any)
	if !ok {
		if raw != nil {
			c.fail(0, p, fmt.Sprintf("expected a JSON object, got %T", raw))
		}
		return value.Null
	}

	el := container.NewElement(c.h.NewHeapContainer(), typ)
	attrs := make(map[string]any, len(obj))
	for k, v := range obj {
		if k != contentKey {
			attrs[k] = v
		}
	}
	c.fillMap(&el.Map, &typ.TypeMap, attrs, p)

	if raw, ok := obj[contentKey]; ok {
		children, ok := raw.([]any)
		if !ok {
			c.fail(0, p.Field(contentKey), fmt.Sprintf("expected %q to be a JSON array, got %T", contentKey, raw))
		} else {
			for i, child := range children {
				el.PushChild(c.decodeDynamic(child, p.Index(i)))
			}
		}
	}

	return el.End()
}

func (c *decodeCtx) decodeArray(raw any, typ *types.TypeArray, p vpath.Builder) value.Item {
	list, ok := raw.([]any)
	if !ok {
		if raw != nil {
			c.fail(0, p, fmt.Sprintf("expected a JSON array, got %T", raw))
		}
		return value.Null
	}
	if want := typ.Length(); want > 0 && len(list) != want {
		c.fail(0, p, fmt.Sprintf("expected %d elements, got %d", want, len(list)))
	}

	nested := typ.Nested()
	arr := container.NewArray(c.h.NewHeapContainer())
	for i, elem := range list {
		if nested == nil {
			arr.Push(c.decodeDynamic(elem, p.Index(i)))
			continue
		}
		if unary, isUnary := nested.(*types.TypeUnary); isUnary {
			arr.Push(c.decodeValue(elem, unary.Operand(), p.Index(i)))
			continue
		}
		arr.Push(c.decodeValue(elem, nested, p.Index(i)))
	}
	return arr.End()
}

// decodeUnion tries each arm in order against a scratch collector,
// keeping the first arm whose decode produces zero diagnostics; if every
// arm reports a problem, the first arm's decode (and its diagnostics) is
// kept, mirroring validate.session.validateUnion's "closest match" intent
// without re-running validation here (that is validate's job once the
// Item exists).
func (c *decodeCtx) decodeUnion(raw any, typ *types.Union, p vpath.Builder) value.Item {
	arms := typ.Arms()
	if len(arms) == 0 {
		c.fail(0, p, "union has no arms")
		return value.Null
	}

	var fallback value.Item
	var fallbackIssues []diag.Issue
	haveFallback := false

	for i, arm := range arms {
		trial := diag.NewCollectorUnlimited()
		sub := &decodeCtx{driver: c.driver, h: c.h, source: c.source, diags: trial}
		item := sub.decodeValue(raw, arm, p.UnionArm(i))
		if !trial.HasErrors() {
			return item
		}
		if !haveFallback {
			fallback = item
			fallbackIssues = trial.Result().IssuesSlice()
			haveFallback = true
		}
	}

	for _, issue := range fallbackIssues {
		c.diags.Collect(issue)
	}
	return fallback
}

func (c *decodeCtx) decodeOccurrence(raw any, typ *types.TypeUnary, p vpath.Builder) value.Item {
	if typ.Op() == types.OccurrenceOptional {
		if raw == nil {
			return value.Null
		}
		return c.decodeValue(raw, typ.Operand(), p)
	}

	list, ok := raw.([]any)
	if !ok {
		if raw != nil {
			c.fail(0, p, fmt.Sprintf("expected a JSON array for a repeated value, got %T", raw))
		}
		return value.Null
	}
	arr := container.NewArray(c.h.NewHeapContainer())
	for i, elem := range list {
		arr.Push(c.decodeValue(elem, typ.Operand(), p.Index(i)))
	}
	return arr.End()
}

// normalizeNumbers recursively converts json.Number into int64 or
// float64; a number that parses as neither is left as its string form.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if !strings.Contains(val.String(), ".") && !strings.ContainsAny(val.String(), "eE") {
			if i, err := val.Int64(); err == nil {
				return i
			}
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, elem := range val {
			val[k] = normalizeNumbers(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = normalizeNumbers(elem)
		}
		return val
	default:
		return v
	}
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asDecimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}
