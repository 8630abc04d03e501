// Package validate implements structural validation of runtime Items
// against declared Types (spec.md §4.5 "Validator"). Unlike a relational
// graph validator — which checks instances against a class schema
// (required properties, primary keys, edge/composition
// wiring) — this validator walks a plain value.Item tree against a
// types.Descriptor tree: Primitive kind/numeric-ladder checks, TypeMap
// field-by-field recursion, TypeArray/List element recursion, TypeElmt tag
// and attribute checks, Union try-each-arm, and ?/+/* occurrence counts.
// The error-collection idiom (diag.Collector, path-qualified issues,
// panic-recovery) is grounded directly on instance.Validator.
package validate

import (
	"fmt"
	"time"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/validate/vpath"
	"github.com/lambda-lang/core/value"
)

// Resolver resolves a declared type name to its descriptor (spec.md §4.5
// "validate(validator, item, type_name)"). schema/load's loaded schema is
// the eventual production Resolver; validate depends only on this small
// interface so it never has to import schema/load.
type Resolver interface {
	ResolveType(name string) (types.Descriptor, bool)
}

// Validator checks Items against declared Types. A Validator is immutable
// and stateless once constructed, and is safe for concurrent use: every
// Validate/ValidateAgainstType call builds its own session state (visited
// set, depth counter, deadline, collector), per spec.md §5's "only the
// validator exposes timeout/error-cap; everything else is cooperative,
// single-threaded" model.
type Validator struct {
	heap *heap.Heap
	cfg  *config
}

// New creates a Validator. h supplies the numeric stack that boxes typed
// array elements (ArrayInt64/ArrayFloat) when they are surfaced as Items
// during validation (spec.md §4.4.1); New never writes to h.
func New(h *heap.Heap, opts ...Option) *Validator {
	if h == nil {
		panic("validate.New: nil heap")
	}
	return &Validator{heap: h, cfg: applyOptions(opts)}
}

// Validate resolves typeName via resolver and validates item against it
// (spec.md §4.5 "validate(validator, item, type_name) -> ValidationResult").
func (v *Validator) Validate(item value.Item, resolver Resolver, typeName string) Result {
	if v == nil {
		panic(ErrNilValidator)
	}
	typ, found := resolver.ResolveType(typeName)
	if !found {
		c := diag.NewCollectorUnlimited()
		c.Collect(diag.NewIssue(diag.Error, ErrReferenceError,
			fmt.Sprintf("type %q is not declared", typeName)).
			WithPath("", vpath.Root().String()).
			Build())
		return newResult(c.Result())
	}
	return v.ValidateAgainstType(item, typ)
}

// ValidateAgainstType validates item against typ directly (spec.md §4.5
// "validate_against_type(validator, item, type) -> ValidationResult").
func (v *Validator) ValidateAgainstType(item value.Item, typ types.Descriptor) Result {
	if v == nil {
		panic(ErrNilValidator)
	}
	if typ == nil {
		c := diag.NewCollectorUnlimited()
		c.Collect(diag.NewIssue(diag.Error, ErrParseError, "validate: nil type descriptor").
			WithPath("", vpath.Root().String()).
			Build())
		return newResult(c.Result())
	}

	s := v.newSession()
	defer func() {
		if r := recover(); r != nil {
			ie := wrapPanicValue(r, KindDispatchPanic)
			s.collect(ErrInternal, ie.Error(), vpath.Root())
		}
	}()
	s.validate(item, typ, vpath.Root())
	return newResult(s.collector.Result())
}

// session holds the per-call state a single ValidateAgainstType traversal
// needs, keeping Validator itself free of mutable state (spec.md §4.5's
// global controls: max_depth, max_errors, timeout_ms, visited_nodes).
type session struct {
	v         *Validator
	collector *diag.Collector
	visited   map[string]bool
	depth     int
	deadline  time.Time
	hasDDL    bool
	stopped   bool
}

func (v *Validator) newSession() *session {
	s := &session{
		v:         v,
		collector: diag.NewCollector(v.cfg.maxErrors),
		visited:   make(map[string]bool),
	}
	if v.cfg.timeout > 0 {
		s.deadline = time.Now().Add(v.cfg.timeout)
		s.hasDDL = true
	}
	return s
}

// shouldStop reports whether max_errors or timeout_ms has been hit, per
// spec.md §4.5's short-circuit rule ("max_errors: >0 short-circuits after
// the Nth error"; "timeout_ms: measured from session start").
func (s *session) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.v.cfg.maxErrors > 0 && s.collector.Len() >= s.v.cfg.maxErrors {
		s.stopped = true
		s.collector.Collect(diag.NewIssue(diag.Fatal, ErrLimitReached,
			fmt.Sprintf("validation stopped after %d errors", s.v.cfg.maxErrors)).
			WithPath("", vpath.Root().String()).
			Build())
		return true
	}
	if s.hasDDL && time.Now().After(s.deadline) {
		s.stopped = true
		s.collector.Collect(diag.NewIssue(diag.Fatal, ErrLimitReached,
			"validation stopped: timeout exceeded").
			WithPath("", vpath.Root().String()).
			Build())
		return true
	}
	return false
}

func (s *session) collect(code diag.Code, msg string, p vpath.Builder, details ...diag.Detail) {
	b := diag.NewIssue(diag.Error, code, msg).WithPath("", p.String())
	if len(details) > 0 {
		b = b.WithDetails(details...)
	}
	s.collector.Collect(b.Build())
}

// validate dispatches on typ's concrete descriptor kind. A *types.Type
// (concrete pointer) can never be switched back into *types.TypeMap/
// *types.TypeArray/etc. — only the Descriptor interface preserves dynamic
// type across a type switch — which is why every call in this package
// threads types.Descriptor, never a bare *types.Type, except at the
// primitive leaf.
func (s *session) validate(item value.Item, typ types.Descriptor, p vpath.Builder) {
	if s.shouldStop() {
		return
	}

	if name := typ.Name(); name != "" {
		if s.visited[name] {
			s.collect(ErrCircularReference,
				fmt.Sprintf("type %q is self-referential at this position", name), p)
			return
		}
		s.visited[name] = true
		defer delete(s.visited, name)
	}

	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.v.cfg.maxDepth {
		s.collect(ErrConstraintViolation,
			fmt.Sprintf("maximum validation depth (%d) exceeded", s.v.cfg.maxDepth), p)
		return
	}

	switch t := typ.(type) {
	case *types.TypeElmt:
		s.validateElement(item, t, p)
	case *types.TypeMap:
		s.validateMap(item, t, p)
	case *types.TypeArray:
		s.validateArray(item, t, p)
	case *types.Union:
		s.validateUnion(item, t, p)
	case *types.TypeUnary:
		s.validateOccurrence(item, t, p)
	case *types.TypeType:
		s.validateTypeRef(item, t, p)
	case *types.Type:
		s.validatePrimitive(item, t, p)
	default:
		s.collect(ErrInternal, fmt.Sprintf("unrecognised type descriptor %T", typ), p)
	}
}

// validatePrimitive implements spec.md §4.5's Primitive dispatch rule:
// exact kind match, or numeric-ladder promotion when the declared kind is
// one of INT..NUMBER and the item's kind rank satisfies it, or KindAny
// which accepts anything but NULL is still reported via the TypeMap/
// TypeArray layer that calls this (a bare ANY field accepts NULL too).
func (s *session) validatePrimitive(item value.Item, typ *types.Type, p vpath.Builder) {
	declared := typ.Kind()

	// typ.IsLiteral() marks a literal-constant Type, but types.NewLiteral
	// currently records only the declared Kind, not the literal's actual
	// value (no storage field exists yet for it — see DESIGN.md), so a
	// literal Type validates as an ordinary kind check until schema/load
	// gives it a value to compare against.

	if declared == value.KindAny {
		return
	}

	itemKind := item.Kind()
	if itemKind == declared {
		return
	}
	if itemKind.SatisfiesRank(declared) {
		return
	}

	s.collect(ErrTypeMismatch,
		fmt.Sprintf("expected %s, got %s", declared, itemKind), p,
		diag.ExpectedGot(declared.String(), itemKind.String())...)
}

// validateTypeRef implements the TypeType forwarding rule: if the wrapped
// type is a TypeUnary, recurse into occurrence handling directly (spec.md
// §4.5 "Type wrapper: if the inner base type is a TypeUnary with an
// occurrence operator, validate recursively against the operand");
// otherwise recurse straight into the inner type.
func (s *session) validateTypeRef(item value.Item, typ *types.TypeType, p vpath.Builder) {
	inner := typ.Inner()
	if inner == nil {
		s.collect(ErrReferenceError, "type reference has no target", p)
		return
	}
	s.validate(item, inner, p)
}

// validateArray implements spec.md §4.5's TypeArray dispatch: the item
// must be an array/list-kind sequence; each element recurses against the
// declared nested type with an index path segment, unless nested is a
// TypeUnary, in which case the occurrence operator is checked over the
// array's own element count rather than once per element.
func (s *session) validateArray(item value.Item, typ *types.TypeArray, p vpath.Builder) {
	get, n, ok := sequence(s.v.heap, item)
	if !ok {
		s.collect(ErrTypeMismatch,
			fmt.Sprintf("expected an array or list, got %s", item.Kind()), p,
			diag.ExpectedGot("array", item.Kind().String())...)
		return
	}
	if typ.Length() > 0 && n != typ.Length() {
		s.collect(ErrConstraintViolation,
			fmt.Sprintf("expected %d elements, got %d", typ.Length(), n), p)
	}

	nested := typ.Nested()
	if nested == nil {
		return
	}
	if unary, isUnary := nested.(*types.TypeUnary); isUnary {
		if !unary.Op().Satisfies(n) {
			s.collect(ErrOccurrenceError,
				fmt.Sprintf("occurrence %q not satisfied: got %d elements", unary.Op(), n), p)
			return
		}
		for i := 0; i < n; i++ {
			s.validate(get(i), unary.Operand(), p.Index(i))
		}
		return
	}
	for i := 0; i < n; i++ {
		s.validate(get(i), nested, p.Index(i))
	}
}

// validateMap implements spec.md §4.5's TypeMap dispatch: walk the shape,
// reporting MISSING_FIELD for an absent non-optional field, NULL_VALUE for
// a present-but-null non-optional field, and recursing on every present
// field's value against its declared type otherwise.
func (s *session) validateMap(item value.Item, typ *types.TypeMap, p vpath.Builder) {
	m, ok := mapOf(item)
	if !ok {
		s.collect(ErrTypeMismatch,
			fmt.Sprintf("expected a map, got %s", item.Kind()), p,
			diag.ExpectedGot("map", item.Kind().String())...)
		return
	}

	for e := typ.Shape(); e != nil; e = e.Next() {
		name, hasName := e.Name()
		if !hasName {
			continue // unnamed embedded-map mixin entry; no direct field to check
		}
		fieldPath := p.Field(name)
		fieldType := e.Type()

		val, present := m.Get(name)
		optional := isOptional(fieldType)

		if !present {
			if !optional {
				s.collect(ErrMissingField,
					fmt.Sprintf("required field %q is missing", name), fieldPath,
					diag.Detail{Key: diag.DetailKeyField, Value: name})
			}
			continue
		}
		if val.IsNull() {
			if !optional {
				s.collect(ErrNullValue,
					fmt.Sprintf("field %q must not be null", name), fieldPath,
					diag.Detail{Key: diag.DetailKeyField, Value: name})
			}
			continue
		}
		s.validate(val, fieldType, fieldPath)
	}
}

// validateElement implements spec.md §4.5's TypeElmt dispatch: tag
// comparison (skipped when the declared tag is empty, meaning any tag is
// accepted), attribute validation reusing the Map rules via the embedded
// TypeMap, and a content_length check against the element's children.
func (s *session) validateElement(item value.Item, typ *types.TypeElmt, p vpath.Builder) {
	e, ok := elementOf(item)
	if !ok {
		s.collect(ErrTypeMismatch,
			fmt.Sprintf("expected an element, got %s", item.Kind()), p,
			diag.ExpectedGot("element", item.Kind().String())...)
		return
	}

	if want := typ.Tag(); want != "" && e.Tag() != want {
		s.collect(ErrInvalidElement,
			fmt.Sprintf("expected element <%s>, got <%s>", want, e.Tag()), p.ElementTag(want),
			diag.ExpectedGot(want, e.Tag())...)
	}

	s.validateMap(item, &typ.TypeMap, p)

	if want := typ.ContentLength(); want > 0 {
		if got := len(e.Children()); got != want {
			s.collect(ErrConstraintViolation,
				fmt.Sprintf("expected %d child elements, got %d", want, got), p)
		}
	}
}

// validateUnion implements spec.md §4.5's Union dispatch: try each arm in
// declaration order with its own sub-collector; the first arm with zero
// errors wins. If every arm fails, report the arm with the fewest errors
// as the closest match plus a top-level TYPE_MISMATCH summary.
func (s *session) validateUnion(item value.Item, typ *types.Union, p vpath.Builder) {
	arms := typ.Arms()
	if len(arms) == 0 {
		s.collect(ErrReferenceError, "union has no arms", p)
		return
	}

	var bestErrs []ValidationError
	bestIdx := -1

	for i, arm := range arms {
		sub := s.v.newSession()
		sub.depth = s.depth
		armPath := p.UnionArm(i)
		sub.validate(item, arm, armPath)
		res := newResult(sub.collector.Result())
		if res.Valid() {
			return
		}
		if bestIdx == -1 || len(res.Errors()) < len(bestErrs) {
			bestIdx = i
			bestErrs = res.Errors()
		}
	}

	s.collect(ErrTypeMismatch,
		fmt.Sprintf("value matched no union arm (closest: arm %d, %d error(s))", bestIdx, len(bestErrs)),
		p)
	for _, e := range bestErrs {
		s.collector.Collect(diag.NewIssue(diag.Error, e.Code, e.Message).
			WithPath("", e.Path).
			Build())
	}
}

// validateOccurrence implements spec.md §4.5's Occurrence dispatch for a
// TypeUnary reached outside the TypeArray-nested or TypeMap-field special
// cases: item is treated as the sequence being counted directly (a
// sequence kind contributes its element count; any other non-null item
// counts as a single occurrence; null counts as zero), the operator is
// checked against that count, then every occurrence validates against the
// wrapped operand.
func (s *session) validateOccurrence(item value.Item, typ *types.TypeUnary, p vpath.Builder) {
	get, n, isSeq := sequence(s.v.heap, item)
	if !isSeq {
		if item.IsNull() {
			n = 0
		} else {
			n = 1
			get = func(int) value.Item { return item }
		}
	}
	if !typ.Op().Satisfies(n) {
		s.collect(ErrOccurrenceError,
			fmt.Sprintf("occurrence %q not satisfied: got %d", typ.Op(), n), p)
		return
	}
	for i := 0; i < n; i++ {
		s.validate(get(i), typ.Operand(), p.Index(i))
	}
}

// isOptional reports whether fieldType is a TypeUnary with the ? operator,
// the only occurrence that makes a map field's absence/null acceptable
// (spec.md §4.5 "MISSING_FIELD if absent and not ?; NULL_VALUE if present
// but null and not ?").
func isOptional(fieldType types.Descriptor) bool {
	unary, ok := fieldType.(*types.TypeUnary)
	return ok && unary.Op() == types.OccurrenceOptional
}
