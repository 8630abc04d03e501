package load

import (
	"fmt"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

// resolver turns an AST of declNode/exprNode values into types.Descriptor
// trees registered in a *types.Registry. It runs in two conceptual passes
// over the declaration list: shell pre-allocation (so self- and
// forward-referencing map/element declarations share one pointer, mirroring
// how the validate package's own circular-reference test builds a
// self-referential TypeMap — allocate the empty shell, take a reference to
// it, then fill it in place) followed by on-demand resolution of every
// declaration, in source order, recursing into an as-yet-unresolved
// forward reference the first time it is needed.
type resolver struct {
	reg        *types.Registry
	shells     map[string]types.Descriptor
	declByName map[string]*declNode
	resolved   map[string]bool
	resolving  map[string]bool
	diags      *diag.Collector
}

// resolveSchema resolves decls into reg, reporting duplicate declarations
// (E_DUPLICATE_TYPE) and unresolvable names (E_UNKNOWN_TYPE /
// E_REFERENCE_ERROR) to diags. It returns the declared names in
// first-declaration order, duplicates excluded.
func resolveSchema(decls []declNode, reg *types.Registry, diags *diag.Collector) []string {
	firstSpan := make(map[string]location.Span, len(decls))
	unique := make([]declNode, 0, len(decls))
	order := make([]string, 0, len(decls))

	for _, d := range decls {
		if prior, dup := firstSpan[d.name]; dup {
			diags.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_TYPE,
				fmt.Sprintf("type %q is already declared", d.name)).
				WithSpan(d.span).
				WithRelated(location.RelatedInfo{Span: prior, Message: location.MsgPreviousDefinition}).
				Build())
			continue
		}
		firstSpan[d.name] = d.span
		unique = append(unique, d)
		order = append(order, d.name)
	}

	r := &resolver{
		reg:        reg,
		shells:     make(map[string]types.Descriptor, len(unique)),
		declByName: make(map[string]*declNode, len(unique)),
		resolved:   make(map[string]bool, len(unique)),
		resolving:  make(map[string]bool),
		diags:      diags,
	}

	for i := range unique {
		d := &unique[i]
		r.declByName[d.name] = d
		switch d.expr.kind {
		case exprMap:
			r.shells[d.name] = types.NewTypeMap(d.name)
		case exprElement:
			r.shells[d.name] = types.NewTypeElmt(d.expr.tag)
		}
	}

	for i := range unique {
		r.resolveDecl(&unique[i])
	}

	return order
}

func (r *resolver) resolveDecl(d *declNode) {
	if r.resolved[d.name] {
		return
	}
	switch d.expr.kind {
	case exprMap:
		tm := r.shells[d.name].(*types.TypeMap)
		r.fillMap(tm, d.expr.fields)
		r.reg.RegisterNamed(d.name, tm)
	case exprElement:
		te := r.shells[d.name].(*types.TypeElmt)
		r.fillMap(&te.TypeMap, d.expr.fields)
		if d.expr.contentLength > 0 {
			te.SetContentLength(d.expr.contentLength)
		}
		r.reg.RegisterNamed(d.name, te)
	default:
		r.resolving[d.name] = true
		desc := r.resolveExpr(d.expr, d.name)
		delete(r.resolving, d.name)
		r.reg.RegisterNamed(d.name, desc)
	}
	r.resolved[d.name] = true
}

// resolveExpr builds the descriptor e denotes. namedAs is non-empty only
// when e is the root expression of a "type Name = ..." declaration whose
// kind supports carrying that name directly (primitive alias, union);
// nested sub-expressions are always anonymous.
func (r *resolver) resolveExpr(e *exprNode, namedAs string) types.Descriptor {
	switch e.kind {
	case exprPrimitive:
		if namedAs != "" {
			return types.NewNamedPrimitive(namedAs, e.primKind)
		}
		return types.NewPrimitive(e.primKind)

	case exprIdentifier:
		return r.resolveIdentifier(e)

	case exprArray:
		arr := types.NewTypeArray(r.resolveExpr(e.elem, ""))
		if e.length > 0 {
			arr.SetLength(e.length)
		}
		return arr

	case exprMap:
		tm := types.NewTypeMap(namedAs)
		r.fillMap(tm, e.fields)
		return tm

	case exprElement:
		te := types.NewTypeElmt(e.tag)
		r.fillMap(&te.TypeMap, e.fields)
		if e.contentLength > 0 {
			te.SetContentLength(e.contentLength)
		}
		return te

	case exprUnion:
		arms := make([]types.Descriptor, 0, len(e.arms))
		for _, a := range e.arms {
			arms = append(arms, r.resolveExpr(a, ""))
		}
		return types.NewUnion(namedAs, arms)

	case exprOccurrence:
		return types.NewTypeUnary(e.op, r.resolveExpr(e.operand, ""))

	default:
		r.diags.Collect(diag.NewIssue(diag.Error, diag.E_SCHEMA_SYNTAX,
			"internal: unrecognised type-expression node").
			WithSpan(e.span).
			Build())
		return types.NewPrimitive(value.KindAny)
	}
}

func (r *resolver) fillMap(tm *types.TypeMap, fields []fieldNode) {
	for _, f := range fields {
		desc := r.resolveExpr(f.typ, "")
		if f.embedded {
			tm.ExtendEmbedded(desc)
		} else {
			tm.Extend(f.name, desc)
		}
	}
}

// resolveIdentifier resolves a bare type-name reference. Map/element roots
// resolve through their pre-allocated shell even before the shell's body
// is filled in (the shell is a stable pointer, so later filling is visible
// to every earlier reference); every other declaration kind is resolved
// on demand the first time it is referenced, since those kinds build their
// descriptor eagerly and so cannot support true self-reference (only
// map/element declarations can, per the types package's own construction
// API — see DESIGN.md).
func (r *resolver) resolveIdentifier(e *exprNode) types.Descriptor {
	name := e.name

	if shell, ok := r.shells[name]; ok {
		return shell
	}
	if r.resolved[name] {
		if d, ok := r.reg.Lookup(name); ok {
			return d
		}
	}
	if decl, ok := r.declByName[name]; ok {
		if r.resolving[name] {
			r.diags.Collect(diag.NewIssue(diag.Error, diag.E_REFERENCE_ERROR,
				fmt.Sprintf("type %q cannot reference itself: only map and element "+
					"declarations may be self-referential", name)).
				WithSpan(e.span).
				WithRelated(location.RelatedInfo{Span: decl.span, Message: location.MsgDeclaredHere}).
				Build())
			return types.NewPrimitive(value.KindAny)
		}
		r.resolving[name] = true
		r.resolveDecl(decl)
		delete(r.resolving, name)
		if d, ok := r.reg.Lookup(name); ok {
			return d
		}
	}
	if d, ok := r.reg.Lookup(name); ok {
		// Declared by an earlier source loaded into the same registry.
		return d
	}

	r.diags.Collect(diag.NewIssue(diag.Error, diag.E_UNKNOWN_TYPE,
		fmt.Sprintf("undeclared type %q", name)).
		WithSpan(e.span).
		Build())
	return types.NewPrimitive(value.KindAny)
}
