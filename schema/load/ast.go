package load

import (
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

// exprKind discriminates the small type-expression grammar the parser
// builds before resolving names into types.Descriptor values (spec.md
// §4.3's declarative schema subset).
type exprKind int

const (
	exprPrimitive exprKind = iota
	exprIdentifier
	exprArray
	exprMap
	exprElement
	exprUnion
	exprOccurrence
)

// exprNode is one node of the type-expression AST. Only the fields
// relevant to its kind are populated; this mirrors a tagged union as a
// plain Go struct per production rather than an interface hierarchy.
type exprNode struct {
	kind exprKind
	span location.Span

	primKind value.Kind // exprPrimitive

	name string // exprIdentifier: referenced type name

	elem   *exprNode // exprArray: element type
	length int       // exprArray: fixed length, 0 = unconstrained

	tag           string      // exprElement: required tag, "" = any
	contentLength int         // exprMap/exprElement: n/a for map; element only
	fields        []fieldNode // exprMap, exprElement

	arms []*exprNode // exprUnion

	op      types.Occurrence // exprOccurrence
	operand *exprNode        // exprOccurrence
}

// fieldNode is one field of a map or element literal. A field with
// embedded set true came from "...: Type" and becomes an unnamed
// mixin entry (types.TypeMap.ExtendEmbedded); otherwise it is a named
// field (types.TypeMap.Extend).
type fieldNode struct {
	name     string
	embedded bool
	typ      *exprNode
}

// declNode is one "type Name = Expr" declaration.
type declNode struct {
	name string
	span location.Span
	expr *exprNode
}
