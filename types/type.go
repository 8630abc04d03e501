// Package types defines the Lambda type/shape descriptor system: Type,
// TypeMap, TypeElmt, TypeArray, TypeUnary, TypeType, and ShapeEntry
// (spec.md §3 "Type descriptors", §4.3). A Registry deduplicates
// equally-shaped descriptors so structurally identical maps share one
// TypeMap.
package types

import "github.com/lambda-lang/core/value"

// Base identifies which Type variant a descriptor is, mirroring value.Kind
// but scoped to the declarative type language rather than runtime values
// (a schema can declare NUMBER or a union, which are never a runtime
// Item's actual Kind).
type Base uint8

const (
	// BasePrimitive covers STRING, INT, FLOAT, BOOL, NULL, DTIME, BINARY,
	// and the numeric-ladder sentinels INT64, DECIMAL, NUMBER.
	BasePrimitive Base = iota
	// BaseArray is a TypeArray.
	BaseArray
	// BaseMap is a TypeMap (not an element).
	BaseMap
	// BaseElement is a TypeElmt.
	BaseElement
	// BaseUnary is a TypeUnary occurrence wrapper (?, +, *).
	BaseUnary
	// BaseUnion is a named alternation of arms, tried in declaration order.
	BaseUnion
	// BaseTypeRef wraps/forwards a referred named type (TypeType).
	BaseTypeRef
)

// Type is the base type descriptor (§3 "Type{type_id, is_literal} — base").
// Concrete descriptors (TypeMap, TypeArray, TypeUnary, TypeType, Union)
// embed Type and are accessed through the Descriptor interface.
type Type struct {
	base      Base
	kind      value.Kind // meaningful only when base == BasePrimitive
	name      string     // named-type identity, "" for anonymous/inline types
	isLiteral bool
}

// Base returns the descriptor's variant discriminant.
func (t *Type) Base() Base { return t.base }

// Kind returns the runtime Kind a primitive Type expects. It is only
// meaningful when Base() == BasePrimitive.
func (t *Type) Kind() value.Kind { return t.kind }

// Name returns the type's declared name, or "" if it is anonymous.
func (t *Type) Name() string { return t.name }

// IsLiteral reports whether this descriptor represents a single literal
// value (e.g. a quoted string constant used as a type) rather than a kind.
func (t *Type) IsLiteral() bool { return t.isLiteral }

// Descriptor is implemented by every concrete type descriptor so generic
// code (the validator, the registry) can walk a Type tree without a type
// switch at every call site.
type Descriptor interface {
	Base() Base
	Name() string
}

// NewPrimitive returns a Type descriptor for a primitive runtime Kind.
func NewPrimitive(kind value.Kind) *Type {
	return &Type{base: BasePrimitive, kind: kind}
}

// NewNamedPrimitive returns a primitive Type descriptor with a declared name
// (used for the numeric-ladder pseudo-kinds NUMBER and for named aliases).
func NewNamedPrimitive(name string, kind value.Kind) *Type {
	return &Type{base: BasePrimitive, kind: kind, name: name}
}

// NewLiteral returns a Type descriptor matching only one literal value.
func NewLiteral(kind value.Kind) *Type {
	return &Type{base: BasePrimitive, kind: kind, isLiteral: true}
}
