package types

// TypeType wraps/forwards a referred named type, used when a schema
// position names another declared type rather than inlining a descriptor
// (§3 "TypeType{type: *Type} — wrapper used to carry/forward a referred
// type"; §4.5 "Type wrapper: if the inner base type is a TypeUnary with an
// occurrence operator, validate recursively against the operand;
// otherwise validate against the inner type").
type TypeType struct {
	Type
	inner Descriptor
}

// NewTypeType wraps inner in a forwarding TypeType descriptor. inner may be
// a primitive *Type or any composite descriptor.
func NewTypeType(inner Descriptor) *TypeType {
	return &TypeType{Type: Type{base: BaseTypeRef}, inner: inner}
}

// Inner returns the wrapped/forwarded type.
func (t *TypeType) Inner() Descriptor { return t.inner }

// Union is a named alternation of candidate arms, tried in declaration
// order during validation; on mismatch the validator reports the arm with
// the fewest structural errors as the "closest match" (§4.5).
type Union struct {
	Type
	arms []Descriptor
}

// NewUnion returns a Union descriptor over arms, tried in order.
func NewUnion(name string, arms []Descriptor) *Union {
	return &Union{Type: Type{base: BaseUnion, name: name}, arms: arms}
}

// Arms returns the union's candidate types in declaration order.
func (u *Union) Arms() []Descriptor { return u.arms }
