package types

// Occurrence is a unary occurrence operator attached to a type: ? (0-1),
// + (>=1), * (>=0) (§3 "TypeUnary{op ∈ {?, +, *}, operand: *Type}";
// §GLOSSARY "Occurrence operator").
type Occurrence uint8

const (
	// OccurrenceOptional is ? — zero or one occurrence.
	OccurrenceOptional Occurrence = iota
	// OccurrenceOneOrMore is + — at least one occurrence.
	OccurrenceOneOrMore
	// OccurrenceZeroOrMore is * — any number of occurrences, including none.
	OccurrenceZeroOrMore
)

// String renders the occurrence operator's schema syntax.
func (o Occurrence) String() string {
	switch o {
	case OccurrenceOptional:
		return "?"
	case OccurrenceOneOrMore:
		return "+"
	case OccurrenceZeroOrMore:
		return "*"
	default:
		return "?"
	}
}

// Satisfies reports whether count repetitions of the wrapped type satisfy
// the occurrence operator.
func (o Occurrence) Satisfies(count int) bool {
	switch o {
	case OccurrenceOptional:
		return count <= 1
	case OccurrenceOneOrMore:
		return count >= 1
	case OccurrenceZeroOrMore:
		return true
	default:
		return false
	}
}

// TypeUnary wraps an operand type with an occurrence operator
// (§3 "TypeUnary{op, operand}").
type TypeUnary struct {
	Type
	op      Occurrence
	operand Descriptor
}

// NewTypeUnary returns a TypeUnary wrapping operand with op. operand may be
// a primitive *Type or any composite descriptor.
func NewTypeUnary(op Occurrence, operand Descriptor) *TypeUnary {
	return &TypeUnary{Type: Type{base: BaseUnary}, op: op, operand: operand}
}

// Op returns the occurrence operator.
func (u *TypeUnary) Op() Occurrence { return u.op }

// Operand returns the wrapped type.
func (u *TypeUnary) Operand() Descriptor { return u.operand }
