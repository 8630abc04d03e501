package load

import (
	"strconv"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

// primitiveKeywords maps the declarative schema language's primitive type
// names to the value.Kind they declare (spec.md §3's Kind set, minus the
// composite/container kinds which have their own literal syntax: array
// "[T]", map "{...}", element "elmt ... {...}").
var primitiveKeywords = map[string]value.Kind{
	"int":      value.KindInt,
	"int64":    value.KindInt64,
	"float":    value.KindFloat,
	"decimal":  value.KindDecimal,
	"number":   value.KindNumber,
	"bool":     value.KindBool,
	"string":   value.KindString,
	"symbol":   value.KindSymbol,
	"binary":   value.KindBinary,
	"datetime": value.KindDateTime,
	"null":     value.KindNull,
	"any":      value.KindAny,
}

// parser is a hand-written recursive-descent parser over the token
// stream a lexer produces. Grounded on the hand-rolled lexer/parser idiom
// seen elsewhere in the retrieval pack (firefly's tools/ruse) rather than
// a generated grammar.Parser, since spec.md §1 places a full
// Lambda-language parser out of scope and antlr4-go has no home left to
// wire into under that restriction (see DESIGN.md).
type parser struct {
	sourceID location.SourceID
	lexemes  []lexeme
	pos      int
	diags    *diag.Collector
}

func newParser(lexemes []lexeme, sourceID location.SourceID, diags *diag.Collector) *parser {
	return &parser{sourceID: sourceID, lexemes: lexemes, diags: diags}
}

// parseSchema parses a full source file into an ordered list of
// declarations, recovering at the next "type" keyword after a syntax
// error so one malformed declaration does not hide every later one.
func (p *parser) parseSchema() []declNode {
	var decls []declNode
	for p.cur().tok != tokEOF {
		start := p.pos
		if d, ok := p.parseTypeDecl(); ok {
			decls = append(decls, d)
		}
		if p.pos == start {
			// parseTypeDecl made no progress (e.g. an unrecognised leading
			// token); advance one token to guarantee termination.
			p.advance()
		}
		p.recoverToNextDecl()
	}
	return decls
}

func (p *parser) recoverToNextDecl() {
	for p.cur().tok != tokEOF {
		if p.cur().tok == tokIdentifier && p.cur().text == "type" {
			return
		}
		p.advance()
	}
}

func (p *parser) parseTypeDecl() (declNode, bool) {
	if !(p.cur().tok == tokIdentifier && p.cur().text == "type") {
		p.errorHere("expected 'type'")
		return declNode{}, false
	}
	start := p.cur()
	p.advance()

	nameTok := p.cur()
	if nameTok.tok != tokIdentifier {
		p.errorHere("expected a type name after 'type'")
		return declNode{}, false
	}
	p.advance()

	if !p.expect(tokEquals, "'='") {
		return declNode{}, false
	}

	expr, ok := p.parseTypeExpr()
	if !ok {
		return declNode{}, false
	}

	return declNode{
		name: nameTok.text,
		span: p.spanFrom(start),
		expr: expr,
	}, true
}

func (p *parser) parseTypeExpr() (*exprNode, bool) {
	return p.parseUnionExpr()
}

func (p *parser) parseUnionExpr() (*exprNode, bool) {
	start := p.cur()
	first, ok := p.parsePostfixExpr()
	if !ok {
		return nil, false
	}
	if p.cur().tok != tokPipe {
		return first, true
	}
	arms := []*exprNode{first}
	for p.cur().tok == tokPipe {
		p.advance()
		arm, ok := p.parsePostfixExpr()
		if !ok {
			return nil, false
		}
		arms = append(arms, arm)
	}
	return &exprNode{kind: exprUnion, span: p.spanFrom(start), arms: arms}, true
}

func (p *parser) parsePostfixExpr() (*exprNode, bool) {
	start := p.cur()
	operand, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}
	var op types.Occurrence
	switch p.cur().tok {
	case tokQuestion:
		op = types.OccurrenceOptional
	case tokPlus:
		op = types.OccurrenceOneOrMore
	case tokStar:
		op = types.OccurrenceZeroOrMore
	default:
		return operand, true
	}
	p.advance()
	return &exprNode{kind: exprOccurrence, span: p.spanFrom(start), op: op, operand: operand}, true
}

func (p *parser) parsePrimaryExpr() (*exprNode, bool) {
	start := p.cur()
	switch {
	case p.cur().tok == tokBracketOpen:
		return p.parseArrayLit()
	case p.cur().tok == tokBraceOpen:
		return p.parseMapLit()
	case p.cur().tok == tokIdentifier && p.cur().text == "elmt":
		return p.parseElementLit()
	case p.cur().tok == tokIdentifier:
		name := p.cur().text
		p.advance()
		if kind, ok := primitiveKeywords[name]; ok {
			return &exprNode{kind: exprPrimitive, span: p.spanFrom(start), primKind: kind}, true
		}
		return &exprNode{kind: exprIdentifier, span: p.spanFrom(start), name: name}, true
	default:
		p.errorHere("expected a type expression")
		return nil, false
	}
}

func (p *parser) parseArrayLit() (*exprNode, bool) {
	start := p.cur()
	p.advance() // '['
	elem, ok := p.parseTypeExpr()
	if !ok {
		return nil, false
	}
	length := 0
	if p.cur().tok == tokSemicolon {
		p.advance()
		if p.cur().tok != tokInteger {
			p.errorHere("expected an integer array length")
			return nil, false
		}
		n, err := strconv.Atoi(p.cur().text)
		if err != nil || n < 0 {
			p.errorHere("invalid array length")
			return nil, false
		}
		length = n
		p.advance()
	}
	if !p.expect(tokBracketClose, "']'") {
		return nil, false
	}
	return &exprNode{kind: exprArray, span: p.spanFrom(start), elem: elem, length: length}, true
}

func (p *parser) parseMapLit() (*exprNode, bool) {
	start := p.cur()
	fields, ok := p.parseBracedFieldList()
	if !ok {
		return nil, false
	}
	return &exprNode{kind: exprMap, span: p.spanFrom(start), fields: fields}, true
}

func (p *parser) parseElementLit() (*exprNode, bool) {
	start := p.cur()
	p.advance() // 'elmt'
	tag := ""
	if p.cur().tok == tokIdentifier {
		tag = p.cur().text
		p.advance()
	}
	fields, ok := p.parseBracedFieldList()
	if !ok {
		return nil, false
	}
	contentLength := 0
	if p.cur().tok == tokHash {
		p.advance()
		if p.cur().tok != tokInteger {
			p.errorHere("expected an integer content length after '#'")
			return nil, false
		}
		n, err := strconv.Atoi(p.cur().text)
		if err != nil || n < 0 {
			p.errorHere("invalid content length")
			return nil, false
		}
		contentLength = n
		p.advance()
	}
	return &exprNode{
		kind:          exprElement,
		span:          p.spanFrom(start),
		tag:           tag,
		fields:        fields,
		contentLength: contentLength,
	}, true
}

func (p *parser) parseBracedFieldList() ([]fieldNode, bool) {
	if !p.expect(tokBraceOpen, "'{'") {
		return nil, false
	}
	var fields []fieldNode
	for p.cur().tok != tokBraceClose {
		f, ok := p.parseField()
		if !ok {
			return nil, false
		}
		fields = append(fields, f)
		if p.cur().tok == tokComma {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(tokBraceClose, "'}'") {
		return nil, false
	}
	return fields, true
}

func (p *parser) parseField() (fieldNode, bool) {
	embedded := false
	name := ""
	switch p.cur().tok {
	case tokEllipsis:
		embedded = true
		p.advance()
	case tokIdentifier:
		name = p.cur().text
		p.advance()
	default:
		p.errorHere("expected a field name or '...'")
		return fieldNode{}, false
	}
	if !p.expect(tokColon, "':'") {
		return fieldNode{}, false
	}
	typ, ok := p.parseTypeExpr()
	if !ok {
		return fieldNode{}, false
	}
	return fieldNode{name: name, embedded: embedded, typ: typ}, true
}

func (p *parser) cur() lexeme {
	if p.pos < len(p.lexemes) {
		return p.lexemes[p.pos]
	}
	return lexeme{tok: tokEOF}
}

func (p *parser) advance() {
	if p.pos < len(p.lexemes) {
		p.pos++
	}
}

func (p *parser) expect(tok token, label string) bool {
	if p.cur().tok != tok {
		p.errorHere("expected " + label)
		return false
	}
	p.advance()
	return true
}

func (p *parser) errorHere(msg string) {
	lx := p.cur()
	span := location.PointWithByte(p.sourceID, lx.line, lx.column, lx.offset)
	p.diags.Collect(diag.NewIssue(diag.Error, diag.E_SCHEMA_SYNTAX, msg+"; got "+lx.tok.String()).
		WithSpan(span).
		Build())
}

func (p *parser) spanFrom(start lexeme) location.Span {
	end := p.cur()
	return location.RangeWithBytes(p.sourceID,
		start.line, start.column, start.offset,
		end.line, end.column, end.offset)
}
