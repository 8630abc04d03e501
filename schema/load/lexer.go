package load

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/location"
)

const eof = -1

// lexer scans a declarative schema source into a slice of lexemes,
// reporting malformed runes and unterminated tokens directly to a
// diag.Collector as the pack's ANTLR-driven errorListener does, rather
// than returning a separate error value per token (§4.3's declarative
// subset is small enough to tokenize eagerly, not lazily through a
// producer goroutine the way firefly's tools/ruse/lexer streams a
// potentially large program).
type lexer struct {
	src      []byte
	sourceID location.SourceID
	diags    *diag.Collector

	offset     int
	nextOffset int
	line       int
	column     int
	width      int
}

func newLexer(src []byte, sourceID location.SourceID, diags *diag.Collector) *lexer {
	return &lexer{src: src, sourceID: sourceID, diags: diags, line: 1, column: 1}
}

// scanAll tokenizes the whole source, always terminating with a tokEOF
// lexeme.
func (l *lexer) scanAll() []lexeme {
	var out []lexeme
	for {
		lx := l.scan()
		out = append(out, lx)
		if lx.tok == tokEOF {
			return out
		}
	}
}

func (l *lexer) scan() lexeme {
	l.skipWhitespaceAndComments()

	startOffset, startLine, startCol := l.nextOffset, l.line, l.column
	r := l.next()
	if r == eof {
		return l.lexeme(tokEOF, "", startOffset, startLine, startCol)
	}

	switch {
	case r == '=':
		return l.lexeme(tokEquals, "=", startOffset, startLine, startCol)
	case r == ':':
		return l.lexeme(tokColon, ":", startOffset, startLine, startCol)
	case r == ',':
		return l.lexeme(tokComma, ",", startOffset, startLine, startCol)
	case r == '|':
		return l.lexeme(tokPipe, "|", startOffset, startLine, startCol)
	case r == '?':
		return l.lexeme(tokQuestion, "?", startOffset, startLine, startCol)
	case r == '+':
		return l.lexeme(tokPlus, "+", startOffset, startLine, startCol)
	case r == '*':
		return l.lexeme(tokStar, "*", startOffset, startLine, startCol)
	case r == '#':
		return l.lexeme(tokHash, "#", startOffset, startLine, startCol)
	case r == ';':
		return l.lexeme(tokSemicolon, ";", startOffset, startLine, startCol)
	case r == '{':
		return l.lexeme(tokBraceOpen, "{", startOffset, startLine, startCol)
	case r == '}':
		return l.lexeme(tokBraceClose, "}", startOffset, startLine, startCol)
	case r == '[':
		return l.lexeme(tokBracketOpen, "[", startOffset, startLine, startCol)
	case r == ']':
		return l.lexeme(tokBracketClose, "]", startOffset, startLine, startCol)
	case r == '.':
		if l.peek() == '.' {
			l.next()
			if l.peek() == '.' {
				l.next()
				return l.lexeme(tokEllipsis, "...", startOffset, startLine, startCol)
			}
		}
		l.errorAt(startOffset, startLine, startCol, "unexpected character '.'; did you mean '...'?")
		return l.lexeme(tokError, ".", startOffset, startLine, startCol)
	case r == '"':
		return l.scanQuotedIdentifier(startOffset, startLine, startCol)
	case isDigit(r):
		return l.scanInteger(startOffset, startLine, startCol)
	case isIdentStart(r):
		return l.scanIdentifier(startOffset, startLine, startCol)
	default:
		l.errorAt(startOffset, startLine, startCol, "unexpected character "+strconv.QuoteRune(r))
		return l.lexeme(tokError, string(r), startOffset, startLine, startCol)
	}
}

func (l *lexer) scanInteger(startOffset, startLine, startCol int) lexeme {
	for isDigit(l.peek()) {
		l.next()
	}
	text := string(l.src[startOffset:l.nextOffset])
	return l.lexeme(tokInteger, text, startOffset, startLine, startCol)
}

func (l *lexer) scanIdentifier(startOffset, startLine, startCol int) lexeme {
	for isIdentPart(l.peek()) {
		l.next()
	}
	text := string(l.src[startOffset:l.nextOffset])
	return l.lexeme(tokIdentifier, text, startOffset, startLine, startCol)
}

// scanQuotedIdentifier tokenizes a "quoted tag" literal (used for element
// tags that are not bare identifiers, e.g. elmt "content-type" { ... })
// as an ordinary tokIdentifier carrying the unquoted text.
func (l *lexer) scanQuotedIdentifier(startOffset, startLine, startCol int) lexeme {
	var sb strings.Builder
	for {
		r := l.next()
		if r == eof {
			l.errorAt(startOffset, startLine, startCol, "unterminated quoted tag")
			return l.lexeme(tokError, sb.String(), startOffset, startLine, startCol)
		}
		if r == '"' {
			break
		}
		sb.WriteRune(r)
	}
	return l.lexeme(tokIdentifier, sb.String(), startOffset, startLine, startCol)
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		r := l.peek()
		if isSpace(r) {
			l.next()
			continue
		}
		if r == '/' && l.peekAt(1) == '/' {
			for l.peek() != '\n' && l.peek() != eof {
				l.next()
			}
			continue
		}
		return
	}
}

func (l *lexer) lexeme(tok token, text string, offset, line, col int) lexeme {
	return lexeme{tok: tok, text: text, offset: offset, line: line, column: col}
}

func (l *lexer) errorAt(offset, line, col int, msg string) {
	span := location.PointWithByte(l.sourceID, line, col, offset)
	l.diags.Collect(diag.NewIssue(diag.Error, diag.E_SCHEMA_SYNTAX, msg).
		WithSpan(span).
		Build())
}

// next consumes and returns the next rune, advancing line/column
// bookkeeping. Returns eof at end of input.
func (l *lexer) next() rune {
	if l.nextOffset >= len(l.src) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRune(l.src[l.nextOffset:])
	l.offset = l.nextOffset
	l.nextOffset += w
	l.width = w
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// peek returns the next rune without consuming it.
func (l *lexer) peek() rune {
	if l.nextOffset >= len(l.src) {
		return eof
	}
	r, _ := utf8.DecodeRune(l.src[l.nextOffset:])
	return r
}

// peekAt returns the rune n runes ahead of the cursor without consuming
// anything; n==0 behaves like peek.
func (l *lexer) peekAt(n int) rune {
	off := l.nextOffset
	var r rune
	for i := 0; i <= n; i++ {
		if off >= len(l.src) {
			return eof
		}
		var w int
		r, w = utf8.DecodeRune(l.src[off:])
		off += w
	}
	return r
}

func isSpace(r rune) bool      { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }
func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' }
