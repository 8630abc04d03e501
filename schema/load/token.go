package load

// token is the set of lexical tokens of the declarative schema language
// (spec.md §4.3's "schema written in the same language", reduced to its
// declarative subset). Grounded on the pack's hand-rolled lexer idiom
// (firefly's tools/ruse/token package: a Token int with a parallel string
// table), adapted to a single-pass scan rather than a channel of lexemes —
// schema sources are small declaration lists, not streamed program text.
type token int

const (
	tokEOF token = iota
	tokError

	tokIdentifier // point, elmt (keyword identifiers are classified by the parser, not the lexer)
	tokInteger    // 3

	tokEquals    // =
	tokColon     // :
	tokComma     // ,
	tokPipe      // |
	tokQuestion  // ?
	tokPlus      // +
	tokStar      // *
	tokHash      // #
	tokSemicolon // ;
	tokEllipsis  // ...
	tokBraceOpen // {
	tokBraceClose
	tokBracketOpen // [
	tokBracketClose
)

var tokenNames = [...]string{
	tokEOF:          "end of input",
	tokError:        "error",
	tokIdentifier:   "identifier",
	tokInteger:      "integer",
	tokEquals:       "'='",
	tokColon:        "':'",
	tokComma:        "','",
	tokPipe:         "'|'",
	tokQuestion:     "'?'",
	tokPlus:         "'+'",
	tokStar:         "'*'",
	tokHash:         "'#'",
	tokSemicolon:    "';'",
	tokEllipsis:     "'...'",
	tokBraceOpen:    "'{'",
	tokBraceClose:   "'}'",
	tokBracketOpen:  "'['",
	tokBracketClose: "']'",
}

func (t token) String() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return "unknown token"
}

// lexeme is one scanned token: its kind, its literal text, and the byte
// offset it started at (for diag.Issue spans).
type lexeme struct {
	tok    token
	text   string
	offset int
	line   int
	column int
}
