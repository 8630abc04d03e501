// Package load parses the declarative schema subset of spec.md §4.3 (e.g.
// "type Point = { x: int, y: int }") into a *schema.Schema ready to hand a
// validate.Validator. It is a hand-written recursive-descent
// lexer/parser, not a generated one: spec.md §1 places a full
// Lambda-language parser out of scope, so an ANTLR-generated grammar
// has nothing left to parse against (see DESIGN.md for why antlr4-go is
// not wired here).
package load

import (
	"fmt"
	"log/slog"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/schema"
	"github.com/lambda-lang/core/types"
)

// Load parses source (the declarative schema text) under sourceName — a
// synthetic source identifier used only for diagnostic spans — and
// returns a ready-to-use Schema plus every collected diagnostic.
//
// A non-nil error is returned only for loader misuse (an invalid
// sourceName); malformed schema text is reported through the returned
// diag.Result: "parse errors are diagnostics, not Go errors".
func Load(source []byte, sourceName string, opts ...Option) (*schema.Schema, diag.Result, error) {
	if err := location.ValidateSyntheticSourceID(sourceName); err != nil {
		return nil, diag.Result{}, fmt.Errorf("load: %w", err)
	}
	sourceID := location.NewSourceID(sourceName)
	cfg := applyOptions(opts)
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "schema/load")

	diags := diag.NewCollector(cfg.issueLimit)

	lex := newLexer(source, sourceID, diags)
	lexemes := lex.scanAll()

	p := newParser(lexemes, sourceID, diags)
	decls := p.parseSchema()

	reg := cfg.registry
	if reg == nil {
		reg = types.NewRegistry()
	}

	names := resolveSchema(decls, reg, diags)
	logger.Debug("schema loaded", "source", sourceName, "declarations", len(names), "issues", diags.Len())

	return schema.New(reg, names), diags.Result(), nil
}

// LoadString is Load for string-typed source text, the common case for
// embedded or test schemas.
func LoadString(source, sourceName string, opts ...Option) (*schema.Schema, diag.Result, error) {
	return Load([]byte(source), sourceName, opts...)
}
