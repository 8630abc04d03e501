// Package jsondriver is a parser driver that decodes JSON documents
// directly into the value runtime (value.Item trees backed by
// container.Map/Array/Element) against a declared types.Descriptor,
// rather than into an intermediate instance form (SPEC_FULL.md §2's
// "a minimal JSON parser driver ... demonstrating how an external format
// parser is expected to populate the runtime").
//
// Decoding is schema-directed: the target Descriptor tells the driver
// what container shape to build (map vs element vs array) and what
// scalar Kind to box each leaf as. A decoded tree is not yet validated —
// structural correctness (missing fields, wrong kinds, occurrence
// counts) is package validate's job; jsondriver reports JSON-syntax-level
// failures (malformed input, an object where an array was expected, and so
// on) through E_ADAPTER_PARSE, plus an object key the target shape does
// not declare through E_UNEXPECTED_FIELD, keeping "decode
// leniently, validate separately" as a clean division of labor between
// this package and validate.
//
// # Parsing mode
//
// By default input is preprocessed with tidwall/jsonc, which strips
// comments and trailing commas while preserving byte length (so offsets
// recorded during decode still index the original source).
// WithStrictJSON(true) disables this and parses with encoding/json
// directly.
//
// # Element content convention
//
// JSON has no native notion of an element's ordered content children
// distinct from its attributes. Decoding into a types.TypeElmt treats
// scalar/named JSON object keys as attributes (validated against the
// element's embedded TypeMap shape) and a reserved "#content" key, if
// present, as the element's content list: a JSON array whose members are
// decoded dynamically (KindAny) and appended via Element.PushChild.
package jsondriver
