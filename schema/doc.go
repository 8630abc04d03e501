// Package schema holds a loaded set of declared types and resolves names
// against them, satisfying validate.Resolver (spec.md §4.3, §4.5 "schema
// written in the same language ... reduced to the declarative subset the
// validator needs").
//
// Schema itself is a thin wrapper over a *types.Registry; the declarative
// parser that builds one lives in the load subpackage.
package schema
