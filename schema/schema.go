package schema

import "github.com/lambda-lang/core/types"

// Schema is a completed set of named type declarations, ready to validate
// instances against. It satisfies validate.Resolver directly so a loaded
// Schema can be passed straight to validate.Validator.Validate.
type Schema struct {
	registry *types.Registry
	names    []string
}

// New wraps an already-populated registry into a Schema. Used by package
// load once every declaration has been resolved.
func New(registry *types.Registry, names []string) *Schema {
	return &Schema{registry: registry, names: names}
}

// ResolveType looks up a declared type by name, satisfying
// validate.Resolver.
func (s *Schema) ResolveType(name string) (types.Descriptor, bool) {
	return s.registry.Lookup(name)
}

// Registry returns the underlying type registry, for callers that need
// direct access (e.g. to intern runtime map shapes against the same
// registry a schema was loaded into).
func (s *Schema) Registry() *types.Registry {
	return s.registry
}

// TypeNames returns the declared type names in declaration order.
func (s *Schema) TypeNames() []string {
	return s.names
}
