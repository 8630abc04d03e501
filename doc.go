// Package core provides the Lambda value runtime: a tagged-value model,
// arena/heap memory management, a type/shape descriptor system, and a
// structural validator for documents produced by parser drivers.
//
// Lambda's value model treats every runtime value as an Item: a small tagged
// union that recovers its kind in O(1) without a heap dereference for scalar
// kinds, and points into a frame-scoped heap for container kinds (arrays,
// lists, maps, elements). Validation walks an Item tree against a declared
// Type tree, producing a linked list of structured diagnostics rather than
// failing on the first mismatch.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//
//	Value runtime tier:
//	  - value: Tagged Item/Kind and the numeric coercion ladder
//	  - heap: Arena/heap allocator, frames, ref-counting
//	  - types: Type/TypeMap/TypeArray/TypeUnary descriptors and shapes
//	  - container: Array/List/Map/Element containers, arithmetic, casts
//
//	Validation tier:
//	  - validate: Structural validator and vpath path segments
//	  - schema/load: Declarative schema-definition loading
//
//	Driver tier:
//	  - driver/jsondriver: Illustrative JSON parser driver
//
// # Entry Points
//
// Schema loading:
//
//	import "github.com/lambda-lang/core/schema/load"
//
//	sch, diags, err := load.LoadString(schemaText, "file:schema.ls")
//	if err != nil {
//	    // Invalid source name
//	}
//	if diags.HasErrors() {
//	    // Schema syntax or resolution errors
//	}
//
// Structural validation:
//
//	import "github.com/lambda-lang/core/validate"
//
//	v := validate.New(h, validate.WithMaxDepth(64)) // h is a *heap.Heap
//	result := v.Validate(item, sch, "Root")
//	if !result.Valid() {
//	    // Structural diagnostics in result.Errors()
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/lambda-lang/core/diag]: Structured diagnostics
//   - [github.com/lambda-lang/core/location]: Source location tracking
//   - [github.com/lambda-lang/core/value]: Tagged Item/Kind
//   - [github.com/lambda-lang/core/heap]: Arena/heap allocator
//   - [github.com/lambda-lang/core/types]: Type descriptors and shapes
//   - [github.com/lambda-lang/core/container]: Containers, arithmetic, casts
//   - [github.com/lambda-lang/core/validate]: Structural validator
//   - [github.com/lambda-lang/core/schema/load]: Schema-definition loading
//   - [github.com/lambda-lang/core/driver/jsondriver]: JSON parser driver
package core
