// Package container implements the Lambda value runtime's container
// types — Array, the typed ArrayInt/ArrayInt64/ArrayFloat variants, List,
// Range, Map, Element, and Decimal — plus the arithmetic, aggregate, and
// cast operations over value.Item (spec.md §4.4 "Containers and
// operations"; grounded on original_source/lambda/lambda-eval-num.cpp and
// lambda-data-runtime.cpp).
//
// Map and Element store fields as a slice of value.Item indexed by shape
// position rather than a raw packed byte buffer: Go's garbage collector
// already tracks live references inside a slice, so the source's manual
// byte-offset packing (needed in C to keep a GC-free heap compact) buys
// nothing here and would only reintroduce unsafe pointer arithmetic. The
// shape's byte_offset bookkeeping is preserved (types.ShapeEntry.ByteOffset
// still advances by one word per field) so a field's shape position and
// its slot in Map.data agree; see DESIGN.md for this adaptation.
package container
