package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between format adapters (driver/jsondriver
// today; a future CSV or YAML driver tomorrow) and whatever tracks source
// content for the file being decoded. driver/jsondriver never canonicalizes
// or stores source text itself; a caller passes an implementation via
// jsondriver.WithRegistry only when it also sets WithTrackLocations, so a
// decode that doesn't need spans pays nothing for this machinery.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID — natural cohesion with the location package.
//
//  2. Decouples adapters from any one registry implementation: a driver
//     depends only on this interface, not on a concrete source-tracking type,
//     so tests can supply a minimal fake.
//
//  3. Enables adapter independence: Adapters can be used in contexts where no
//     registry is available at all (WithTrackLocations left unset).
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// schema/load's hand-written lexer works in byte offsets directly (see
// load.go's package doc for why there is no generated, rune-indexed parser
// to bridge here), so nothing in this module implements this interface yet.
// It is kept for a future source format whose native coordinates are
// rune-based rather than byte-based.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
