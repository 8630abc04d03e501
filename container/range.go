package container

import "github.com/lambda-lang/core/value"

// Range is a virtual inclusive integer sequence {start, end} (spec §3
// "Range. {start, end} inclusive; indexable like a virtual integer
// sequence"). Ranges are arena-resident value types: they carry no
// heap.Header because they own no ref-countable children, so they are
// never registered with a Heap's frame-reclamation bookkeeping.
type Range struct {
	Start, End int64
}

// NewRange returns the inclusive range [start, end].
func NewRange(start, end int64) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of integers in the range, or 0 if End < Start.
func (r Range) Len() int64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// At returns start + i when i is in bounds, else value.Null (spec §4.4.1
// "item_at(range, i) returns start + i when in [start,end], else NULL").
func (r Range) At(i int64) value.Item {
	v := r.Start + i
	if v < r.Start || v > r.End {
		return value.Null
	}
	return value.FromInt(v)
}
