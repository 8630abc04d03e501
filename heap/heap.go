// Package heap implements the arena/heap allocator, frame-based scope
// reclamation, and numeric stack described in spec.md §4.2. It tracks the
// ownership discipline (ref-counted heap containers vs. arena-owned
// temporaries) and ref-counted scalars (strings, symbols, binaries,
// decimals) that package value's Item refers to via an opaque Ref.
//
// Go's garbage collector reclaims memory; Heap's job is to enforce and
// verify the *discipline* spec.md describes — frame LIFO nesting, ref
// counting, and deterministic release of children when a container's count
// reaches zero — not to manage raw memory itself.
package heap

import (
	"log/slog"
)

// entry is one slot in the heap's registration list (heap.entries in the
// source). It is one of: *stringRef, *decimalRef, a Freeable container, a
// *frameMarker, or nil for a cleared slot.
type entry interface{}

// frameMarker records the numeric-stack position at frame open, matching
// the source's LMD_CONTAINER_HEAP_START sentinel entry.
type frameMarker struct {
	numStackPos int
}

// Heap owns the registration list and numeric stack for a single
// EvalContext. A Heap is not safe for concurrent use; per spec.md §5 the
// core is single-threaded and cooperative.
type Heap struct {
	log     *slog.Logger
	entries []entry
	numStack
	pool       pool
	allocCount int
}

// New creates an empty Heap. A nil logger defaults to slog.Default().
func New(log *slog.Logger) *Heap {
	if log == nil {
		log = slog.Default()
	}
	return &Heap{
		log:     log,
		entries: make([]entry, 0, 1024),
		pool:    newPool(),
	}
}

// Register appends e to the entries list, mirroring arraylist_append on
// heap->entries in heap_alloc/heap_calloc.
func (h *Heap) Register(e entry) {
	h.entries = append(h.entries, e)
	h.allocCount++
}

// AllocCount returns the number of entries ever registered, for tests and
// diagnostics; it does not decrease as entries are freed.
func (h *Heap) AllocCount() int { return h.allocCount }

// Len reports the current number of live (non-nil) entry slots.
func (h *Heap) Len() int {
	n := 0
	for _, e := range h.entries {
		if e != nil {
			n++
		}
	}
	return n
}

// NewHeapContainer returns a heap-owned Header without registering
// anything, corresponding to heap_calloc for a container type_id (§4.2
// "additionally sets is_heap=1 on container headers"). Callers embed the
// returned Header in their own container struct and pass the container
// itself to Register once constructed, since Go interfaces require a
// concrete receiver.
func (h *Heap) NewHeapContainer() Header {
	return NewHeapHeader()
}

// NewArenaContainer returns an arena-owned Header. Arena containers are not
// registered in entries; they are reclaimed wholesale with their arena
// (never individually), per §9 "Mixed ownership".
func (h *Heap) NewArenaContainer() Header {
	return NewArenaHeader()
}
