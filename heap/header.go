package heap

// Header is embedded in every heap-allocated container (array, list, map,
// element) to carry the ownership discipline described in spec.md §3
// "Ownership / lifecycle" and §9 "Mixed ownership (heap vs arena)": a
// container is either heap-managed (ref-counted, reclaimed via Heap) or
// arena-managed (reclaimed implicitly with its frame, untouched here).
//
// Header replaces the source's is_heap bit packed into the container's C
// struct layout with an explicit ownership discriminator, per §9's guidance
// to make the heap/arena distinction impossible to confuse by construction
// rather than by runtime pointer probing.
type Header struct {
	isHeap bool
	refCnt int
}

// NewHeapHeader returns a Header for a heap-owned container with ref_cnt 0.
func NewHeapHeader() Header { return Header{isHeap: true} }

// NewArenaHeader returns a Header for an arena-owned container. Arena-owned
// containers are never individually ref-counted or freed; they are
// reclaimed wholesale when their owning frame ends.
func NewArenaHeader() Header { return Header{isHeap: false} }

// IsHeap reports whether the container is heap-managed (as opposed to
// arena-owned).
func (h *Header) IsHeap() bool { return h.isHeap }

// RefCount returns the current reference count.
func (h *Header) RefCount() int { return h.refCnt }

// Retain increments the reference count. Called whenever the container
// becomes reachable from another heap-managed container: stored as a map
// field, pushed into a list, etc. (§3).
func (h *Header) Retain() { h.refCnt++ }

// Release decrements the reference count and reports whether it reached
// zero, i.e. whether the container is now reclaimable.
func (h *Header) Release() bool {
	if h.refCnt > 0 {
		h.refCnt--
	}
	return h.refCnt == 0
}

// Freeable is implemented by every heap-allocated container so the Heap can
// recursively release the references it holds when the container itself
// becomes reclaimable. This mirrors the source's free_container dispatch
// over Array/List/Map/Element, generalised to an interface rather than a
// type_id switch (§4.2 "free_item(item) / free_container(cont)").
type Freeable interface {
	// Header returns the container's ownership header.
	Header() *Header
	// ReleaseChildren releases every reference the container holds on other
	// heap-managed values (field values, element content, array items),
	// recursively reclaiming any that reach a zero ref count. Called only
	// once a container's own ref count has reached zero.
	ReleaseChildren(h *Heap)
}
