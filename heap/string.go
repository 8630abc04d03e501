package heap

import (
	"github.com/lambda-lang/core/value"
)

// stringRef is the ref-counted payload behind STRING, SYMBOL, and BINARY
// Items (§3 "String / Symbol / Binary"). Content strings are arena
// allocated (StrCopy); structural names and symbols are pooled (CreateName,
// CreateSymbol) so identical content shares one stringRef and satisfies
// identity equality.
type stringRef struct {
	Header
	bytes []byte
	ns    string // namespace, symbols only
}

// Bytes returns the string's content.
func (s *stringRef) Bytes() []byte { return s.bytes }

// Namespace returns a symbol's namespace, or "" for plain strings/binaries.
func (s *stringRef) Namespace() string { return s.ns }

// StrCopy arena-allocates a content string by copying src (heap_strcpy).
// Use this for user content and text data; it is never pooled, so equal
// content does not imply pointer identity.
func (h *Heap) StrCopy(src []byte) value.Item {
	buf := make([]byte, len(src))
	copy(buf, src)
	ref := &stringRef{Header: NewArenaHeader(), bytes: buf}
	return value.FromStringRef(ref)
}

// BinCopy arena-allocates a binary blob by copying src, the BINARY
// counterpart to StrCopy. Parser drivers decoding a base64/hex payload
// into a BINARY field use this rather than StrCopy, which always tags its
// result STRING.
func (h *Heap) BinCopy(src []byte) value.Item {
	buf := make([]byte, len(src))
	copy(buf, src)
	ref := &stringRef{Header: NewArenaHeader(), bytes: buf}
	return value.FromBinaryRef(ref)
}

// pool interns structural name and symbol strings so identical content
// shares one stringRef, enabling identity comparison (heap_create_name /
// heap_create_symbol's "same name string will always return the same
// pointer").
type pool struct {
	names   map[string]*stringRef
	symbols map[string]*stringRef
}

func newPool() pool {
	return pool{names: make(map[string]*stringRef), symbols: make(map[string]*stringRef)}
}

// CreateName interns a structural name string (map key, element tag,
// attribute name). Identical names share storage and pointer identity.
func (h *Heap) CreateName(name string) value.Item {
	if ref, ok := h.pool.names[name]; ok {
		return value.FromSymbolRef(ref)
	}
	ref := &stringRef{Header: NewHeapHeader(), bytes: []byte(name)}
	ref.Retain()
	h.pool.names[name] = ref
	h.Register(ref)
	return value.FromSymbolRef(ref)
}

// CreateSymbol allocates a Symbol with the given namespace. Symbols are
// pooled per (ns, name) pair, mirroring heap_create_symbol's interning of
// structural identifiers.
func (h *Heap) CreateSymbol(ns, name string) value.Item {
	key := ns + "\x00" + name
	if ref, ok := h.pool.symbols[key]; ok {
		return value.FromSymbolRef(ref)
	}
	ref := &stringRef{Header: NewHeapHeader(), bytes: []byte(name), ns: ns}
	ref.Retain()
	h.pool.symbols[key] = ref
	h.Register(ref)
	return value.FromSymbolRef(ref)
}

// GetString returns the stringRef behind a STRING, SYMBOL, or BINARY Item.
func GetString(it value.Item) (bytes []byte, ns string) {
	ref := it.Ref().(*stringRef)
	return ref.bytes, ref.ns
}
