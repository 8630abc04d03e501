package types

import (
	"encoding/binary"
	"sync"

	"github.com/spaolacci/murmur3"

	"github.com/lambda-lang/core/value"
)

// Registry deduplicates type descriptors so structurally identical maps
// and elements share one TypeMap/TypeElmt (§3 "a map's TypeMap may be
// shared across equally-shaped instances"; §4.3 "the first write of a
// given map/element allocates its TypeMap/TypeElmt and registers it in
// the context's type_list"). Shapes are keyed by a murmur3 hash of their
// field names and types so lookups stay O(1) regardless of shape length.
type Registry struct {
	mu      sync.RWMutex
	named   map[string]Descriptor
	byShape map[uint64][]*TypeMap
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		named:   make(map[string]Descriptor),
		byShape: make(map[uint64][]*TypeMap),
	}
}

// RegisterNamed records a named type declaration. It panics if name is
// already registered, mirroring the schema-completion invariant that named
// types are declared once per source (§4.3 "registers it in the context's
// type_list").
func (r *Registry) RegisterNamed(name string, desc Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.named[name]; exists {
		panic("types: RegisterNamed: type " + name + " already registered")
	}
	r.named[name] = desc
}

// Lookup returns a previously-registered named type.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.named[name]
	return d, ok
}

// primitiveKind returns the runtime Kind a descriptor expects when it is a
// primitive, and value.KindAny otherwise — composite descriptors (TypeMap,
// TypeArray, ...) carry no single Kind of their own.
func primitiveKind(d Descriptor) value.Kind {
	if prim, ok := d.(*Type); ok {
		return prim.Kind()
	}
	return value.KindAny
}

// shapeHash hashes a shape's field names, kinds, and bases with murmur3,
// giving two structurally identical shapes the same key regardless of
// allocation order.
func shapeHash(head *ShapeEntry) uint64 {
	h := murmur3.New64()
	var buf [8]byte
	for e := head; e != nil; e = e.next {
		_, _ = h.Write([]byte(e.name))
		binary.LittleEndian.PutUint16(buf[:2], uint16(boolToInt(e.hasName)))
		_, _ = h.Write(buf[:2])
		if e.fieldType != nil {
			binary.LittleEndian.PutUint64(buf[:], uint64(primitiveKind(e.fieldType))<<8|uint64(e.fieldType.Base()))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// shapesEqual reports whether two shapes have identical field names,
// types, and order.
func shapesEqual(a, b *ShapeEntry) bool {
	for a != nil && b != nil {
		if a.name != b.name || a.hasName != b.hasName {
			return false
		}
		if (a.fieldType == nil) != (b.fieldType == nil) {
			return false
		}
		if a.fieldType != nil {
			if a.fieldType.Base() != b.fieldType.Base() {
				return false
			}
			if primitiveKind(a.fieldType) != primitiveKind(b.fieldType) {
				return false
			}
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// InternShape returns a shared *TypeMap for a completed shape, registering
// tm as the canonical descriptor for its shape the first time an
// equally-shaped map is seen and returning the existing one on every
// subsequent call (§3 "A map's TypeMap may be shared across equally-shaped
// instances").
func (r *Registry) InternShape(tm *TypeMap) *TypeMap {
	key := shapeHash(tm.shape)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, candidate := range r.byShape[key] {
		if shapesEqual(candidate.shape, tm.shape) {
			return candidate
		}
	}
	r.byShape[key] = append(r.byShape[key], tm)
	return tm
}
