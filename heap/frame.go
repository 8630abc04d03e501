package heap

import (
	"fmt"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/value"
)

// Frame is a stack-discipline marker returned by FrameStart. Frames must
// close in LIFO order via the returned Frame's matching FrameEnd call
// (§3 "Frames").
type Frame struct {
	entryIndex  int // index of this frame's marker in h.entries
	numStackPos int
}

// FrameStart opens a frame, recording the current numeric-stack position
// (§4.2). The returned Frame must be passed to FrameEnd to close it.
func (h *Heap) FrameStart() Frame {
	pos := h.numStackPos()
	h.entries = append(h.entries, &frameMarker{numStackPos: pos})
	return Frame{entryIndex: len(h.entries) - 1, numStackPos: pos}
}

// FrameEnd reclaims every heap entry added since f was opened that is not
// pinned by a positive ref count, and truncates the numeric stack back to
// the position recorded at FrameStart (§4.2).
//
// If frames were not closed in LIFO order, or if the safety loop bound
// (entry count at entry + 100, per §9's "loop_count > original_length +
// 100" guard) is exceeded, FrameEnd reports a Fatal diag.E_FRAME_DISCIPLINE
// issue in the returned Result and a nil error — both indicate an
// implementation bug and are reported rather than silently tolerated. The
// error is non-nil only when f was already closed or never opened.
func (h *Heap) FrameEnd(f Frame) (diag.Result, error) {
	collector := diag.NewCollector(diag.NoLimit)

	if f.entryIndex >= len(h.entries) {
		return collector.Result(), fmt.Errorf("heap: FrameEnd called with a frame already closed or never opened (entryIndex=%d, len=%d)", f.entryIndex, len(h.entries))
	}
	if marker, ok := h.entries[f.entryIndex].(*frameMarker); !ok || marker.numStackPos != f.numStackPos {
		issue := diag.NewIssue(diag.Fatal, diag.E_FRAME_DISCIPLINE,
			"frame_end called out of LIFO order: entry at frame index is not this frame's marker").
			Build()
		collector.Collect(issue)
		return collector.Result(), nil
	}

	originalLength := len(h.entries)
	loopCount := 0
	for i := len(h.entries) - 1; i >= f.entryIndex; i-- {
		loopCount++
		if loopCount > originalLength+100 {
			issue := diag.NewIssue(diag.Fatal, diag.E_FRAME_DISCIPLINE,
				"frame_end safety loop bound exceeded; aborting to avoid an infinite loop").
				WithDetail(diag.DetailKeyContext, "heap").
				Build()
			collector.Collect(issue)
			break
		}

		e := h.entries[i]
		if e == nil {
			continue
		}

		if marker, ok := e.(*frameMarker); ok {
			if i == f.entryIndex {
				h.resetNumStack(marker.numStackPos)
				h.entries = h.entries[:i]
				return collector.Result(), nil
			}
			// A more-nested frame's marker, still open: closing this frame
			// first would violate LIFO nesting (§3 "Frames ... must always
			// close in LIFO order").
			issue := diag.NewIssue(diag.Fatal, diag.E_FRAME_DISCIPLINE,
				"frame_end reached a more deeply nested, still-open frame marker; frames must close in LIFO order").
				Build()
			collector.Collect(issue)
			return collector.Result(), nil
		}

		switch v := e.(type) {
		case *stringRef:
			// Pooled names/symbols are retained (ref_cnt > 0) and survive;
			// unreferenced content strings are left for the GC.
			_ = v
		case *decimalRef:
			_ = v
		case Freeable:
			hdr := v.Header()
			if hdr.RefCount() > 0 {
				// Still referenced elsewhere; clear this entry but keep the
				// container alive, to be reclaimed later via ref counting.
				h.entries[i] = nil
				continue
			}
			h.FreeContainer(v)
		}
	}

	// Reached the end of entries without finding our own marker: frames
	// were not nested LIFO.
	issue := diag.NewIssue(diag.Fatal, diag.E_FRAME_DISCIPLINE,
		"frame_end did not find its own marker; frames were not closed in LIFO order").
		Build()
	collector.Collect(issue)
	return collector.Result(), nil
}

// FreeContainer releases cont's children if cont is heap-owned and has a
// zero ref count; arena-owned containers are left untouched (they are
// reclaimed wholesale with their frame), per §4.2 "only heap-owned
// containers are touched; arena-owned ones are no-ops".
func (h *Heap) FreeContainer(cont Freeable) {
	if cont == nil {
		return
	}
	hdr := cont.Header()
	if !hdr.IsHeap() {
		return
	}
	if hdr.RefCount() != 0 {
		return
	}
	cont.ReleaseChildren(h)
}

// FreeItem decrements refs for a ref-counted scalar or container Item and
// reclaims it when the count reaches zero. Non-ref-counted kinds (NULL,
// BOOL, INT, INT64, FLOAT, DTIME boxed scalars) are no-ops (§4.2
// "free_item(item) / free_container(cont) — decrement refs and reclaim
// when zero").
func (h *Heap) FreeItem(item value.Item) {
	switch item.Kind() {
	case value.KindString, value.KindSymbol, value.KindBinary:
		ref, ok := item.Ref().(*stringRef)
		if !ok {
			return
		}
		ref.Release()
	case value.KindDecimal:
		ref, ok := item.Ref().(*decimalRef)
		if !ok {
			return
		}
		ref.Release()
	case value.KindRange, value.KindArray, value.KindArrayInt, value.KindArrayInt64,
		value.KindArrayFloat, value.KindList, value.KindMap, value.KindElement:
		cont, ok := item.Ref().(Freeable)
		if !ok {
			return
		}
		if cont.Header().Release() {
			h.FreeContainer(cont)
		}
	}
}
