package heap

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lambda-lang/core/value"
)

// Input is a parser driver's handle on one parse session: a pool and type
// list plus the single root Item the driver finalises into (spec §6
// "new_input(abs_url) -> Input — allocates a pool and a type_list, returns
// a handle to populate"; "Finalisation: input.root is the single Item
// returned").
type Input struct {
	ID     uuid.UUID
	Source string
	Heap   *Heap
	Root   value.Item
}

// NewInput opens a fresh Heap and Input for parsing the resource named by
// source (an absolute URL or file path, per the driver surface). ID is a
// fresh random uuid that tells one parse session apart from another; the
// Heap itself neither stores nor logs it.
func NewInput(source string, log *slog.Logger) *Input {
	h := New(log)
	return &Input{
		ID:     uuid.New(),
		Source: source,
		Heap:   h,
		Root:   value.Null,
	}
}

// SetRoot finalises the input with its parsed root Item.
func (in *Input) SetRoot(root value.Item) { in.Root = root }
