package heap

import "testing"

func TestNewInput_AssignsDistinctSessionIDs(t *testing.T) {
	a := NewInput("file:///a.json", nil)
	b := NewInput("file:///b.json", nil)
	if a.ID == b.ID {
		t.Error("two NewInput sessions should not share a session id")
	}
	if a.Heap == nil {
		t.Fatal("NewInput did not allocate a Heap")
	}
	if !a.Root.IsNull() {
		t.Error("a fresh Input's Root should be Null until SetRoot is called")
	}
}

func TestInput_SetRoot(t *testing.T) {
	in := NewInput("file:///a.json", nil)
	root := in.Heap.CreateName("root")
	in.SetRoot(root)
	if in.Root.Ref() != root.Ref() {
		t.Error("SetRoot did not finalise the Input's Root")
	}
}
