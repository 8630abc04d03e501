package container

import (
	"testing"

	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/types"
	"github.com/lambda-lang/core/value"
)

func TestElement_TagAndAttributes(t *testing.T) {
	h := heap.New(nil)
	typ := types.NewTypeElmt("div")
	typ.Extend("class", types.NewPrimitive(value.KindString))

	e := NewElement(h.NewArenaContainer(), typ)
	e.Put("class", types.NewPrimitive(value.KindString), h.StrCopy([]byte("box")))

	if e.Tag() != "div" {
		t.Errorf("Tag() = %q, want %q", e.Tag(), "div")
	}
	got, ok := e.Get("class")
	if !ok {
		t.Fatal("Get(class) not found")
	}
	b, _ := heap.GetString(got)
	if string(b) != "box" {
		t.Errorf("class = %q, want %q", b, "box")
	}
}

func TestElement_PushChildAndChildren(t *testing.T) {
	h := heap.New(nil)
	typ := types.NewTypeElmt("p")
	e := NewElement(h.NewArenaContainer(), typ)

	e.PushChild(value.FromInt(1))
	e.PushChild(value.FromInt(2))

	children := e.Children()
	if len(children) != 2 || children[0].AsInt() != 1 || children[1].AsInt() != 2 {
		t.Errorf("Children() = %v, want [1 2]", children)
	}
}

func TestElement_End(t *testing.T) {
	h := heap.New(nil)
	e := NewElement(h.NewArenaContainer(), types.NewTypeElmt("x"))
	if end := e.End(); end.Kind() != value.KindElement {
		t.Errorf("End() kind = %v, want element", end.Kind())
	}
}

func TestElement_ElementType(t *testing.T) {
	h := heap.New(nil)
	typ := types.NewTypeElmt("span")
	e := NewElement(h.NewArenaContainer(), typ)
	if e.ElementType() != typ {
		t.Error("ElementType() did not return the bound TypeElmt")
	}
}
