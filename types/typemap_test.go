package types

import (
	"testing"

	"github.com/lambda-lang/core/value"
)

func TestTypeMap_Extend(t *testing.T) {
	tm := NewTypeMap("")
	tm.Extend("id", NewPrimitive(value.KindInt))
	tm.Extend("name", NewPrimitive(value.KindString))

	if tm.Length() != 2 {
		t.Fatalf("Length() = %d; want 2", tm.Length())
	}
	if tm.ByteSize() != 16 {
		t.Fatalf("ByteSize() = %d; want 16", tm.ByteSize())
	}
	entry, ok := tm.Field("name")
	if !ok {
		t.Fatal("Field(\"name\") not found")
	}
	if entry.ByteOffset() != 8 {
		t.Errorf("name field offset = %d; want 8", entry.ByteOffset())
	}
}

func TestTypeMap_Field_NotFound(t *testing.T) {
	tm := NewTypeMap("")
	if _, ok := tm.Field("missing"); ok {
		t.Error("Field(\"missing\") should not be found on an empty map")
	}
}

func TestTypeElmt_TagAndContentLength(t *testing.T) {
	e := NewTypeElmt("invoice")
	if e.Tag() != "invoice" {
		t.Errorf("Tag() = %q; want \"invoice\"", e.Tag())
	}
	if e.ContentLength() != 0 {
		t.Errorf("ContentLength() = %d; want 0 (unconstrained)", e.ContentLength())
	}
	e.SetContentLength(3)
	if e.ContentLength() != 3 {
		t.Errorf("ContentLength() = %d; want 3", e.ContentLength())
	}
	if e.Base() != BaseElement {
		t.Errorf("Base() = %v; want BaseElement", e.Base())
	}
}

func TestTypeElmt_InheritsMapShape(t *testing.T) {
	e := NewTypeElmt("invoice")
	e.Extend("total", NewPrimitive(value.KindDecimal))
	if e.Length() != 1 {
		t.Fatalf("Length() = %d; want 1", e.Length())
	}
	if _, ok := e.Field("total"); !ok {
		t.Error("TypeElmt.Field should resolve through the embedded TypeMap shape")
	}
}
