package value

import (
	"strings"
	"testing"
)

func TestItem_GoString(t *testing.T) {
	it := FromInt(42)
	dump := it.GoString()
	if !strings.Contains(dump, "kind") {
		t.Errorf("GoString() = %q; want it to mention the kind field", dump)
	}
}
