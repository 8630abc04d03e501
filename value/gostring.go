package value

import "github.com/davecgh/go-spew/spew"

// GoString renders it as a deep, cycle-safe debug dump using go-spew,
// letting container trees (which hold opaque Ref handles back into
// package heap/container) print their full shape in %#v output without
// either package importing the other.
func (it Item) GoString() string {
	return spew.Sdump(it)
}
