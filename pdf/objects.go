package pdf

// Fixed object roles. Page and content-stream objects are numbered in
// pairs after the font, page first, so every page's /Contents reference
// points at the ID immediately following it.
const (
	catalogID = 1
	pagesID   = 2
	fontID    = 3
)

// allocator hands out sequential object IDs.
type allocator struct {
	next int
}

func newAllocator(start int) *allocator {
	return &allocator{next: start}
}

func (a *allocator) alloc() int {
	id := a.next
	a.next++
	return id
}

// max returns the highest ID handed out so far.
func (a *allocator) max() int {
	return a.next - 1
}
