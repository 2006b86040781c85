package pageslots

import "github.com/samber/lo"

// Window is a zero-based half-open range [Start, End) into the list of page
// numbers 1..pageCount. Bounds may overrun the list; Slice clamps them.
type Window struct {
	Start int
	End   int
}

// SelectWindow picks the pages to keep visible. ok is false when maxSize does
// not constrain the control (maxSize = 0 or maxSize >= pageCount), in which
// case every page is shown and no ellipses are added.
func SelectWindow(pageCount, page, maxSize int, rotate bool) (w Window, ok bool) {
	if maxSize <= 0 || pageCount <= maxSize {
		return Window{Start: 0, End: pageCount}, false
	}

	if rotate {
		return rotationWindow(pageCount, page, maxSize), true
	}

	return blockWindow(page, maxSize), true
}

// rotationWindow keeps the current page in the middle of the window:
//
//	page = 6, maxSize = 3 -> [5, *6*, 7]
//	page = 6, maxSize = 4 -> [4, 5, *6*, 7]
func rotationWindow(pageCount, page, maxSize int) Window {
	leftOffset := maxSize / 2
	rightOffset := lo.Ternary(maxSize%2 == 0, leftOffset-1, leftOffset)

	switch {
	case page <= leftOffset:
		// Very beginning, no rotation.
		return Window{Start: 0, End: maxSize}
	case pageCount-page < leftOffset:
		// Very end, no rotation.
		return Window{Start: pageCount - maxSize, End: pageCount}
	default:
		return Window{Start: page - leftOffset - 1, End: page + rightOffset}
	}
}

// blockWindow advances in fixed, non-overlapping chunks of maxSize pages.
func blockWindow(page, maxSize int) Window {
	block := ceilDiv(page, maxSize) - 1
	start := block * maxSize

	return Window{Start: start, End: start + maxSize}
}

// Slice returns a fresh copy of list[Start:End] with the bounds clamped to
// the list.
func (w Window) Slice(list []Slot) []Slot {
	return append([]Slot{}, lo.Slice(list, w.Start, w.End)...)
}

// ceilDiv is ceil(a/b) for b > 0, rounding toward +Inf for negative a too.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}

	return q
}
