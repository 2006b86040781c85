package pageslots

import "github.com/samber/lo"

// ComputePageCount returns ceil(collectionSize / pageSize).
//
// A non-positive pageSize has no finite page count, and a non-positive
// collectionSize has no pages; both yield 0 instead of failing.
func ComputePageCount(collectionSize, pageSize int) int {
	if pageSize <= 0 || collectionSize <= 0 {
		return 0
	}

	count := collectionSize / pageSize
	if collectionSize%pageSize != 0 {
		count++
	}

	return count
}

// ClampPage forces requested into [1, pageCount]. The lower bound wins, so
// with pageCount = 0 the result is 1.
func ClampPage(requested, pageCount int) int {
	return max(min(requested, pageCount), 1)
}

// pageNumbers returns a fresh list 1..pageCount.
func pageNumbers(pageCount int) []Slot {
	if pageCount <= 0 {
		return []Slot{}
	}

	return lo.RangeFrom(Slot(1), pageCount)
}
