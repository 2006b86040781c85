package pageslots

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// IsNormalizedPageSizeMax returns the page size forced into [1, maxPageSize]
// and whether it was already there. Non-positive sizes fall back to
// DefaultPageSize.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}
