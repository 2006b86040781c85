package pageslots

import (
	"errors"
	"fmt"
)

var ErrInvalidMaxSize = errors.New("max size must not be negative")

// RawPager is intended for API payloads. Inline it into request filters:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - requested page, 1-based. Out of range values are clamped.
	Page int `json:"page"`
	// PageSize - number of records per page. Normalized with NormalizePageSize.
	PageSize int `json:"pageSize"`
	// MaxSize - maximum number of page slots to show. 0 shows all pages.
	MaxSize int `json:"maxSize"`
	// Rotate - keep the current page in the middle of the slot window.
	Rotate bool `json:"rotate"`
	// Ellipses - show first/last page numbers and ellipses around the window.
	Ellipses *bool `json:"ellipses,omitempty"`
}

// Decode converts RawPager into *Pager with the sort keys applied. The page is
// clamped on the first Refresh, once the collection size is known.
func (r RawPager) Decode(sort ...SortKey) (*Pager, error) {
	if r.MaxSize < 0 {
		return nil, fmt.Errorf("cannot decode pager: %w", ErrInvalidMaxSize)
	}

	cfg := DefaultConfig()
	cfg.PageSize = NormalizePageSize(r.PageSize)
	cfg.MaxSize = r.MaxSize
	cfg.Rotate = r.Rotate
	if r.Ellipses != nil {
		cfg.Ellipses = *r.Ellipses
	}

	return NewPager().
		WithConfig(cfg).
		WithPage(r.Page).
		WithSubstitutedSort(sort...), nil
}
