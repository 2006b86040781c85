package pageslots

// Config describes a pagination control. It is immutable per computation.
type Config struct {
	// CollectionSize number of items in the collection.
	CollectionSize int `json:"collectionSize"`
	// PageSize number of items per page.
	PageSize int `json:"pageSize"`
	// MaxSize maximum number of page slots in the window. 0 means unlimited.
	MaxSize int `json:"maxSize"`
	// Rotate keeps the current page in the middle of the window instead of
	// paginating the window in MaxSize chunks.
	Rotate bool `json:"rotate"`
	// Ellipses adds the first/last page numbers and ellipsis markers around a
	// constrained window.
	Ellipses bool `json:"ellipses"`
	// BoundaryLinks and DirectionLinks affect only the rendered links, never
	// the slot list.
	BoundaryLinks  bool `json:"boundaryLinks"`
	DirectionLinks bool `json:"directionLinks"`
}

// DefaultConfig returns the defaults of a freshly created control.
func DefaultConfig() Config {
	return Config{
		PageSize:       DefaultPageSize,
		Ellipses:       true,
		DirectionLinks: true,
	}
}

// Pages is the result of a computation.
type Pages struct {
	// PageCount number of pages, >= 0.
	PageCount int `json:"pageCount"`
	// Page current page clamped to [1, PageCount] (1 when there are no pages).
	Page int `json:"page"`
	// Slots ordered left to right.
	Slots []Slot `json:"slots"`
}

// Compute derives the page count, clamps page and builds the slot list. It
// is pure and returns a freshly allocated slot list on every call.
func Compute(cfg Config, page int) Pages {
	pageCount := ComputePageCount(cfg.CollectionSize, cfg.PageSize)
	page = ClampPage(page, pageCount)
	slots := pageNumbers(pageCount)

	w, ok := SelectWindow(pageCount, page, cfg.MaxSize, cfg.Rotate)
	if ok {
		slots = w.Slice(slots)
		if cfg.Ellipses {
			slots = applyEllipses(slots, w, pageCount)
		}
	}

	return Pages{
		PageCount: pageCount,
		Page:      page,
		Slots:     slots,
	}
}

// HasPrevious reports whether a page before the current one exists.
func (p Pages) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether a page after the current one exists.
func (p Pages) HasNext() bool {
	return p.Page < p.PageCount
}

// IsCurrent reports whether the slot is the current page.
func (p Pages) IsCurrent(s Slot) bool {
	return !s.IsEllipsis() && s.Page() == p.Page
}
