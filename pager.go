package pageslots

import (
	"github.com/rs/zerolog"
)

// Pager is a single pagination control instance. It owns the current page and
// is not safe for concurrent use: callers serialize page-change requests.
//
// The zero page held by a new Pager is outside every valid range, so the first
// Refresh or SelectPage clamps it and notifies the change.
type Pager struct {
	cfg          Config
	disabled     bool
	page         int
	sort         Sort
	onPageChange func(page int)
	logger       zerolog.Logger
}

func NewPager() *Pager {
	return &Pager{
		cfg:    DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig replaces the whole configuration.
func (p *Pager) WithConfig(cfg Config) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg = cfg

	return p
}

func (p *Pager) WithCollectionSize(collectionSize int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.CollectionSize = collectionSize

	return p
}

func (p *Pager) WithPageSize(pageSize int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.PageSize = pageSize

	return p
}

// WithPage sets the held page as-is, without clamping or notification. Use it
// to restore a control; page-change requests go through SelectPage.
func (p *Pager) WithPage(page int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.page = page

	return p
}

// WithMaxSize limits the number of page slots in the window. 0 disables the
// limit.
func (p *Pager) WithMaxSize(maxSize int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.MaxSize = maxSize

	return p
}

func (p *Pager) WithRotate(rotate bool) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.Rotate = rotate

	return p
}

func (p *Pager) WithEllipses(ellipses bool) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.Ellipses = ellipses

	return p
}

func (p *Pager) WithBoundaryLinks(boundaryLinks bool) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.BoundaryLinks = boundaryLinks

	return p
}

func (p *Pager) WithDirectionLinks(directionLinks bool) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.cfg.DirectionLinks = directionLinks

	return p
}

// WithDisabled disables every rendered link. Page-change requests are still
// honoured; the flag only affects Links.
func (p *Pager) WithDisabled(disabled bool) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.disabled = disabled

	return p
}

// WithOnPageChange sets the callback invoked with the new page whenever the
// clamped page differs from the held one.
func (p *Pager) WithOnPageChange(fn func(page int)) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.onPageChange = fn

	return p
}

func (p *Pager) WithLogger(logger zerolog.Logger) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.logger = logger

	return p
}

// WithSubstitutedSort resets previous sort keys and applies the provided ones.
func (p *Pager) WithSubstitutedSort(keys ...SortKey) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.sort = nil

	return p.WithSort(keys...)
}

// WithSort appends sort keys. A key on an already sorted column replaces the
// earlier one and moves to the end.
func (p *Pager) WithSort(keys ...SortKey) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.sort = p.sort.with(keys...)

	return p
}

// SelectPage requests a page change. The page is clamped into the valid range;
// changed reports whether the held page moved, in which case the
// OnPageChange callback has been invoked exactly once.
func (p *Pager) SelectPage(page int) (pages Pages, changed bool) {
	pages = Compute(p.cfg, page)

	prev := p.page
	p.page = pages.Page
	if p.page == prev {
		return pages, false
	}

	p.logger.Debug().
		Int("from", prev).
		Int("to", p.page).
		Int("page_count", pages.PageCount).
		Msg("page changed")

	if p.onPageChange != nil {
		p.onPageChange(p.page)
	}

	return pages, true
}

// Refresh recomputes the slots for the held page, e.g. after the collection
// size changed. The held page may be clamped, which notifies like SelectPage.
func (p *Pager) Refresh() (Pages, bool) {
	return p.SelectPage(p.page)
}

// First, Previous, Next and Last are the page-change requests of the
// direction and boundary links.
func (p *Pager) First() (Pages, bool) {
	return p.SelectPage(1)
}

func (p *Pager) Previous() (Pages, bool) {
	return p.SelectPage(p.page - 1)
}

func (p *Pager) Next() (Pages, bool) {
	return p.SelectPage(p.page + 1)
}

func (p *Pager) Last() (Pages, bool) {
	return p.SelectPage(ComputePageCount(p.cfg.CollectionSize, p.cfg.PageSize))
}

// Pages computes the slots for the held page without changing it.
func (p *Pager) Pages() Pages {
	if p == nil {
		return Compute(DefaultConfig(), 0)
	}

	return Compute(p.cfg, p.page)
}

// GetPage returns the held page as-is. It is 0 until the first computation.
func (p *Pager) GetPage() int {
	if p == nil {
		return 0
	}

	return p.page
}

func (p *Pager) GetConfig() Config {
	if p == nil {
		return DefaultConfig()
	}

	return p.cfg
}

// GetSort returns the sort keys applied to queries.
func (p *Pager) GetSort() Sort {
	if p == nil {
		return nil
	}

	return p.sort
}

func (p *Pager) IsDisabled() bool {
	return p != nil && p.disabled
}

// Limit returns the number of items on a page.
func (p *Pager) Limit() int {
	if p == nil {
		return 0
	}

	return max(p.cfg.PageSize, 0)
}

// Offset returns the number of items preceding the held page.
func (p *Pager) Offset() int {
	if p == nil || p.page <= 1 {
		return 0
	}

	return (p.page - 1) * p.Limit()
}
