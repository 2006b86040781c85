package pageslots

import (
	"fmt"

	"gorm.io/gorm"
)

// PageResult is a generic numbered page of a dataset.
type PageResult[T any] struct {
	// Items result elements of the current page.
	Items []T `json:"items"`
	// Total number of elements in the dataset.
	Total int64 `json:"total"`
	// Pages slots computed for the dataset and the current page.
	Pages Pages `json:"pages"`
}

// Apply applies the sort and the held page to the dataset:
//
//	ORDER BY <sort> LIMIT <pageSize> OFFSET <(page-1)*pageSize>
//
// Returns an error if the sort is invalid.
func (p *Pager) Apply(db *gorm.DB) (*gorm.DB, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot apply page: pager is nil")
	}

	if err := p.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot apply page: %w", err)
	}

	return p.sort.Apply(db).
		Offset(p.Offset()).
		Limit(p.Limit()), nil
}

// Paginate counts the dataset, feeds the count into the pager as its
// collection size, clamps the held page and loads the items of that page.
//
// The pager notifies a page change if the clamp moved the page. A dataset
// without pages is not queried for items.
func Paginate[T any](db *gorm.DB, pager *Pager) (*PageResult[T], error) {
	if pager == nil {
		return nil, fmt.Errorf("cannot paginate: pager is nil")
	}

	if err := pager.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	var total int64
	err := db.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("cannot count dataset: %w", err)
	}

	pages, _ := pager.WithCollectionSize(int(total)).Refresh()
	ret := &PageResult[T]{
		Items: []T{},
		Total: total,
		Pages: pages,
	}
	if pages.PageCount == 0 {
		return ret, nil
	}

	query, err := pager.Apply(db.Session(&gorm.Session{}))
	if err != nil {
		return nil, err
	}

	if err = query.Find(&ret.Items).Error; err != nil {
		return nil, fmt.Errorf("cannot load page %d: %w", pages.Page, err)
	}

	pager.logger.Debug().
		Int64("total", total).
		Int("page", pages.Page).
		Int("page_count", pages.PageCount).
		Int("items", len(ret.Items)).
		Msg("page loaded")

	return ret, nil
}
