package pageslots

// LinkKind identifies an item of the rendered control.
type LinkKind string

const (
	LinkFirst    LinkKind = "first"
	LinkPrevious LinkKind = "previous"
	LinkPage     LinkKind = "page"
	LinkEllipsis LinkKind = "ellipsis"
	LinkNext     LinkKind = "next"
	LinkLast     LinkKind = "last"
)

// Link is one item of the rendered control. Page is the page-change request
// the item issues when selected; it is 0 for ellipses.
type Link struct {
	Kind     LinkKind `json:"kind"`
	Page     int      `json:"page,omitempty"`
	Active   bool     `json:"active,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
}

type LinkOptions struct {
	BoundaryLinks  bool
	DirectionLinks bool
	Disabled       bool
}

// BuildLinks lays out the control left to right:
//
//	[first?, previous?, ...slots..., next?, last?]
func BuildLinks(pages Pages, opts LinkOptions) []Link {
	noPrevious := !pages.HasPrevious() || opts.Disabled
	noNext := !pages.HasNext() || opts.Disabled

	ret := make([]Link, 0, len(pages.Slots)+4)
	if opts.BoundaryLinks {
		ret = append(ret, Link{Kind: LinkFirst, Page: 1, Disabled: noPrevious})
	}
	if opts.DirectionLinks {
		ret = append(ret, Link{Kind: LinkPrevious, Page: pages.Page - 1, Disabled: noPrevious})
	}

	for _, s := range pages.Slots {
		if s.IsEllipsis() {
			ret = append(ret, Link{Kind: LinkEllipsis, Disabled: true})
			continue
		}

		ret = append(ret, Link{
			Kind:     LinkPage,
			Page:     s.Page(),
			Active:   pages.IsCurrent(s),
			Disabled: opts.Disabled,
		})
	}

	if opts.DirectionLinks {
		ret = append(ret, Link{Kind: LinkNext, Page: pages.Page + 1, Disabled: noNext})
	}
	if opts.BoundaryLinks {
		ret = append(ret, Link{Kind: LinkLast, Page: pages.PageCount, Disabled: noNext})
	}

	return ret
}

// Links builds the rendered items for the held page using the pager's link
// flags.
func (p *Pager) Links() []Link {
	cfg := p.GetConfig()

	return BuildLinks(p.Pages(), LinkOptions{
		BoundaryLinks:  cfg.BoundaryLinks,
		DirectionLinks: cfg.DirectionLinks,
		Disabled:       p.IsDisabled(),
	})
}
