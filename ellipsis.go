package pageslots

// applyEllipses frames the windowed slots with the boundary page numbers and
// ellipsis markers:
//
//	[1, Ellipsis?, ...window..., Ellipsis?, pageCount]
//
// An omitted gap of exactly one page shows that page number rather than an
// ellipsis. The window bounds are the unclamped ones that produced slots.
func applyEllipses(slots []Slot, w Window, pageCount int) []Slot {
	ret := make([]Slot, 0, len(slots)+4)

	if w.Start > 0 {
		ret = append(ret, 1)
		if w.Start > 1 {
			ret = append(ret, Ellipsis)
		}
	}

	ret = append(ret, slots...)

	if w.End < pageCount {
		if w.End < pageCount-1 {
			ret = append(ret, Ellipsis)
		}
		ret = append(ret, Slot(pageCount))
	}

	return ret
}
