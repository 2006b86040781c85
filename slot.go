package pageslots

import "strconv"

// Slot is one displayed unit of the control: a page number in [1, pageCount]
// or the Ellipsis sentinel.
type Slot int

// Ellipsis marks omitted pages. It is never selectable.
const Ellipsis Slot = -1

func (s Slot) IsEllipsis() bool {
	return s == Ellipsis
}

// Page returns the page number of the slot, or 0 for Ellipsis.
func (s Slot) Page() int {
	if s.IsEllipsis() {
		return 0
	}

	return int(s)
}

// String - implements fmt.Stringer.
func (s Slot) String() string {
	if s.IsEllipsis() {
		return "..."
	}

	return strconv.Itoa(int(s))
}
