// Package pagination computes which pagination controls to show for a
// bounded, known-total page list: previous/next markers, page numbers and
// ellipsis gaps. The generator is a pure function of its inputs and is the
// shared backend for the nav component and for list pages.
package pagination

import "sort"

// Kind identifies the role of an Item in the control sequence.
type Kind int

const (
	KindPrev Kind = iota
	KindPage
	KindEllipsis
	KindNext
)

// String returns a short name for the kind, used in logs and tests.
func (k Kind) String() string {
	switch k {
	case KindPrev:
		return "prev"
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	case KindNext:
		return "next"
	default:
		return "unknown"
	}
}

// Item is one entry in the generated control sequence.
type Item struct {
	Kind   Kind
	Number int // page number for KindPage, target page for KindPrev/KindNext

	Current bool // KindPage: this is the current page
	First   bool // KindPage: page number 1
	Last    bool // KindPage: the final page

	Enabled bool // KindPrev/KindNext: target page exists
}

// Options controls how wide the rendered page window is.
type Options struct {
	// SiblingCount is how many pages to show on each side of the current
	// page. Negative values are treated as 0.
	SiblingCount int
	// BoundaryCount is how many pages to always show at the start and at
	// the end of the range. Negative values are treated as 0.
	BoundaryCount int
}

// DefaultOptions returns the standard window: one sibling on each side of
// the current page and one boundary page at each end.
func DefaultOptions() Options {
	return Options{SiblingCount: 1, BoundaryCount: 1}
}

// Items generates the control sequence with DefaultOptions.
func Items(totalPages, currentPage int) []Item {
	return Generate(totalPages, currentPage, DefaultOptions())
}

// Generate produces the ordered control sequence for the given page range:
// a prev marker, the visible page numbers with ellipsis gaps, and a next
// marker. It never panics; a totalPages of zero or less means there is
// nothing to paginate and yields only disabled prev/next markers. An
// out-of-range currentPage still produces a consistent sequence, it just
// marks no page as current.
func Generate(totalPages, currentPage int, opts Options) []Item {
	siblings := opts.SiblingCount
	if siblings < 0 {
		siblings = 0
	}
	boundaries := opts.BoundaryCount
	if boundaries < 0 {
		boundaries = 0
	}

	if totalPages <= 0 {
		return []Item{
			{Kind: KindPrev, Number: currentPage - 1},
			{Kind: KindNext, Number: currentPage + 1},
		}
	}

	items := make([]Item, 0, 2*boundaries+2*siblings+5)
	items = append(items, Item{
		Kind:    KindPrev,
		Number:  currentPage - 1,
		Enabled: currentPage > 1,
	})

	for i, n := range visiblePages(totalPages, currentPage, siblings, boundaries) {
		if i > 0 {
			prev := items[len(items)-1].Number
			switch gap := n - prev; {
			case gap == 2:
				// A single hidden page is cheaper to show than an
				// ellipsis that stands in for it.
				items = append(items, pageItem(prev+1, totalPages, currentPage))
			case gap > 2:
				items = append(items, Item{Kind: KindEllipsis})
			}
		}
		items = append(items, pageItem(n, totalPages, currentPage))
	}

	items = append(items, Item{
		Kind:    KindNext,
		Number:  currentPage + 1,
		Enabled: currentPage < totalPages,
	})
	return items
}

func pageItem(n, totalPages, currentPage int) Item {
	return Item{
		Kind:    KindPage,
		Number:  n,
		Current: n == currentPage,
		First:   n == 1,
		Last:    n == totalPages,
	}
}

// visiblePages returns the sorted, de-duplicated union of the boundary
// blocks and the sibling window around the current page, each clipped to
// [1, totalPages].
func visiblePages(totalPages, currentPage, siblings, boundaries int) []int {
	seen := make(map[int]struct{})

	for n := 1; n <= boundaries && n <= totalPages; n++ {
		seen[n] = struct{}{}
	}
	for n := totalPages - boundaries + 1; n <= totalPages; n++ {
		if n >= 1 {
			seen[n] = struct{}{}
		}
	}

	lo := currentPage - siblings
	if lo < 1 {
		lo = 1
	}
	hi := currentPage + siblings
	if hi > totalPages {
		hi = totalPages
	}
	for n := lo; n <= hi; n++ {
		seen[n] = struct{}{}
	}

	pages := make([]int, 0, len(seen))
	for n := range seen {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages
}
