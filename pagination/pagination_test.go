package pagination

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequence renders items compactly for table tests: "<" and ">" are the
// prev/next markers ("<!" when disabled), "..." is an ellipsis, page
// numbers render as themselves with "*" marking the current page.
func sequence(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case KindPrev:
			if it.Enabled {
				out = append(out, "<")
			} else {
				out = append(out, "<!")
			}
		case KindNext:
			if it.Enabled {
				out = append(out, ">")
			} else {
				out = append(out, ">!")
			}
		case KindEllipsis:
			out = append(out, "...")
		case KindPage:
			s := strconv.Itoa(it.Number)
			if it.Current {
				s += "*"
			}
			out = append(out, s)
		}
	}
	return out
}

func TestGenerate_Sequences(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		current  int
		opts     Options
		expected []string
	}{
		{
			name:     "middle page with default window",
			total:    10,
			current:  5,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "...", "4", "5*", "6", "...", "10", ">"},
		},
		{
			name:     "small range collapses to full run",
			total:    5,
			current:  3,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "2", "3*", "4", "5", ">"},
		},
		{
			name:     "first page disables prev",
			total:    10,
			current:  1,
			opts:     DefaultOptions(),
			expected: []string{"<!", "1*", "2", "...", "10", ">"},
		},
		{
			name:     "last page disables next",
			total:    10,
			current:  10,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "...", "9", "10*", ">!"},
		},
		{
			name:     "single page",
			total:    1,
			current:  1,
			opts:     DefaultOptions(),
			expected: []string{"<!", "1*", ">!"},
		},
		{
			name:     "two pages",
			total:    2,
			current:  2,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "2*", ">!"},
		},
		{
			name:     "gap of one page is shown instead of an ellipsis",
			total:    7,
			current:  4,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "2", "3", "4*", "5", "6", "7", ">"},
		},
		{
			name:     "wider sibling window",
			total:    20,
			current:  10,
			opts:     Options{SiblingCount: 2, BoundaryCount: 1},
			expected: []string{"<", "1", "...", "8", "9", "10*", "11", "12", "...", "20", ">"},
		},
		{
			name:     "wider boundaries",
			total:    20,
			current:  10,
			opts:     Options{SiblingCount: 1, BoundaryCount: 2},
			expected: []string{"<", "1", "2", "...", "9", "10*", "11", "...", "19", "20", ">"},
		},
		{
			name:     "zero boundaries shows only the sibling window",
			total:    20,
			current:  10,
			opts:     Options{SiblingCount: 1, BoundaryCount: 0},
			expected: []string{"<", "9", "10*", "11", ">"},
		},
		{
			name:     "zero siblings still pins the current page",
			total:    20,
			current:  10,
			opts:     Options{SiblingCount: 0, BoundaryCount: 1},
			expected: []string{"<", "1", "...", "10*", "...", "20", ">"},
		},
		{
			name:     "negative counts behave like zero",
			total:    20,
			current:  10,
			opts:     Options{SiblingCount: -3, BoundaryCount: -1},
			expected: []string{"<", "10*", ">"},
		},
		{
			name:     "window touching the left boundary merges without ellipsis",
			total:    10,
			current:  3,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "2", "3*", "4", "...", "10", ">"},
		},
		{
			name:     "window touching the right boundary merges without ellipsis",
			total:    10,
			current:  8,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "...", "7", "8*", "9", "10", ">"},
		},
		{
			name:     "boundaries covering the whole range",
			total:    4,
			current:  2,
			opts:     Options{SiblingCount: 1, BoundaryCount: 10},
			expected: []string{"<", "1", "2*", "3", "4", ">"},
		},
		{
			name:     "no pages yields disabled markers only",
			total:    0,
			current:  1,
			opts:     DefaultOptions(),
			expected: []string{"<!", ">!"},
		},
		{
			name:     "negative total behaves like no pages",
			total:    -3,
			current:  2,
			opts:     DefaultOptions(),
			expected: []string{"<!", ">!"},
		},
		{
			name:     "current page of zero marks nothing current",
			total:    10,
			current:  0,
			opts:     DefaultOptions(),
			expected: []string{"<!", "1", "...", "10", ">"},
		},
		{
			name:     "current page beyond the end still disables next",
			total:    10,
			current:  15,
			opts:     DefaultOptions(),
			expected: []string{"<", "1", "...", "10", ">!"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(tc.total, tc.current, tc.opts)
			assert.Equal(t, tc.expected, sequence(got))
		})
	}
}

func TestGenerate_MarkerTargets(t *testing.T) {
	items := Generate(10, 5, DefaultOptions())

	prev := items[0]
	next := items[len(items)-1]

	if prev.Kind != KindPrev || prev.Number != 4 {
		t.Errorf("expected prev marker targeting page 4, got kind=%s number=%d", prev.Kind, prev.Number)
	}
	if next.Kind != KindNext || next.Number != 6 {
		t.Errorf("expected next marker targeting page 6, got kind=%s number=%d", next.Kind, next.Number)
	}
}

func TestGenerate_FirstLastFlags(t *testing.T) {
	for _, it := range Generate(10, 5, DefaultOptions()) {
		if it.Kind != KindPage {
			continue
		}
		if got, want := it.First, it.Number == 1; got != want {
			t.Errorf("page %d: First = %v, want %v", it.Number, got, want)
		}
		if got, want := it.Last, it.Number == 10; got != want {
			t.Errorf("page %d: Last = %v, want %v", it.Number, got, want)
		}
	}
}

// Invariant sweep across a grid of inputs: page numbers strictly
// increasing and in range, exactly one current page when the current
// page exists, no adjacent ellipses, no ellipsis standing in for a
// single page, and consistent prev/next enablement.
func TestGenerate_Invariants(t *testing.T) {
	for total := 1; total <= 25; total++ {
		for current := 1; current <= total; current++ {
			for _, opts := range []Options{
				{SiblingCount: 0, BoundaryCount: 0},
				{SiblingCount: 0, BoundaryCount: 1},
				{SiblingCount: 1, BoundaryCount: 1},
				{SiblingCount: 2, BoundaryCount: 1},
				{SiblingCount: 1, BoundaryCount: 2},
				{SiblingCount: 3, BoundaryCount: 2},
			} {
				name := fmt.Sprintf("t=%d c=%d s=%d b=%d", total, current, opts.SiblingCount, opts.BoundaryCount)
				checkInvariants(t, name, Generate(total, current, opts), total, current)
			}
		}
	}
}

func checkInvariants(t *testing.T, name string, items []Item, total, current int) {
	t.Helper()

	if items[0].Kind != KindPrev {
		t.Fatalf("%s: sequence does not start with a prev marker", name)
	}
	if items[len(items)-1].Kind != KindNext {
		t.Fatalf("%s: sequence does not end with a next marker", name)
	}
	if got, want := items[0].Enabled, current > 1; got != want {
		t.Errorf("%s: prev enabled = %v, want %v", name, got, want)
	}
	if got, want := items[len(items)-1].Enabled, current < total; got != want {
		t.Errorf("%s: next enabled = %v, want %v", name, got, want)
	}

	lastNumber := 0
	currents := 0
	for i, it := range items[1 : len(items)-1] {
		switch it.Kind {
		case KindPage:
			if it.Number <= lastNumber {
				t.Errorf("%s: page numbers not strictly increasing at index %d", name, i)
			}
			if it.Number < 1 || it.Number > total {
				t.Errorf("%s: page %d out of range [1,%d]", name, it.Number, total)
			}
			lastNumber = it.Number
			if it.Current {
				currents++
				if it.Number != current {
					t.Errorf("%s: page %d marked current, want %d", name, it.Number, current)
				}
			}
		case KindEllipsis:
			if i == 0 || items[i].Kind == KindEllipsis {
				t.Errorf("%s: ellipsis at index %d has no page before it", name, i)
			}
		default:
			t.Errorf("%s: unexpected %s item inside the sequence", name, it.Kind)
		}
	}
	if currents != 1 {
		t.Errorf("%s: %d pages marked current, want exactly 1", name, currents)
	}

	// An ellipsis must always hide at least two pages.
	for i := 1; i < len(items)-1; i++ {
		if items[i].Kind != KindEllipsis {
			continue
		}
		before, after := items[i-1], items[i+1]
		if before.Kind != KindPage || after.Kind != KindPage {
			t.Errorf("%s: ellipsis at index %d not surrounded by pages", name, i)
			continue
		}
		if after.Number-before.Number <= 2 {
			t.Errorf("%s: ellipsis between %d and %d hides fewer than two pages", name, before.Number, after.Number)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first := Generate(37, 19, Options{SiblingCount: 2, BoundaryCount: 2})
	second := Generate(37, 19, Options{SiblingCount: 2, BoundaryCount: 2})
	assert.Equal(t, first, second)
}

func TestItems_UsesDefaultWindow(t *testing.T) {
	assert.Equal(t, Generate(10, 5, DefaultOptions()), Items(10, 5))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPrev, "prev"},
		{KindPage, "page"},
		{KindEllipsis, "ellipsis"},
		{KindNext, "next"},
		{Kind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
