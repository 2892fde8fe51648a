package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewData(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int64
		want    Data
	}{
		{
			name: "exact multiple of page size",
			page: 2, perPage: 10, total: 30,
			want: Data{
				CurrentPage: 2, TotalPages: 3, PerPage: 10, Total: 30,
				HasPrevious: true, HasNext: true, PrevPage: 1, NextPage: 3,
			},
		},
		{
			name: "partial last page rounds up",
			page: 1, perPage: 10, total: 31,
			want: Data{
				CurrentPage: 1, TotalPages: 4, PerPage: 10, Total: 31,
				HasNext: true, PrevPage: 0, NextPage: 2,
			},
		},
		{
			name: "empty result keeps one page",
			page: 1, perPage: 20, total: 0,
			want: Data{
				CurrentPage: 1, TotalPages: 1, PerPage: 20, Total: 0,
				PrevPage: 0, NextPage: 2,
			},
		},
		{
			name: "page clamped to last",
			page: 99, perPage: 10, total: 35,
			want: Data{
				CurrentPage: 4, TotalPages: 4, PerPage: 10, Total: 35,
				HasPrevious: true, PrevPage: 3, NextPage: 5,
			},
		},
		{
			name: "page clamped to first",
			page: -5, perPage: 10, total: 35,
			want: Data{
				CurrentPage: 1, TotalPages: 4, PerPage: 10, Total: 35,
				HasNext: true, PrevPage: 0, NextPage: 2,
			},
		},
		{
			name: "non-positive page size falls back to one",
			page: 2, perPage: 0, total: 3,
			want: Data{
				CurrentPage: 2, TotalPages: 3, PerPage: 1, Total: 3,
				HasPrevious: true, HasNext: true, PrevPage: 1, NextPage: 3,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewData(tc.page, tc.perPage, tc.total))
		})
	}
}

func TestDataOffset(t *testing.T) {
	tests := []struct {
		page    int
		perPage int
		total   int64
		want    int
	}{
		{1, 20, 100, 0},
		{2, 20, 100, 20},
		{5, 20, 100, 80},
		{99, 20, 100, 80}, // clamped to page 5
	}
	for _, tc := range tests {
		d := NewData(tc.page, tc.perPage, tc.total)
		if got := d.Offset(); got != tc.want {
			t.Errorf("NewData(%d, %d, %d).Offset() = %d, want %d", tc.page, tc.perPage, tc.total, got, tc.want)
		}
	}
}

func TestDataItems(t *testing.T) {
	d := NewData(5, 10, 100)
	assert.Equal(t, Generate(10, 5, DefaultOptions()), d.Items(DefaultOptions()))
}
