package page

import (
	"math"
	"testing"
)

func TestCount(t *testing.T) {
	cases := []struct {
		items   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := Count(c.items, c.perPage); got != c.want {
			t.Fatalf("Count(%d, %d) = %d, want %d", c.items, c.perPage, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	p := Pagination{}.Normalize()
	if p.PageIndex != 1 || p.ItemsPerPage != 10 {
		t.Fatalf("defaults = %+v", p)
	}
	p = Pagination{PageIndex: 3, ItemsPerPage: 1000}.Normalize()
	if p.ItemsPerPage != MaxItemsPerPage {
		t.Fatalf("ItemsPerPage = %d, want %d", p.ItemsPerPage, MaxItemsPerPage)
	}
	if p.Offset() != 200 {
		t.Fatalf("Offset = %d, want 200", p.Offset())
	}
}

func TestNormalize_ClampsHugeIndex(t *testing.T) {
	for _, perPage := range []int{1, 10, MaxItemsPerPage, 5000} {
		p := Pagination{PageIndex: math.MaxInt / 5, ItemsPerPage: perPage}.Normalize()
		if p.PageIndex != MaxIndex {
			t.Fatalf("PageIndex = %d, want %d", p.PageIndex, MaxIndex)
		}
		if off := p.Offset(); off <= 0 {
			t.Fatalf("Offset overflowed for itemsPerPage=%d: %d", perPage, off)
		}
	}
}

func TestNewAndMap(t *testing.T) {
	pg := New[int](nil, Pagination{PageIndex: 2, ItemsPerPage: 3}, 7)
	if pg.Items == nil || len(pg.Items) != 0 {
		t.Fatalf("nil items should become empty slice")
	}
	if pg.PageCount != 3 {
		t.Fatalf("PageCount = %d, want 3", pg.PageCount)
	}

	src := New([]int{1, 2}, Pagination{PageIndex: 1, ItemsPerPage: 2}, 2)
	dst := Map(src, func(i int) string { return string(rune('a' + i)) })
	if len(dst.Items) != 2 || dst.Items[0] != "b" || dst.ItemCount != 2 || dst.PageCount != 1 {
		t.Fatalf("Map result = %+v", dst)
	}
}
