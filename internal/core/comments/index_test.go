package comments

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus(n int) []Comment {
	out := make([]Comment, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Comment{
			ID:           fmt.Sprintf("c%d", i),
			TextOriginal: fmt.Sprintf("comment number %d", i),
			Author:       Author{DisplayName: fmt.Sprintf("user%d", i)},
		})
	}
	return out
}

func TestIndex_Filtered(t *testing.T) {
	t.Run("empty query returns full corpus in order", func(t *testing.T) {
		c := corpus(7)
		ix := NewIndex(c, 10)

		got := ix.Filtered()
		require.Len(t, got, 7)
		for i, cm := range got {
			assert.Equal(t, c[i].ID, cm.ID)
		}
	})

	t.Run("matches body case-insensitively", func(t *testing.T) {
		ix := NewIndex([]Comment{
			{ID: "a", TextOriginal: "Great Explanation"},
			{ID: "b", TextOriginal: "not related"},
		}, 10)
		ix.SetQuery("EXPLAN")

		got := ix.Filtered()
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("matches author name", func(t *testing.T) {
		ix := NewIndex([]Comment{
			{ID: "a", TextOriginal: "hello", Author: Author{DisplayName: "@TechGuru"}},
			{ID: "b", TextOriginal: "hello", Author: Author{DisplayName: "@someone"}},
		}, 10)
		ix.SetQuery("guru")

		got := ix.Filtered()
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("matches reply body and author", func(t *testing.T) {
		ix := NewIndex([]Comment{
			{ID: "a", TextOriginal: "parent", Replies: []Reply{{TextOriginal: "nested gem"}}},
			{ID: "b", TextOriginal: "parent", Replies: []Reply{{Author: Author{DisplayName: "gemhunter"}}}},
			{ID: "c", TextOriginal: "parent"},
		}, 10)
		ix.SetQuery("gem")

		got := ix.Filtered()
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("prefers display text over original for matching", func(t *testing.T) {
		ix := NewIndex([]Comment{
			{ID: "a", TextDisplay: "shown", TextOriginal: "hidden"},
		}, 10)

		ix.SetQuery("shown")
		assert.Len(t, ix.Filtered(), 1)

		ix.SetQuery("hidden")
		assert.Empty(t, ix.Filtered())
	})

	t.Run("filtered is an order-preserving subset", func(t *testing.T) {
		c := corpus(30)
		ix := NewIndex(c, 10)
		ix.SetQuery("number 1") // matches 1, 10..19

		prev := -1
		for _, cm := range ix.Filtered() {
			var idx int
			_, err := fmt.Sscanf(cm.ID, "c%d", &idx)
			require.NoError(t, err)
			assert.Greater(t, idx, prev)
			prev = idx
		}
	})
}

func TestIndex_Pagination(t *testing.T) {
	t.Run("pages partition the filtered view", func(t *testing.T) {
		c := corpus(23)
		ix := NewIndex(c, 10)

		assert.Equal(t, 3, ix.TotalPages())

		var union []Comment
		for p := 1; p <= ix.TotalPages(); p++ {
			ix.SetPage(p)
			page := ix.CurrentPage()
			assert.LessOrEqual(t, len(page), 10)
			union = append(union, page...)
		}
		assert.Equal(t, ix.Filtered(), union)
	})

	t.Run("empty corpus has one page", func(t *testing.T) {
		ix := NewIndex(nil, 10)
		assert.Equal(t, 1, ix.TotalPages())
		assert.Empty(t, ix.CurrentPage())
	})

	t.Run("out of range page changes nothing", func(t *testing.T) {
		ix := NewIndex(corpus(12), 10)
		ix.SetPage(2)

		ix.SetPage(0)
		assert.Equal(t, 2, ix.Page())
		ix.SetPage(3)
		assert.Equal(t, 2, ix.Page())
		ix.SetPage(-4)
		assert.Equal(t, 2, ix.Page())
	})

	t.Run("changing the query resets to page one", func(t *testing.T) {
		ix := NewIndex(corpus(25), 10)
		ix.SetPage(3)

		ix.SetQuery("number")
		assert.Equal(t, 1, ix.Page())
	})

	t.Run("twelve comments scenario", func(t *testing.T) {
		ix := NewIndex(corpus(12), 10)

		page := ix.CurrentPage()
		require.Len(t, page, 10)
		assert.Equal(t, "c1", page[0].ID)
		assert.Equal(t, "c10", page[9].ID)
		assert.Equal(t, []int{1, 2}, ix.PaginationRange())

		// A query matching only comment #11 collapses to one page of one.
		ix.SetQuery("comment number 11")
		assert.Equal(t, 1, ix.Page())
		require.Len(t, ix.CurrentPage(), 1)
		assert.Equal(t, "c11", ix.CurrentPage()[0].ID)
		assert.Equal(t, 1, ix.TotalPages())
	})
}

func TestIndex_PaginationRange(t *testing.T) {
	tests := []struct {
		name     string
		comments int
		page     int
		want     []int
	}{
		{"single page", 5, 1, []int{1}},
		{"all pages fit in window", 30, 2, []int{1, 2, 3}},
		{"window centered mid-range", 100, 5, []int{3, 4, 5, 6, 7}},
		{"clamped at the start", 100, 1, []int{1, 2, 3, 4, 5}},
		{"shifted left at the end", 100, 10, []int{6, 7, 8, 9, 10}},
		{"near end still shows five", 100, 9, []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(corpus(tt.comments), 10)
			ix.SetPage(tt.page)
			assert.Equal(t, tt.want, ix.PaginationRange())
		})
	}

	t.Run("always contains the current page", func(t *testing.T) {
		ix := NewIndex(corpus(87), 10)
		for p := 1; p <= ix.TotalPages(); p++ {
			ix.SetPage(p)
			assert.Contains(t, ix.PaginationRange(), p)
		}
	})

	t.Run("strictly increasing and bounded", func(t *testing.T) {
		ix := NewIndex(corpus(87), 10)
		for p := 1; p <= ix.TotalPages(); p++ {
			ix.SetPage(p)
			rng := ix.PaginationRange()
			require.NotEmpty(t, rng)
			assert.LessOrEqual(t, len(rng), 5)
			for i, page := range rng {
				assert.GreaterOrEqual(t, page, 1)
				assert.LessOrEqual(t, page, ix.TotalPages())
				if i > 0 {
					assert.Equal(t, rng[i-1]+1, page)
				}
			}
		}
	})
}
