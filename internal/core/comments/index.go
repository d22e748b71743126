package comments

import "strings"

// DefaultPageSize is the fixed number of comments shown per page.
const DefaultPageSize = 10

// paginationWindow is the maximum number of page numbers shown at once.
const paginationWindow = 5

// Index is a derived, query-driven view over an immutable comment corpus.
// It never mutates the corpus; filtering and pagination are recomputed from
// the query state, so all read methods are pure with respect to the corpus.
type Index struct {
	corpus   []Comment
	query    string
	page     int
	pageSize int
}

// NewIndex builds an index over corpus with the given page size. A page size
// of zero or less falls back to DefaultPageSize.
func NewIndex(corpus []Comment, pageSize int) *Index {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Index{
		corpus:   corpus,
		page:     1,
		pageSize: pageSize,
	}
}

// SetQuery replaces the search string and resets to the first page.
func (ix *Index) SetQuery(q string) {
	ix.query = q
	ix.page = 1
}

// Query returns the current search string.
func (ix *Index) Query() string {
	return ix.query
}

// SetPage moves to page n when 1 <= n <= TotalPages; out-of-range values are
// silently ignored. Pagination controls are generated from PaginationRange,
// so an invalid n indicates nothing worth erroring over.
func (ix *Index) SetPage(n int) {
	if n >= 1 && n <= ix.TotalPages() {
		ix.page = n
	}
}

// Page returns the current 1-based page number.
func (ix *Index) Page() int {
	return ix.page
}

// PageSize returns the fixed page size.
func (ix *Index) PageSize() int {
	return ix.pageSize
}

// Len returns the size of the unfiltered corpus.
func (ix *Index) Len() int {
	return len(ix.corpus)
}

// Filtered returns the ordered comments matching the current query. The match
// is a case-insensitive substring test against the raw body or author name of
// the comment or any of its replies. An empty query returns the whole corpus.
func (ix *Index) Filtered() []Comment {
	q := strings.TrimSpace(ix.query)
	if q == "" {
		return ix.corpus
	}

	q = strings.ToLower(q)
	var out []Comment
	for _, c := range ix.corpus {
		if matchesComment(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matchesComment(c Comment, q string) bool {
	if containsFold(c.DisplayText(), q) || containsFold(c.Author.DisplayName, q) {
		return true
	}
	for _, r := range c.Replies {
		if containsFold(r.DisplayText(), q) || containsFold(r.Author.DisplayName, q) {
			return true
		}
	}
	return false
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

// TotalPages returns the page count for the filtered view, never less than 1.
func (ix *Index) TotalPages() int {
	n := len(ix.Filtered())
	if n == 0 {
		return 1
	}
	return (n + ix.pageSize - 1) / ix.pageSize
}

// CurrentPage returns the slice of the filtered view for the current page.
func (ix *Index) CurrentPage() []Comment {
	filtered := ix.Filtered()
	start := (ix.page - 1) * ix.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := min(start+ix.pageSize, len(filtered))
	return filtered[start:end]
}

// PaginationRange returns a window of up to five page numbers centered on the
// current page and clamped to [1, TotalPages]. When the centered window would
// run past the last page it shifts left so the window still ends at the last
// page.
func (ix *Index) PaginationRange() []int {
	total := ix.TotalPages()

	start := max(1, ix.page-paginationWindow/2)
	end := min(total, start+paginationWindow-1)
	if end-start < paginationWindow-1 {
		start = max(1, end-paginationWindow+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
