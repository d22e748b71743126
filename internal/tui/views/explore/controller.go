// Package explore implements the comment exploration view: fetch a corpus
// for a video reference, then search, paginate, and expand it, with a
// promote-to-chat hand-off.
package explore

import (
	"fmt"

	"github.com/tubetui/tubetui/internal/core/comments"
	"github.com/tubetui/tubetui/internal/core/handoff"
	"github.com/tubetui/tubetui/internal/core/sanitize"
	"github.com/tubetui/tubetui/internal/core/videoid"
)

// Phase is the exploration lifecycle.
type Phase int

const (
	// PhaseIdle: no corpus loaded; the video input is shown. A non-empty
	// Err makes this the idle-with-error variant.
	PhaseIdle Phase = iota
	// PhaseLoading: exactly one corpus request is in flight.
	PhaseLoading
	// PhaseBrowsing: a corpus is loaded and the index drives the list.
	PhaseBrowsing
)

// Controller manages exploration state and the comment index. It contains
// pure data logic with no Bubble Tea dependencies.
type Controller struct {
	phase      Phase
	fetchSeq   uint64
	videoID    string
	videoTitle string
	index      *comments.Index
	pageSize   int
	err        string
	cursor     int
	expanded   map[string]bool
}

// NewController creates an idle exploration controller.
func NewController(pageSize int) *Controller {
	return &Controller{
		pageSize: pageSize,
		expanded: make(map[string]bool),
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Err returns the inline error for the idle phase, if any.
func (c *Controller) Err() string { return c.err }

// VideoID returns the resolved video identifier of the current fetch.
func (c *Controller) VideoID() string { return c.videoID }

// VideoTitle returns the title reported with the corpus, if any.
func (c *Controller) VideoTitle() string { return c.videoTitle }

// Index returns the comment index; nil outside the browsing phase.
func (c *Controller) Index() *comments.Index { return c.index }

// StartFetch validates ref and moves to the loading phase. On a malformed
// reference it records a validation error and stays idle: no request must be
// issued and the user has to correct their input. The returned sequence
// number tags the eventual response so a stale one can be dropped.
func (c *Controller) StartFetch(ref string) (videoID string, seq uint64, ok bool) {
	if c.phase == PhaseLoading {
		return "", 0, false
	}

	id, err := videoid.Extract(ref)
	if err != nil {
		c.err = "Please enter a valid YouTube URL."
		return "", 0, false
	}

	c.err = ""
	c.videoID = id
	c.phase = PhaseLoading
	c.fetchSeq++
	return id, c.fetchSeq, true
}

// Loaded seeds the index with a fetched corpus and begins browsing. A corpus
// whose seq no longer matches (the view was closed or another fetch started)
// is dropped silently.
func (c *Controller) Loaded(seq uint64, corpus []comments.Comment, title string) bool {
	if c.phase != PhaseLoading || seq != c.fetchSeq {
		return false
	}

	c.index = comments.NewIndex(corpus, c.pageSize)
	c.videoTitle = title
	c.phase = PhaseBrowsing
	c.cursor = 0
	clear(c.expanded)
	return true
}

// LoadFailed returns to idle with the failure reason surfaced inline. Stale
// failures are dropped like stale corpora.
func (c *Controller) LoadFailed(seq uint64, reason string) bool {
	if c.phase != PhaseLoading || seq != c.fetchSeq {
		return false
	}

	c.phase = PhaseIdle
	c.err = fmt.Sprintf("Failed to load comments: %s. Please check the URL and try again.", reason)
	return true
}

// Close discards the corpus and returns to idle. It is idempotent, and it
// bumps the fetch sequence so an in-flight corpus is dropped on arrival.
func (c *Controller) Close() {
	c.phase = PhaseIdle
	c.index = nil
	c.videoID = ""
	c.videoTitle = ""
	c.err = ""
	c.cursor = 0
	c.fetchSeq++
	clear(c.expanded)
}

// SetQuery updates the search string; the page and cursor reset with it.
func (c *Controller) SetQuery(q string) {
	if c.index == nil {
		return
	}
	c.index.SetQuery(q)
	c.cursor = 0
}

// NextPage advances one page when possible.
func (c *Controller) NextPage() {
	if c.index == nil {
		return
	}
	c.index.SetPage(c.index.Page() + 1)
	c.cursor = 0
}

// PrevPage goes back one page when possible.
func (c *Controller) PrevPage() {
	if c.index == nil {
		return
	}
	c.index.SetPage(c.index.Page() - 1)
	c.cursor = 0
}

// SetPage jumps to page n; out-of-range values are ignored by the index.
func (c *Controller) SetPage(n int) {
	if c.index == nil {
		return
	}
	c.index.SetPage(n)
	c.cursor = 0
}

// MoveUp moves the selection up within the current page.
func (c *Controller) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the selection down within the current page.
func (c *Controller) MoveDown() {
	if c.index == nil {
		return
	}
	if c.cursor < len(c.index.CurrentPage())-1 {
		c.cursor++
	}
}

// Cursor returns the selection offset within the current page.
func (c *Controller) Cursor() int { return c.cursor }

// Selected returns the currently selected comment, or nil when the page is
// empty.
func (c *Controller) Selected() *comments.Comment {
	if c.index == nil {
		return nil
	}
	page := c.index.CurrentPage()
	if c.cursor >= len(page) {
		return nil
	}
	return &page[c.cursor]
}

// ToggleReplies expands or collapses the selected comment's replies.
func (c *Controller) ToggleReplies() {
	sel := c.Selected()
	if sel == nil || len(sel.Replies) == 0 {
		return
	}
	c.expanded[sel.ID] = !c.expanded[sel.ID]
}

// Expanded reports whether a comment's replies are shown.
func (c *Controller) Expanded(commentID string) bool {
	return c.expanded[commentID]
}

// Promote builds the hand-off reference for the selected comment. It does
// not mutate exploration state. The second return is false when nothing is
// selected.
func (c *Controller) Promote() (string, bool) {
	sel := c.Selected()
	if sel == nil {
		return "", false
	}
	return handoff.Encode(sanitize.Clean(sel.DisplayText())), true
}
