package explore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubetui/tubetui/internal/core/comments"
	"github.com/tubetui/tubetui/internal/core/handoff"
)

func testCorpus(n int) []comments.Comment {
	out := make([]comments.Comment, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, comments.Comment{
			ID:           fmt.Sprintf("c%d", i),
			TextOriginal: fmt.Sprintf("comment %d", i),
		})
	}
	return out
}

func TestController_FetchLifecycle(t *testing.T) {
	t.Run("valid reference starts loading", func(t *testing.T) {
		c := NewController(10)

		id, seq, ok := c.StartFetch("https://youtu.be/dQw4w9WgXcQ")
		require.True(t, ok)
		assert.Equal(t, "dQw4w9WgXcQ", id)
		assert.Equal(t, PhaseLoading, c.Phase())
		assert.NotZero(t, seq)
	})

	t.Run("malformed reference stays idle with a validation error", func(t *testing.T) {
		c := NewController(10)

		_, _, ok := c.StartFetch("not a url")
		assert.False(t, ok)
		assert.Equal(t, PhaseIdle, c.Phase())
		assert.Equal(t, "Please enter a valid YouTube URL.", c.Err())
	})

	t.Run("fetch while loading is rejected", func(t *testing.T) {
		c := NewController(10)
		_, _, ok := c.StartFetch("dQw4w9WgXcQ")
		require.True(t, ok)

		_, _, ok = c.StartFetch("dQw4w9WgXcQ")
		assert.False(t, ok)
	})

	t.Run("loaded corpus begins browsing", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")

		require.True(t, c.Loaded(seq, testCorpus(3), "Some Video"))
		assert.Equal(t, PhaseBrowsing, c.Phase())
		assert.Equal(t, "Some Video", c.VideoTitle())
		require.NotNil(t, c.Index())
		assert.Equal(t, 3, c.Index().Len())
	})

	t.Run("empty corpus still browses", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")

		require.True(t, c.Loaded(seq, nil, ""))
		assert.Equal(t, PhaseBrowsing, c.Phase())
		assert.Nil(t, c.Selected())
	})

	t.Run("failure returns to idle with the reason embedded", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")

		require.True(t, c.LoadFailed(seq, "status 404"))
		assert.Equal(t, PhaseIdle, c.Phase())
		assert.Contains(t, c.Err(), "status 404")
	})

	t.Run("late corpus after close is dropped", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")
		c.Close()

		assert.False(t, c.Loaded(seq, testCorpus(3), ""))
		assert.Equal(t, PhaseIdle, c.Phase())
		assert.Nil(t, c.Index())
	})

	t.Run("close is idempotent and refetch reproduces browsing", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")
		require.True(t, c.Loaded(seq, testCorpus(5), "v"))

		c.Close()
		c.Close()
		assert.Equal(t, PhaseIdle, c.Phase())
		assert.Empty(t, c.Err())

		_, seq2, ok := c.StartFetch("dQw4w9WgXcQ")
		require.True(t, ok)
		require.True(t, c.Loaded(seq2, testCorpus(5), "v"))
		assert.Equal(t, PhaseBrowsing, c.Phase())
		assert.Equal(t, 5, c.Index().Len())
	})
}

func TestController_Browsing(t *testing.T) {
	browsing := func(t *testing.T, n int) *Controller {
		t.Helper()
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")
		require.True(t, c.Loaded(seq, testCorpus(n), ""))
		return c
	}

	t.Run("cursor moves within the page", func(t *testing.T) {
		c := browsing(t, 3)

		c.MoveDown()
		c.MoveDown()
		assert.Equal(t, "c3", c.Selected().ID)
		c.MoveDown() // clamped at the last row
		assert.Equal(t, "c3", c.Selected().ID)
		c.MoveUp()
		assert.Equal(t, "c2", c.Selected().ID)
	})

	t.Run("page change resets the cursor", func(t *testing.T) {
		c := browsing(t, 25)
		c.MoveDown()

		c.NextPage()
		assert.Equal(t, 2, c.Index().Page())
		assert.Equal(t, 0, c.Cursor())
		assert.Equal(t, "c11", c.Selected().ID)

		c.PrevPage()
		assert.Equal(t, "c1", c.Selected().ID)
	})

	t.Run("query narrows and resets cursor", func(t *testing.T) {
		c := browsing(t, 25)
		c.MoveDown()

		c.SetQuery("comment 2")
		assert.Equal(t, 0, c.Cursor())
		assert.Equal(t, "c2", c.Selected().ID)
	})

	t.Run("toggle replies only applies with replies present", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")
		corpus := []comments.Comment{
			{ID: "plain", TextOriginal: "no replies"},
			{ID: "threaded", TextOriginal: "has replies", Replies: []comments.Reply{{ID: "r1"}}},
		}
		require.True(t, c.Loaded(seq, corpus, ""))

		c.ToggleReplies()
		assert.False(t, c.Expanded("plain"))

		c.MoveDown()
		c.ToggleReplies()
		assert.True(t, c.Expanded("threaded"))
		c.ToggleReplies()
		assert.False(t, c.Expanded("threaded"))
	})

	t.Run("promote encodes the selected comment", func(t *testing.T) {
		c := NewController(10)
		_, seq, _ := c.StartFetch("dQw4w9WgXcQ")
		require.True(t, c.Loaded(seq, []comments.Comment{
			{ID: "a", TextDisplay: "why does this break?"},
		}, ""))

		ref, ok := c.Promote()
		require.True(t, ok)

		text, ok := handoff.Decode(ref)
		require.True(t, ok)
		assert.Equal(t, "why does this break? Help me to solve this problem", text)

		// Promotion does not change exploration state.
		assert.Equal(t, PhaseBrowsing, c.Phase())
		assert.Equal(t, "a", c.Selected().ID)
	})

	t.Run("promote with empty page fails", func(t *testing.T) {
		c := browsing(t, 0)
		_, ok := c.Promote()
		assert.False(t, ok)
	})
}
