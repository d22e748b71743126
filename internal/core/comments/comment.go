// Package comments defines the comment corpus model and the derived
// search/pagination index over it.
package comments

import "time"

// Author identifies who wrote a comment or reply.
type Author struct {
	DisplayName     string `json:"display_name"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ChannelURL      string `json:"channel_url,omitempty"`
	ChannelID       string `json:"channel_id,omitempty"`
}

// Reply is a single nested reply. Replies never nest further.
type Reply struct {
	ID           string     `json:"id"`
	TextDisplay  string     `json:"text_display,omitempty"`
	TextOriginal string     `json:"text_original,omitempty"`
	LikeCount    int64      `json:"like_count"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Author       Author     `json:"author"`
}

// Comment is one top-level comment with its ordered replies. Comments are
// immutable once fetched; views over them are derived, never mutated in place.
type Comment struct {
	ID           string     `json:"id"`
	TextDisplay  string     `json:"text_display,omitempty"`
	TextOriginal string     `json:"text_original,omitempty"`
	LikeCount    int64      `json:"like_count"`
	ReplyCount   int64      `json:"reply_count"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	Author       Author     `json:"author"`
	Replies      []Reply    `json:"replies,omitempty"`
	VideoID      string     `json:"video_id,omitempty"`
}

// DisplayText resolves the text variant to show: the rendered-safe form when
// present, otherwise the original raw form.
func (c Comment) DisplayText() string {
	if c.TextDisplay != "" {
		return c.TextDisplay
	}
	return c.TextOriginal
}

// DisplayText resolves the reply's text with the same fallback chain as Comment.
func (r Reply) DisplayText() string {
	if r.TextDisplay != "" {
		return r.TextDisplay
	}
	return r.TextOriginal
}

// AuthorName returns the display name without any leading "@", or "Anonymous"
// when the author carries no name.
func (a Author) AuthorName() string {
	if a.DisplayName == "" {
		return "Anonymous"
	}
	if a.DisplayName[0] == '@' {
		return a.DisplayName[1:]
	}
	return a.DisplayName
}

// FormatPublished renders a timestamp for display; absent timestamps render
// as "N/A".
func FormatPublished(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}
