// Package sanitize prepares raw comment markup for terminal display.
package sanitize

import (
	"regexp"
	"strings"
)

// Placeholder is returned when a comment carries no text at all.
const Placeholder = "Comment text not available."

// ReplyPlaceholder is the reply counterpart of Placeholder.
const ReplyPlaceholder = "Reply text not available."

var (
	anchorOpenRe  = regexp.MustCompile(`<a[^>]*>`)
	anchorCloseRe = regexp.MustCompile(`</a>`)
	lineBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// The five standard HTML entities, decoded after tag handling so that
// decoded angle brackets stay literal text.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Clean strips anchor tags (keeping their link text), converts <br> tags to
// newlines, and decodes the standard HTML entities. It is pure and never
// fails; empty input yields the Placeholder string.
func Clean(raw string) string {
	return clean(raw, Placeholder)
}

// CleanReply is Clean with the reply placeholder for empty input.
func CleanReply(raw string) string {
	return clean(raw, ReplyPlaceholder)
}

func clean(raw, placeholder string) string {
	if raw == "" {
		return placeholder
	}

	s := anchorOpenRe.ReplaceAllString(raw, "")
	s = anchorCloseRe.ReplaceAllString(s, "")
	s = lineBreakRe.ReplaceAllString(s, "\n")
	return entityReplacer.Replace(s)
}
