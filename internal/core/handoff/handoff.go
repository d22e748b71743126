// Package handoff encodes a comment's text into a reference that seeds a new
// chat session's draft across a navigation boundary.
package handoff

import (
	"net/url"
	"strings"
)

// Scheme-like prefix for encoded references, so a reference is
// distinguishable from a plain message on the command line.
const prefix = "tubetui://ask?message="

// requestPhrase is appended to the promoted comment text so the seeded draft
// reads as a question.
const requestPhrase = " Help me to solve this problem"

// Encode builds a reference from a comment's display text. The text plus the
// fixed request phrase is percent-encoded into the message parameter.
func Encode(text string) string {
	return prefix + url.QueryEscape(text+requestPhrase)
}

// Decode extracts the draft text from a reference. The second return is false
// when ref is not a hand-off reference; decoding never partially succeeds.
func Decode(ref string) (string, bool) {
	encoded, ok := strings.CutPrefix(ref, prefix)
	if !ok {
		return "", false
	}
	text, err := url.QueryUnescape(encoded)
	if err != nil {
		return "", false
	}
	return text, true
}
