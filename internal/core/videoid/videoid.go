// Package videoid resolves user-supplied video references to canonical IDs.
package videoid

import (
	"errors"
	"regexp"
)

// ErrInvalid is returned when a reference matches none of the known URL shapes.
var ErrInvalid = errors.New("not a recognizable YouTube URL or video ID")

// Known URL shapes: watch?v=, embed/, v/ and the youtu.be short form.
var urlRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)([\w-]{11})`)

// A bare 11-character ID is accepted as-is.
var bareIDRe = regexp.MustCompile(`^[\w-]{11}$`)

// Extract resolves ref to an 11-character video ID. It performs no network
// access; a failure means the user must correct their input.
func Extract(ref string) (string, error) {
	if bareIDRe.MatchString(ref) {
		return ref, nil
	}
	if m := urlRe.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	return "", ErrInvalid
}
