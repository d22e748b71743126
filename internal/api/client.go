// Package api provides the HTTP clients for the backend collaborators: the
// comment retrieval service, the answering service, and the authentication
// service. Each client makes a single attempt per call; retry policy belongs
// to the user, not this layer.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const userAgent = "tubetui"

// StatusError is returned when a request completed but the service answered
// with a non-success status.
type StatusError struct {
	Status int
	Text   string
}

func (e *StatusError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Text)
	}
	return fmt.Sprintf("status %d", e.Status)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func joinURL(base string, parts ...string) string {
	u := strings.TrimRight(base, "/")
	for _, p := range parts {
		u += "/" + strings.Trim(p, "/")
	}
	return u
}
