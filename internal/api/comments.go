package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubetui/tubetui/internal/core/comments"
)

// Corpus is the comment retrieval service's response for one video.
type Corpus struct {
	Comments      []comments.Comment `json:"comments"`
	TotalCount    int                `json:"total_count"`
	NextPageToken string             `json:"next_page_token,omitempty"`
	VideoID       string             `json:"video_id"`
	VideoTitle    string             `json:"video_title,omitempty"`
}

// CommentsClient fetches comment corpora from the retrieval service.
type CommentsClient struct {
	baseURL string
	http    *http.Client
}

// NewCommentsClient creates a client against the service at baseURL.
func NewCommentsClient(baseURL string, timeout time.Duration) *CommentsClient {
	return &CommentsClient{
		baseURL: baseURL,
		http:    newHTTPClient(timeout),
	}
}

// Fetch retrieves the full comment corpus for videoID. Any non-success status
// is a hard failure for the attempt.
func (c *CommentsClient) Fetch(ctx context.Context, videoID string) (Corpus, error) {
	url := joinURL(c.baseURL, "api/v1/comments", videoID, "all")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Corpus{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Corpus{}, fmt.Errorf("fetch comments: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("close comments response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Corpus{}, &StatusError{Status: resp.StatusCode, Text: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Corpus{}, fmt.Errorf("read comments body: %w", err)
	}

	var corpus Corpus
	if err := json.Unmarshal(body, &corpus); err != nil {
		return Corpus{}, fmt.Errorf("decode comments: %w", err)
	}

	log.Debug().
		Str("video_id", videoID).
		Int("comments", len(corpus.Comments)).
		Msg("fetched comment corpus")
	return corpus, nil
}
