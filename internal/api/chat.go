package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultAnswer is used when the answering service returns neither an answer
// nor an error message.
const DefaultAnswer = "Sorry, something went wrong."

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChatClient talks to the answering service.
type ChatClient struct {
	baseURL string
	http    *http.Client
}

// NewChatClient creates a client against the service at baseURL.
func NewChatClient(baseURL string, timeout time.Duration) *ChatClient {
	return &ChatClient{
		baseURL: baseURL,
		http:    newHTTPClient(timeout),
	}
}

// Ask sends question to the answering service and returns the reply text.
// Whenever an HTTP exchange completes with a decodable body the reply is
// resolved answer -> error -> DefaultAnswer, so service-reported failures
// surface through the returned text with a nil error. A non-nil error means
// the exchange itself failed (transport failure).
func (c *ChatClient) Ask(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}

	url := joinURL(c.baseURL, "api/chat/ask")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ask question: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("close ask response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ask body: %w", err)
	}

	var ar askResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return "", fmt.Errorf("decode ask response: %w", err)
	}

	switch {
	case ar.Answer != "":
		return ar.Answer, nil
	case ar.Error != "":
		log.Debug().Str("error", ar.Error).Msg("answering service reported an error")
		return ar.Error, nil
	default:
		return DefaultAnswer, nil
	}
}
