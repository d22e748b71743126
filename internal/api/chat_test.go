package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatClient_Ask(t *testing.T) {
	t.Run("returns the answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chat/ask", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "hello", req["question"])

			_, _ = w.Write([]byte(`{"answer": "hi", "status": "success"}`))
		}))
		defer srv.Close()

		client := NewChatClient(srv.URL, 5*time.Second)
		answer, err := client.Ask(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "hi", answer)
	})

	t.Run("service error surfaces as text, not error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
		}))
		defer srv.Close()

		client := NewChatClient(srv.URL, 5*time.Second)
		answer, err := client.Ask(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, "Internal server error", answer)
	})

	t.Run("falls back to the default answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewChatClient(srv.URL, 5*time.Second)
		answer, err := client.Ask(context.Background(), "q")
		require.NoError(t, err)
		assert.Equal(t, DefaultAnswer, answer)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		client := NewChatClient("http://127.0.0.1:1", time.Second)
		_, err := client.Ask(context.Background(), "q")
		assert.Error(t, err)
	})

	t.Run("undecodable body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
		}))
		defer srv.Close()

		client := NewChatClient(srv.URL, 5*time.Second)
		_, err := client.Ask(context.Background(), "q")
		assert.Error(t, err)
	})
}
