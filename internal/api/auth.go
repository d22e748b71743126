package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/tubetui/tubetui/internal/core/auth"
)

const tokenFileName = "auth.json"

type authRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type authResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// tokenCache is the on-disk shape of the cached session. The cache belongs to
// this collaborator; nothing else in the app persists state.
type tokenCache struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthClient implements auth.Provider against the authentication service,
// caching the issued token in the data directory.
type AuthClient struct {
	baseURL string
	dataDir string
	http    *http.Client
}

var _ auth.Provider = (*AuthClient)(nil)

// NewAuthClient creates a client against the service at baseURL, caching
// tokens under dataDir.
func NewAuthClient(baseURL, dataDir string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		dataDir: dataDir,
		http:    newHTTPClient(timeout),
	}
}

// Login authenticates with the given credentials and caches the session.
func (c *AuthClient) Login(ctx context.Context, creds auth.Credentials) (auth.Snapshot, error) {
	return c.authenticate(ctx, "login", authRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
}

// Signup registers a new account and caches the session.
func (c *AuthClient) Signup(ctx context.Context, data auth.SignupData) (auth.Snapshot, error) {
	return c.authenticate(ctx, "signup", authRequest{
		Email:     data.Email,
		Password:  data.Password,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	})
}

func (c *AuthClient) authenticate(ctx context.Context, endpoint string, reqBody authRequest) (auth.Snapshot, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return auth.Snapshot{}, fmt.Errorf("encode request: %w", err)
	}

	url := joinURL(c.baseURL, "api/auth", endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return auth.Snapshot{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return auth.Snapshot{}, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("close auth response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return auth.Snapshot{}, fmt.Errorf("read %s body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return auth.Snapshot{}, &StatusError{Status: resp.StatusCode, Text: string(body)}
	}

	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return auth.Snapshot{}, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	if ar.Token == "" {
		return auth.Snapshot{}, errors.New("auth service returned no token")
	}

	cache := tokenCache{
		Token:     ar.Token,
		Email:     ar.Email,
		FirstName: ar.FirstName,
		LastName:  ar.LastName,
	}
	if err := c.writeCache(cache); err != nil {
		log.Warn().Err(err).Msg("failed to cache auth token")
	}

	return snapshotFrom(cache), nil
}

// Logout removes the cached session. It is idempotent.
func (c *AuthClient) Logout() error {
	err := os.Remove(c.tokenPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token cache: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a cached token exists and has not expired.
// The token is parsed unverified: signature checking is the backend's job,
// this only gates UI affordances on the exp claim. An expired or unreadable
// token clears the cache.
func (c *AuthClient) IsAuthenticated() bool {
	cache, err := c.readCache()
	if err != nil || cache.Token == "" {
		return false
	}

	token, _, err := jwt.NewParser().ParseUnverified(cache.Token, jwt.MapClaims{})
	if err != nil {
		c.discardCache()
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil || exp.Before(time.Now()) {
		c.discardCache()
		return false
	}
	return true
}

// Snapshot returns the current read-only authentication view.
func (c *AuthClient) Snapshot() auth.Snapshot {
	if !c.IsAuthenticated() {
		return auth.Anonymous()
	}
	cache, err := c.readCache()
	if err != nil {
		return auth.Anonymous()
	}
	return snapshotFrom(cache)
}

func snapshotFrom(cache tokenCache) auth.Snapshot {
	return auth.Snapshot{
		LoggedIn:  true,
		Email:     cache.Email,
		FirstName: cache.FirstName,
		LastName:  cache.LastName,
	}
}

func (c *AuthClient) tokenPath() string {
	return filepath.Join(c.dataDir, tokenFileName)
}

func (c *AuthClient) readCache() (tokenCache, error) {
	data, err := os.ReadFile(c.tokenPath())
	if err != nil {
		return tokenCache{}, err
	}
	var cache tokenCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return tokenCache{}, err
	}
	return cache, nil
}

func (c *AuthClient) writeCache(cache tokenCache) error {
	if err := os.MkdirAll(c.dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(c.tokenPath(), data, 0o600)
}

func (c *AuthClient) discardCache() {
	if err := os.Remove(c.tokenPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Debug().Err(err).Msg("failed to discard token cache")
	}
}
