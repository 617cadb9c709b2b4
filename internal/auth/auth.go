// Package auth builds the authenticated HTTP client the classroom provider
// uses. Installed-app OAuth flow: the token obtained once via the consent
// URL is cached in a JSON file and refreshed transparently from then on.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes are the read-only classroom scopes plus drive.readonly for attached
// material downloads.
var Scopes = []string{
	"https://www.googleapis.com/auth/classroom.courses.readonly",
	"https://www.googleapis.com/auth/classroom.coursework.me.readonly",
	"https://www.googleapis.com/auth/classroom.courseworkmaterials.readonly",
	"https://www.googleapis.com/auth/classroom.student-submissions.me.readonly",
	"https://www.googleapis.com/auth/classroom.rosters.readonly",
	"https://www.googleapis.com/auth/drive.readonly",
}

// OAuthConfig assembles the oauth2 config for the installed-app flow.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost:8085/callback",
		Scopes:       Scopes,
	}
}

// Client returns an *http.Client that injects and auto-refreshes the cached
// token. Refreshed tokens are written back to tokenFile so the refresh
// survives restarts.
func Client(ctx context.Context, cfg *oauth2.Config, tokenFile string) (*http.Client, error) {
	tok, err := LoadToken(tokenFile)
	if err != nil {
		return nil, err
	}

	src := cfg.TokenSource(ctx, tok)
	return oauth2.NewClient(ctx, &savingSource{
		src:  src,
		file: tokenFile,
		last: tok.AccessToken,
	}), nil
}

// LoadToken reads a previously stored token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("auth: read token %s: %w (run 'classroom-sync login' first)", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("auth: parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken persists a token with user-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("auth: marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("auth: write token %s: %w", path, err)
	}
	return nil
}

// savingSource wraps a TokenSource and writes refreshed tokens back to disk.
// oauth2.Transport calls Token from every request goroutine, so last is
// guarded by a mutex.
type savingSource struct {
	src  oauth2.TokenSource
	file string

	mu   sync.Mutex
	last string
}

func (s *savingSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		// Best effort: a failed save means re-auth after expiry, not a
		// broken request.
		_ = SaveToken(s.file, tok)
	}
	return tok, nil
}
