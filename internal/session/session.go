// Package session implements opaque-token browser sessions. The token
// travels in a cookie; all state (bound user, pending flash notices)
// lives server-side in the Store. Signing in destroys the previous
// session and issues a fresh token, so an old cookie can never resolve
// to the new user.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// ErrNotFound is returned when a token is unknown or has expired.
var ErrNotFound = errors.New("session not found")

// Data is the server-side state bound to one session token.
// UserID is zero while the session is anonymous.
type Data struct {
	Token  string
	UserID uint64
}

// Store persists session state. Implementations must treat tokens as
// opaque and expire entries after the configured TTL.
type Store interface {
	// Create issues a new anonymous session and returns its token.
	Create(ctx context.Context) (string, error)
	// Get resolves a token to its session data or ErrNotFound.
	Get(ctx context.Context, token string) (Data, error)
	// SetUser binds a user id to an existing session.
	SetUser(ctx context.Context, token string, userID uint64) error
	// AddFlash appends a one-shot notice to the session.
	AddFlash(ctx context.Context, token, message string) error
	// PopFlashes returns and clears all pending notices.
	PopFlashes(ctx context.Context, token string) ([]string, error)
	// Destroy removes the session and all its state.
	Destroy(ctx context.Context, token string) error
}

// Cookie builds the browser cookie carrying a session token. The
// cookie itself has no max-age; the server-side TTL bounds the session
// lifetime.
func Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that instructs the browser to drop the
// session token immediately.
func ExpiredCookie() *http.Cookie {
	c := Cookie("")
	c.MaxAge = -1
	return c
}

// NewToken returns a cryptographically random 64-character hex token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
