package models

import (
	"time"
)

// Token represents a Google OAuth access token for a signed-in user.
type Token struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Scope       string `json:"scope,omitempty"`
}

// OAuthConfig holds the Google OAuth endpoints and client credentials.
type OAuthConfig struct {
	ClientID      string   `json:"client_id"`
	ClientSecret  string   `json:"client_secret"`
	RedirectURI   string   `json:"redirect_uri"`
	Scopes        []string `json:"scopes"`
	AuthURL       string   `json:"auth_url"`
	TokenURL      string   `json:"token_url"`
	UserInfoURL   string   `json:"user_info_url"`
	AllowedDomain string   `json:"allowed_domain"` // Workspace domain staff accounts must belong to
}

// UserSession represents a signed-in staff member's session.
type UserSession struct {
	SessionID    string    `json:"session_id"`
	Token        *Token    `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
}

// IsExpired checks if the session has expired (24-hour TTL)
func (s *UserSession) IsExpired() bool {
	return time.Since(s.LastAccessed) > 24*time.Hour
}

// UpdateLastAccessed updates the last accessed timestamp
func (s *UserSession) UpdateLastAccessed() {
	s.LastAccessed = time.Now()
}

// HasToken reports whether the session holds a usable access token.
func (s *UserSession) HasToken() bool {
	return s.Token != nil && s.Token.AccessToken != ""
}

// SessionStore interface for retrieving session tokens
type SessionStore interface {
	GetSessionToken(sessionID string) (*Token, error)
}
