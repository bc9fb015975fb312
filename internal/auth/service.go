package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hackboard-backend/internal/config"
	"hackboard-backend/pkg/models"
)

// Service handles the Google OAuth flow and session tracking for the
// dashboard. Only corporate Workspace accounts are allowed in: the auth
// request carries the hd hint and the callback re-checks the email domain
// server-side, since hd alone is advisory.
type Service struct {
	store      *MemoryStore
	httpClient *http.Client
	oauth      *models.OAuthConfig
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		store:      NewMemoryStore(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		oauth: &models.OAuthConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURI:  cfg.GoogleRedirectURI,
			Scopes: []string{
				"openid",
				"email",
				"profile",
				"https://www.googleapis.com/auth/drive.readonly",
			},
			AuthURL:       "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:      "https://oauth2.googleapis.com/token",
			UserInfoURL:   "https://www.googleapis.com/oauth2/v2/userinfo",
			AllowedDomain: cfg.AllowedEmailDomain,
		},
	}
}

// InitiateOAuth starts the OAuth flow, returning the Google auth URL.
func (s *Service) InitiateOAuth(sessionID string) (string, error) {
	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" {
		return "", errors.New("google OAuth configuration incomplete")
	}

	oauthState, err := s.store.GenerateState(sessionID)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Add("client_id", s.oauth.ClientID)
	params.Add("redirect_uri", s.oauth.RedirectURI)
	params.Add("response_type", "code")
	params.Add("scope", strings.Join(s.oauth.Scopes, " "))
	params.Add("state", oauthState.State)
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	if s.oauth.AllowedDomain != "" {
		params.Add("hd", s.oauth.AllowedDomain)
	}

	return s.oauth.AuthURL + "?" + params.Encode(), nil
}

// HandleCallback validates the CSRF state, exchanges the code for a token,
// fetches the user's email and stores the session. Accounts outside the
// allowed domain are rejected.
func (s *Service) HandleCallback(code, state string) (*models.Token, error) {
	oauthState, err := s.store.ValidateState(state)
	if err != nil {
		return nil, err
	}

	defer s.store.DeleteState(state)

	token, err := s.exchangeCodeForToken(code)
	if err != nil {
		return nil, err
	}

	email, err := s.fetchUserEmail(token.AccessToken)
	if err != nil {
		return nil, err
	}
	token.Email = email

	if s.oauth.AllowedDomain != "" && !strings.HasSuffix(email, "@"+s.oauth.AllowedDomain) {
		return nil, fmt.Errorf("account %s is not part of the %s workspace", email, s.oauth.AllowedDomain)
	}

	session, err := s.store.GetSession(oauthState.SessionID)
	if err != nil {
		session = &models.UserSession{
			SessionID: oauthState.SessionID,
		}
	}

	session.Token = token

	if err := s.store.StoreSession(session); err != nil {
		return nil, err
	}

	return token, nil
}

// exchangeCodeForToken exchanges authorization code for access token
func (s *Service) exchangeCodeForToken(code string) (*models.Token, error) {
	data := url.Values{}
	data.Set("client_id", s.oauth.ClientID)
	data.Set("client_secret", s.oauth.ClientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.oauth.RedirectURI)

	req, err := http.NewRequest("POST", s.oauth.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status: %d", resp.StatusCode)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		Scope       string `json:"scope"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, err
	}

	return &models.Token{
		AccessToken: tokenResponse.AccessToken,
		Scope:       tokenResponse.Scope,
	}, nil
}

// fetchUserEmail resolves the signed-in user's email via the userinfo endpoint.
func (s *Service) fetchUserEmail(accessToken string) (string, error) {
	req, err := http.NewRequest("GET", s.oauth.UserInfoURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo request failed with status: %d", resp.StatusCode)
	}

	var userInfo struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", err
	}
	if userInfo.Email == "" {
		return "", errors.New("userinfo response contained no email")
	}

	return userInfo.Email, nil
}

// GetSessionToken retrieves the access token for a session, implementing
// models.SessionStore for the other handlers.
func (s *Service) GetSessionToken(sessionID string) (*models.Token, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasToken() {
		return nil, errors.New("session has no token")
	}
	return session.Token, nil
}

// GetSession retrieves a session by ID.
func (s *Service) GetSession(sessionID string) (*models.UserSession, error) {
	return s.store.GetSession(sessionID)
}

// SignOut drops the session entirely. Unknown sessions are fine.
func (s *Service) SignOut(sessionID string) {
	s.store.DeleteSession(sessionID)
}

// GetSessionCount returns the number of live sessions, for the health check.
func (s *Service) GetSessionCount() int {
	return s.store.SessionCount()
}
