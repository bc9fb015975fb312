package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles authentication-related HTTP requests
type Handler struct {
	authService *Service
	frontendURL string
}

// NewHandler creates a new Handler instance
func NewHandler(authService *Service, frontendURL string) *Handler {
	return &Handler{
		authService: authService,
		frontendURL: frontendURL,
	}
}

// RegisterRoutes registers authentication routes with the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/auth/google/login", h.handleLogin)
	e.GET("/auth/google/callback", h.handleCallback)
	e.GET("/auth/validate-session", h.handleValidateSession)
	e.DELETE("/auth/signout", h.handleSignOut)
	e.GET("/health", h.handleHealth)
}

// handleLogin initiates the Google OAuth flow
func (h *Handler) handleLogin(c echo.Context) error {
	sessionID := c.QueryParam("session_id")

	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "session_id is required",
		})
	}

	authURL, err := h.authService.InitiateOAuth(sessionID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// handleCallback processes the OAuth callback from Google
func (h *Handler) handleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	errorParam := c.QueryParam("error")

	// OAuth errors go back to the frontend for display
	if errorParam != "" {
		errorDescription := c.QueryParam("error_description")
		return c.Redirect(http.StatusTemporaryRedirect,
			h.frontendURL+"/login?error="+errorParam+"&error_description="+errorDescription)
	}

	if code == "" {
		return c.Redirect(http.StatusTemporaryRedirect,
			h.frontendURL+"/login?error=missing_code")
	}

	if state == "" {
		return c.Redirect(http.StatusTemporaryRedirect,
			h.frontendURL+"/login?error=missing_state")
	}

	token, err := h.authService.HandleCallback(code, state)
	if err != nil {
		return c.Redirect(http.StatusTemporaryRedirect,
			h.frontendURL+"/login?error=auth_failed&message="+err.Error())
	}

	return c.Redirect(http.StatusTemporaryRedirect,
		h.frontendURL+"/?signed_in=true&email="+token.Email)
}

// handleValidateSession checks if a session exists and carries a token
func (h *Handler) handleValidateSession(c echo.Context) error {
	sessionID := c.QueryParam("session_id")

	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "session_id is required",
		})
	}

	session, err := h.authService.GetSession(sessionID)
	if err != nil || !session.HasToken() {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"valid":         false,
			"requires_auth": true,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"valid":         true,
		"requires_auth": false,
		"email":         session.Token.Email,
	})
}

// handleSignOut drops the session
func (h *Handler) handleSignOut(c echo.Context) error {
	sessionID := c.QueryParam("session_id")

	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "session_id is required",
		})
	}

	h.authService.SignOut(sessionID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Successfully signed out",
	})
}

// handleHealth returns the health status of the backend service
func (h *Handler) handleHealth(c echo.Context) error {
	response := map[string]interface{}{
		"status":    "healthy",
		"sessions":  h.authService.GetSessionCount(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	return c.JSON(http.StatusOK, response)
}
