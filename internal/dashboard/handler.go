package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hackboard-backend/pkg/models"
)

// Handler handles HTTP requests for the assembled dashboard view
type Handler struct {
	service      *Service
	sessionStore models.SessionStore
}

// NewHandler creates a new dashboard handler
func NewHandler(service *Service, sessionStore models.SessionStore) *Handler {
	return &Handler{
		service:      service,
		sessionStore: sessionStore,
	}
}

// RegisterRoutes registers dashboard routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/dashboard", h.GetDashboard)
}

// GetDashboard handles GET /api/dashboard?session_id=&show_hidden=
func (h *Handler) GetDashboard(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "session_id is required",
		})
	}

	token, err := h.sessionStore.GetSessionToken(sessionID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "not authorized",
		})
	}

	showHidden := c.QueryParam("show_hidden") == "true"

	view, err := h.service.BuildView(c.Request().Context(), token, showHidden)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, view)
}
