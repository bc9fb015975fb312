package cards

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hackboard-backend/pkg/models"
)

// Handler handles HTTP requests for card and hidden-state mutations
type Handler struct {
	service      *Service
	sessionStore models.SessionStore
}

// NewHandler creates a new cards handler
func NewHandler(service *Service, sessionStore models.SessionStore) *Handler {
	return &Handler{
		service:      service,
		sessionStore: sessionStore,
	}
}

// RegisterRoutes registers card routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/cards/hide", h.SetHidden)
	e.POST("/api/cards/custom", h.CreateCard)
	e.DELETE("/api/cards/custom", h.DeleteCard)
}

type setHiddenRequest struct {
	CardID string `json:"cardId"`
	Action string `json:"action"`
}

type createCardRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	FolderID string `json:"folderId,omitempty"`
}

// SetHidden handles POST /api/cards/hide
func (h *Handler) SetHidden(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return err
	}

	var req setHiddenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	ids, err := h.service.SetHidden(c.Request().Context(), req.CardID, req.Action)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"hiddenIds": ids,
	})
}

// CreateCard handles POST /api/cards/custom
func (h *Handler) CreateCard(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return err
	}

	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	card, err := h.service.AddCard(c.Request().Context(), req.Name, req.URL, req.MimeType, req.FolderID)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"card": card,
	})
}

// DeleteCard handles DELETE /api/cards/custom?id=
func (h *Handler) DeleteCard(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return err
	}

	cardList, err := h.service.DeleteCard(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"cards": cardList,
	})
}

// authorize rejects requests without a valid session token.
func (h *Handler) authorize(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		sessionID = c.Request().Header.Get("X-Session-ID")
	}
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "session_id is required")
	}

	if _, err := h.sessionStore.GetSessionToken(sessionID); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}
	return nil
}

func (h *Handler) errorResponse(c echo.Context, err error) error {
	if IsValidationError(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}
