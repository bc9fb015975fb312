package thumbnail

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"hackboard-backend/pkg/models"
)

// ThumbnailSource streams a Drive thumbnail URL with the user's token.
type ThumbnailSource interface {
	GetThumbnailStream(ctx context.Context, thumbnailURL string, token *models.Token) (io.ReadCloser, error)
}

// Handler proxies Drive thumbnail links for the frontend. API-served
// thumbnailLink URLs require the bearer token, which the browser never sees.
type Handler struct {
	sessionStore models.SessionStore
	source       ThumbnailSource
}

// NewHandler creates a new thumbnail proxy handler
func NewHandler(sessionStore models.SessionStore, source ThumbnailSource) *Handler {
	return &Handler{
		sessionStore: sessionStore,
		source:       source,
	}
}

// RegisterRoutes registers thumbnail routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/thumbnail", h.GetThumbnail)
}

// GetThumbnail handles GET /thumbnail?session_id=&url=
func (h *Handler) GetThumbnail(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	thumbnailURL := c.QueryParam("url")

	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "session_id query parameter is required",
		})
	}

	if thumbnailURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "url query parameter is required",
		})
	}

	token, err := h.sessionStore.GetSessionToken(sessionID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "not authorized",
		})
	}

	stream, err := h.source.GetThumbnailStream(c.Request().Context(), thumbnailURL, token)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "failed to fetch thumbnail",
		})
	}
	defer stream.Close()

	// Thumbnails are immutable per URL, let the browser cache them
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Stream(http.StatusOK, "image/jpeg", stream)
}
