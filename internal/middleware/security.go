package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig returns CORS middleware allowing only the configured frontend
// origin.
func CORSConfig(frontendURL string) echo.MiddlewareFunc {
	allowedOrigins := []string{frontendURL}
	if strings.Contains(frontendURL, "localhost") {
		// Local dev frontends move between ports
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:4200")
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	})
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(frontendURL string) echo.MiddlewareFunc {
	csp := "default-src 'none'; frame-ancestors 'self'"
	if frontendURL != "" && !strings.Contains(frontendURL, "localhost") {
		csp = "default-src 'none'; frame-ancestors " + frontendURL
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-Content-Type-Options", "nosniff")
			c.Response().Header().Set("X-Frame-Options", "SAMEORIGIN")
			c.Response().Header().Set("X-XSS-Protection", "1; mode=block")
			c.Response().Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			c.Response().Header().Set("Content-Security-Policy", csp)
			c.Response().Header().Set("Permissions-Policy",
				"geolocation=(), microphone=(), camera=(), payment=(), usb=(), magnetometer=(), gyroscope=()")

			// HSTS only for HTTPS requests (direct or via proxy)
			proto := c.Request().Header.Get("X-Forwarded-Proto")
			if proto == "https" || strings.HasPrefix(c.Request().URL.String(), "https://") {
				c.Response().Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			}

			return next(c)
		}
	}
}
