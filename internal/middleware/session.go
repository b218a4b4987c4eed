package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/moviebook/movie-seat-booking/internal/session"
	"github.com/moviebook/movie-seat-booking/internal/utils"
)

// SessionAuth returns an Echo middleware that validates a Bearer session
// token, looks the session up in the store and injects it into the request
// context.  The provided secret must match the one used when issuing
// tokens.  This middleware should wrap session-scoped routes so that
// handlers can access the active session via `c.Get("session")`.
func SessionAuth(secret string, store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		// The returned handler is invoked for each incoming HTTP request.
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header should start
			// with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Validate the token and recover the session ID it carries.
			sid, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// A valid token can outlive its session (server restart or an
			// explicit delete), so a store miss is reported separately.
			s, ok := store.Get(sid)
			if !ok {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
			}

			// Handlers access the session via c.Get("session").
			c.Set("session", s)
			return next(c)
		}
	}
}
