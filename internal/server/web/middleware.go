package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/auth"
)

const userIDContextKey = "userID"

// authMiddleware verifies the Bearer access token and stashes the owner id in
// the request context. Every core operation below receives the owner id
// explicitly; nothing reads ambient auth state.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing token"})
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil || userID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

func ownerID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

// jsonError maps service errors to HTTP statuses. Internal details are never
// echoed back to the client.
func (s *Server) jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidReference):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
