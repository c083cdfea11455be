package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrNoAuthenticatedUser is returned when the request context carries no
// verified token. It should not occur behind the JWT middleware.
var ErrNoAuthenticatedUser = errors.New("no authenticated user in context")

// UserIDFromContext extracts the authenticated user id from the JWT
// middleware's verified token.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrNoAuthenticatedUser
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return uuid.Nil, ErrNoAuthenticatedUser
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrNoAuthenticatedUser
	}
	return userID, nil
}
