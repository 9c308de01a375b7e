package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoIdentity is returned when a handler runs without an authenticated
// identity in its context, which means the JWT middleware was bypassed.
var ErrNoIdentity = errors.New("no authenticated user in request context")

// UserIDFromContext extracts the authenticated user id placed in the echo
// context by the JWT middleware. Handlers receive identity through this
// typed accessor only; nothing is attached to the request itself.
func UserIDFromContext(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, ErrNoIdentity
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return 0, ErrNoIdentity
	}
	return claims.UserID, nil
}
