package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"autonomax/internal/domain/service"
)

// KeyUser is where the authentication middleware stores the caller's claims.
const KeyUser ContextKey = "user"

// SetUser stores the validated claims of the caller.
func SetUser(c echo.Context, claims *service.UserClaims) {
	c.Set(string(KeyUser), claims)
}

// GetUser returns the caller's claims, if the request was authenticated.
func GetUser(c echo.Context) (*service.UserClaims, bool) {
	claims, ok := c.Get(string(KeyUser)).(*service.UserClaims)

	return claims, ok && claims != nil
}

// GetUserID returns the caller's user ID, if the request was authenticated.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetUser(c)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}
