package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "autonomax/internal/delivery/context"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/service"
	"autonomax/internal/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the token and stores the caller's claims. Every
// failure answers the same 401; only the log tells them apart.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			logger.Info("Rejected request without bearer token")

			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.Validate(strings.TrimSpace(token))
		if err != nil {
			logger.Info("Rejected bearer token", slog.String("reason", tokenFailure(err)))

			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetUser(c, claims)

		return next(c)
	}
}

func tokenFailure(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
