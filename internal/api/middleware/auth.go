package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
	"github.com/bloghub/blog-api/internal/core/token"
)

// UserContextKey is the echo context key holding the authenticated *domain.User.
const UserContextKey = "user"

// TokenCookieName is the cookie checked when no Authorization header is sent.
const TokenCookieName = "token"

// Auth is the authentication gate. It locates a credential in the
// Authorization header (Bearer) or the token cookie, verifies it, resolves the
// user record and attaches it to the request context.
//
// All credential failures (missing, malformed, bad signature, expired) map to
// one generic 401 so the response does not reveal why verification failed; the
// specific reason is logged. A valid credential whose subject no longer exists
// maps to 404, which tells the client to discard the token.
func Auth(codec *token.Codec, users ports.UserRepository, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential := extractToken(c)
			if credential == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			userID, err := codec.Verify(credential)
			if err != nil {
				logger.Debug().Err(err).Str("path", c.Path()).Msg("credential rejected")
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_gone").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "User not found")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// extractToken returns the credential from the Authorization header, falling
// back to the token cookie. A Bearer header wins when both are present; any
// other header scheme is ignored and the cookie is still consulted.
func extractToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
