package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
)

// Authorize is the role authorization gate. The permitted role set is fixed at
// route registration time. It must run after Auth.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}
			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("role_denied").Inc()
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("User role '%s' is not authorized to access this route", user.Role))
			}
			return next(c)
		}
	}
}
