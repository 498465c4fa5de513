package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
)

// currentUser extracts the identity attached by the Auth middleware. A missing
// identity on a protected route means the middleware chain is miswired, so the
// handler fails fast with 401 rather than proceeding unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, nil
}
