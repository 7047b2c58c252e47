package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/api/middleware"
	"github.com/handicraft/inventory-api/internal/core/domain"
)

// currentUser returns the identity the auth gate attached to the request.
// A missing identity means the route was registered without the gate.
func currentUser(c echo.Context) (*domain.AuthUser, error) {
	user, ok := middleware.UserFrom(c)
	if !ok || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
	}
	return user, nil
}
