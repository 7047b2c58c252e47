package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

// msgResponse is the envelope every handler uses: {"msg": "<message>"}.
type msgResponse struct {
	Msg string `json:"msg"`
}

// respondError renders known domain errors with their client-facing message.
// Anything else is returned untouched so the central error handler logs it
// and answers 500.
func respondError(c echo.Context, err error) error {
	status, msg, ok := resolveDomainError(err)
	if !ok {
		return err
	}
	return c.JSON(status, msgResponse{Msg: msg})
}

func resolveDomainError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid Credentials", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied", true

	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found", true
	case errors.Is(err, domain.ErrInvalidItem), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrDuplicateSKU):
		return http.StatusConflict, "SKU already exists", true
	case errors.Is(err, domain.ErrInsufficientItem):
		return http.StatusConflict, "Not enough stock", true

	case errors.Is(err, domain.ErrRestockNotFound):
		return http.StatusNotFound, "Restock not found", true
	case errors.Is(err, domain.ErrRestockAlreadyReceived):
		return http.StatusConflict, "Restock already received", true

	case errors.Is(err, domain.ErrInvalidMessage):
		return http.StatusBadRequest, "Invalid message", true

	case errors.Is(err, domain.ErrMailerNotConfigured):
		return http.StatusServiceUnavailable, "Email service not configured", true
	case errors.Is(err, domain.ErrMailDelivery):
		return http.StatusBadGateway, "Failed to send email", true
	}
	return 0, "", false
}
