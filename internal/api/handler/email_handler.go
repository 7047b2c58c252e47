package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

// EmailHandler exposes the mail transport to authenticated clients.
type EmailHandler struct {
	mailer ports.Mailer
}

func NewEmailHandler(mailer ports.Mailer) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

// Send handles POST /api/email.
//
// @Summary      Send an email
// @Tags         email
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      emailRequest  true  "Email"
// @Success      200   {object}  msgResponse
// @Failure      502   {object}  msgResponse
// @Failure      503   {object}  msgResponse
// @Router       /api/email [post]
func (h *EmailHandler) Send(c echo.Context) error {
	var req emailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.mailer.Send(c.Request().Context(), domain.Email{
		To:      []string{req.To},
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "Email sent"})
}
