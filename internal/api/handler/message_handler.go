package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/core/ports"
)

type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /api/messages.
//
// @Summary      Send a chat message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      messageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  msgResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req messageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Send(c.Request().Context(), user.ID, req.Receiver, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// Conversation handles GET /api/messages/:userId.
//
// @Summary      Conversation with another user
// @Tags         messages
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string  true  "Peer user ID"
// @Success      200     {array}   domain.Message
// @Router       /api/messages/{userId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	msgs, err := h.service.Conversation(c.Request().Context(), user.ID, c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, msgs)
}
