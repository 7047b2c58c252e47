package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

type RestockHandler struct {
	service ports.RestockService
}

func NewRestockHandler(service ports.RestockService) *RestockHandler {
	return &RestockHandler{service: service}
}

// Create handles POST /api/restocks. The requester is the authenticated user.
//
// @Summary      Request a restock
// @Tags         restocks
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      restockRequest  true  "Restock request"
// @Success      201   {object}  domain.Restock
// @Failure      400   {object}  msgResponse
// @Failure      404   {object}  msgResponse
// @Router       /api/restocks [post]
func (h *RestockHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req restockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	restock, err := h.service.Request(c.Request().Context(), ports.RestockInput{
		ItemID:      req.ItemID,
		Quantity:    req.Quantity,
		Supplier:    req.Supplier,
		RequestedBy: user.ID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, restock)
}

// List handles GET /api/restocks.
//
// @Summary      List restocks
// @Tags         restocks
// @Produce      json
// @Security     TokenAuth
// @Param        status  query     string  false  "pending or received"
// @Success      200     {array}   domain.Restock
// @Router       /api/restocks [get]
func (h *RestockHandler) List(c echo.Context) error {
	status := domain.RestockStatus(c.QueryParam("status"))
	switch status {
	case "", domain.RestockPending, domain.RestockReceived:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: pending received")
	}

	restocks, err := h.service.List(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, restocks)
}

// Receive handles POST /api/restocks/:id/receive.
//
// @Summary      Mark a restock as received
// @Tags         restocks
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Restock ID"
// @Success      200  {object}  domain.Restock
// @Failure      404  {object}  msgResponse
// @Failure      409  {object}  msgResponse
// @Router       /api/restocks/{id}/receive [post]
func (h *RestockHandler) Receive(c echo.Context) error {
	restock, err := h.service.Receive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, restock)
}
