package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/handicraft/inventory-api/internal/core/ports"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// List handles GET /api/inventory.
//
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Security     TokenAuth
// @Param        category   query     string  false  "Filter by category"
// @Param        low_stock  query     bool    false  "Only items below their reorder level"
// @Success      200        {array}   domain.InventoryItem
// @Failure      401        {object}  msgResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	filter := ports.InventoryFilter{Category: c.QueryParam("category")}
	if raw := c.QueryParam("low_stock"); raw != "" {
		lowStock, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "low_stock must be a boolean")
		}
		filter.LowStock = lowStock
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/inventory/:id.
//
// @Summary      Get an inventory item
// @Tags         inventory
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  msgResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/inventory.
//
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      itemRequest  true  "Item"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  msgResponse
// @Failure      409   {object}  msgResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), toItemInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/inventory/:id.
//
// @Summary      Replace an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string       true  "Item ID"
// @Param        body  body      itemRequest  true  "Item"
// @Success      200   {object}  domain.InventoryItem
// @Failure      404   {object}  msgResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), toItemInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Adjust handles POST /api/inventory/:id/adjust.
//
// @Summary      Adjust stock level
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string         true  "Item ID"
// @Param        body  body      adjustRequest  true  "Signed quantity delta"
// @Success      200   {object}  domain.InventoryItem
// @Failure      409   {object}  msgResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c echo.Context) error {
	var req adjustRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Adjust(c.Request().Context(), c.Param("id"), req.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/:id. Admin only.
//
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  msgResponse
// @Failure      403  {object}  msgResponse
// @Failure      404  {object}  msgResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "Item removed"})
}

func toItemInput(r itemRequest) ports.ItemInput {
	return ports.ItemInput{
		Name:         r.Name,
		SKU:          r.SKU,
		Category:     r.Category,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		ReorderLevel: r.ReorderLevel,
	}
}
