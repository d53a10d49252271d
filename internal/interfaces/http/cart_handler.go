package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
)

// CartHandler maneja las peticiones HTTP del carrito de caja.
type CartHandler struct {
	uc *pos.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *pos.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

func toCartJSON(view *pos.CartView) dto.CartResponse {
	return dto.ToCartResponse(view.Lines, view.Totals)
}

// View godoc
// @Summary      Estado del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(toCartJSON(h.uc.View()))
}

// AddItem godoc
// @Summary      Agregar producto por código
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Código, cantidad opcional y confirm_max"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quantity := decimal.Zero
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	view, err := h.uc.AddByCode(c.UserContext(), in.Code, quantity, in.ConfirmMax)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toCartJSON(view))
}

// AddBulk godoc
// @Summary      Agregar pesada a granel
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBulkRequest  true  "Código y gramos"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/bulk [post]
func (h *CartHandler) AddBulk(c *fiber.Ctx) error {
	var in dto.AddBulkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := h.uc.AddBulk(c.UserContext(), in.Code, in.Grams)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toCartJSON(view))
}

// UpdateLine godoc
// @Summary      Fijar cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Param        body  body  dto.UpdateLineRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{code} [put]
func (h *CartHandler) UpdateLine(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := h.uc.SetQuantity(code, in.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toCartJSON(view))
}

// RemoveLine godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{code} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	return c.JSON(toCartJSON(h.uc.Remove(c.Params("code"))))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(toCartJSON(h.uc.Clear()))
}
