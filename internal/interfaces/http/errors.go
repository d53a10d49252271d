// Package http expone la API del punto de venta sobre Fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// respondDomainError traduce los errores del dominio al contrato HTTP. Todos
// los handlers de caja comparten la misma taxonomía, por eso el mapeo vive en
// un solo lugar.
func respondDomainError(c *fiber.Ctx, err error) error {
	var exceeds *domain.QuantityExceedsStockError
	if errors.As(err, &exceeds) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "QUANTITY_EXCEEDS_STOCK", Message: err.Error(), Available: &exceeds.Available,
		})
	}
	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: err.Error(), Available: &insuf.AvailableKg,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrLineNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LINE_NOT_FOUND", Message: "la línea no está en el carrito"})
	case errors.Is(err, domain.ErrOutOfStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "producto sin stock"})
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_IN_PROGRESS", Message: "hay un cobro en curso"})
	case errors.Is(err, domain.ErrWeightRequired):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "WEIGHT_REQUIRED", Message: "el producto se vende a granel, indique los gramos"})
	case errors.Is(err, domain.ErrInvalidWeight):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WEIGHT", Message: "los gramos deben ser mayores a cero"})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
