package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
)

// ProductHandler maneja las consultas del catálogo y el checador de precios.
type ProductHandler struct {
	uc *pos.PriceCheckerUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *pos.PriceCheckerUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToProductResponses(products))
}

// Search godoc
// @Summary      Buscar productos por texto libre
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "Texto sobre código y nombre"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	products, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToProductResponses(products))
}

// GetByCode godoc
// @Summary      Verificar precio por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	p, err := h.uc.CheckByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}
