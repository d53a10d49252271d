package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// SaleHandler maneja el cobro y la consulta de ventas.
type SaleHandler struct {
	checkout  *pos.CheckoutCoordinator
	receiptUC *pos.ReceiptUseCase
	saleRepo  repository.SaleRepository
}

// NewSaleHandler construye el handler.
func NewSaleHandler(checkout *pos.CheckoutCoordinator, receiptUC *pos.ReceiptUseCase, saleRepo repository.SaleRepository) *SaleHandler {
	return &SaleHandler{checkout: checkout, receiptUC: receiptUC, saleRepo: saleRepo}
}

// Checkout godoc
// @Summary      Cobrar el carrito vigente
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  false  "Método de pago y referencia"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	saleID, err := h.checkout.Checkout(c.UserContext(), in.PaymentMethod, in.PaymentRef, in.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale_id": saleID})
}

// GetByID godoc
// @Summary      Consultar una venta con sus líneas
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, items, err := h.saleRepo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(dto.ToSaleResponse(sale, items))
}

// Receipt godoc
// @Summary      Descargar el comprobante PDF de una venta
// @Tags         sales
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return respondDomainError(c, domain.ErrInvalidInput)
	}
	pdfBytes, err := h.receiptUC.DownloadReceiptPDF(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="venta-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
