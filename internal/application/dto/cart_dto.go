package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// AddItemRequest agrega un producto por código. Quantity omitida vale 1.
// ConfirmMax acepta de antemano llevar todo el disponible si la cantidad
// pedida excede el stock.
type AddItemRequest struct {
	Code       string           `json:"code" example:"7701234567890"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	ConfirmMax bool             `json:"confirm_max,omitempty"`
}

// AddBulkRequest agrega una pesada a granel en gramos.
type AddBulkRequest struct {
	Code  string          `json:"code" example:"GR001"`
	Grams decimal.Decimal `json:"grams" example:"250"`
}

// UpdateLineRequest fija la cantidad de una línea del carrito.
type UpdateLineRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// CartLineResponse es la proyección de una línea del carrito.
type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse es el estado completo del carrito.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	Total      decimal.Decimal    `json:"total"`
	TotalItems decimal.Decimal    `json:"total_items"`
	LineCount  int                `json:"line_count"`
}

// ToCartResponse proyecta las líneas y totales del carrito.
func ToCartResponse(lines []entity.CartLine, totals cart.Totals) CartResponse {
	out := CartResponse{
		Lines:      make([]CartLineResponse, 0, len(lines)),
		Total:      totals.Total,
		TotalItems: totals.TotalItems,
		LineCount:  totals.LineCount,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, CartLineResponse{
			ProductID: l.ProductID,
			Code:      l.Code,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return out
}
