package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// CheckoutRequest confirma el cobro del carrito vigente. PaymentMethod
// omitido vale efectivo.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method,omitempty" example:"efectivo"`
	PaymentRef    string `json:"payment_ref,omitempty" example:"APROB-123"`
	Notes         string `json:"notes,omitempty"`
}

// SaleItemResponse es una línea de venta persistida.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse es una venta persistida con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	PaymentRef    string             `json:"payment_ref,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToSaleResponse proyecta la venta y sus líneas al contrato HTTP.
func ToSaleResponse(sale *entity.Sale, items []entity.SaleItem) SaleResponse {
	out := SaleResponse{
		ID:            sale.ID,
		Items:         make([]SaleItemResponse, 0, len(items)),
		Subtotal:      sale.Subtotal,
		Tax:           sale.Tax,
		Discount:      sale.Discount,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		PaymentRef:    sale.PaymentRef,
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, SaleItemResponse{
			ProductID: it.ProductID,
			Code:      it.Code,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}
