package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ProductResponse es la proyección de un producto del catálogo.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code" example:"7701234567890"`
	Name          string          `json:"name" example:"Arroz Diana 500g"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	SaleMode      string          `json:"sale_mode" example:"unit"`
}

// ToProductResponse proyecta la entidad al contrato HTTP.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		SaleMode:      p.SaleMode,
	}
}

// ToProductResponses proyecta una lista de productos.
func ToProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
