package entity

import "github.com/shopspring/decimal"

// Modos de venta.
const (
	SaleModeUnit = "unit" // venta por unidad
	SaleModeBulk = "bulk" // venta a granel: precio por kilogramo, pedido en gramos
)

// Product es la instantánea inmutable de un producto al momento de consultarlo.
// Code lo digita el operador y es único. StockQuantity está en unidades para
// SaleModeUnit y en kilogramos para SaleModeBulk.
type Product struct {
	ID            string
	Code          string
	Name          string
	UnitPrice     decimal.Decimal
	StockQuantity decimal.Decimal
	SaleMode      string
}

// IsBulk indica si el producto se vende a granel.
func (p *Product) IsBulk() bool { return p.SaleMode == SaleModeBulk }
