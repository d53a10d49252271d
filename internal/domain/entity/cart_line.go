package entity

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito. Quantity y StockAtAdd comparten unidad:
// unidades para venta por unidad, gramos para granel. StockAtAdd es la
// instantánea del stock tomada al agregar; toda mutación posterior respeta
// 0 <= Quantity <= StockAtAdd.
type CartLine struct {
	ProductID  string
	Code       string
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   decimal.Decimal
	StockAtAdd decimal.Decimal
}

// Subtotal de la línea: precio unitario por cantidad.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}

// SamePricingBasis indica si dos líneas comparten base de precio: mismo nombre
// mostrado y mismo precio unitario. Dos pesadas a granel distintas del mismo
// código no comparten base (el nombre anotado con los gramos las separa).
func (l CartLine) SamePricingBasis(other CartLine) bool {
	return l.Name == other.Name && l.UnitPrice.Equal(other.UnitPrice)
}
