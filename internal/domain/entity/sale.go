package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// ValidPaymentMethod valida un método de pago.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// SaleDraftItem es una línea del borrador de venta.
type SaleDraftItem struct {
	ProductID string
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Subtotal  decimal.Decimal
}

// SaleDraft es la venta armada al momento del cobro. Se construye solo en el
// checkout, es inmutable una vez creado y se descarta tras entregarlo al
// repositorio de ventas; el motor nunca lo persiste a medias.
type SaleDraft struct {
	Items         []SaleDraftItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentRef    string
	Notes         string
}

// Sale es una venta ya persistida.
type Sale struct {
	ID            string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentRef    string
	Notes         string
	CreatedAt     time.Time
}

// SaleItem es una línea persistida de una venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Subtotal  decimal.Decimal
}
