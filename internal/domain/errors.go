package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("producto no encontrado")
	ErrOutOfStock         = errors.New("producto sin stock disponible")
	ErrInvalidWeight      = errors.New("gramos inválidos")
	ErrWeightRequired     = errors.New("venta a granel: se requieren gramos")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrLineNotFound       = errors.New("línea no encontrada en el carrito")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrCheckoutInProgress = errors.New("ya hay un cobro en curso")
)

// QuantityExceedsStockError indica que la cantidad pedida supera el stock.
// Es recuperable: quien llama puede confirmar con el operador y reintentar
// con Available (en el alta el motor nunca recorta por su cuenta).
type QuantityExceedsStockError struct {
	Available decimal.Decimal
}

func (e *QuantityExceedsStockError) Error() string {
	return fmt.Sprintf("solo hay %s en stock", e.Available)
}

// InsufficientStockError indica que una venta a granel pide más kilogramos
// de los disponibles.
type InsufficientStockError struct {
	AvailableKg decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente, disponible: %s kg", e.AvailableKg)
}
