package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

var gramsPerKg = decimal.NewFromInt(1000)

// ResolveBulk convierte un pedido a granel en gramos en una línea valorada
// (servicio de dominio, puro). El control de suficiencia se hace en
// kilogramos, la unidad del stock; la línea queda cuantificada y valorada en
// gramos: precioGramo = precioKg/1000 y cantidad = gramos, de modo que el
// subtotal precioGramo×gramos equivale a precioKg×kg. StockAtAdd se guarda en
// gramos para que el invariante de cantidad de CartLine opere en una sola
// unidad. El nombre queda anotado con los gramos ("Arroz (250g)") y separa
// pesadas distintas del mismo código.
func ResolveBulk(p *entity.Product, grams decimal.Decimal) (entity.CartLine, error) {
	if p == nil {
		return entity.CartLine{}, domain.ErrNotFound
	}
	if !grams.GreaterThan(decimal.Zero) {
		return entity.CartLine{}, domain.ErrInvalidWeight
	}
	if p.StockQuantity.LessThanOrEqual(decimal.Zero) {
		return entity.CartLine{}, domain.ErrOutOfStock
	}

	kg := grams.Div(gramsPerKg)
	if kg.GreaterThan(p.StockQuantity) {
		return entity.CartLine{}, &domain.InsufficientStockError{AvailableKg: p.StockQuantity}
	}

	return entity.CartLine{
		ProductID:  p.ID,
		Code:       p.Code,
		Name:       fmt.Sprintf("%s (%sg)", p.Name, grams.String()),
		UnitPrice:  p.UnitPrice.Div(gramsPerKg),
		Quantity:   grams,
		StockAtAdd: p.StockQuantity.Mul(gramsPerKg),
	}, nil
}
