package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// CartUseCase gobierna el carrito de la caja contra el catálogo.
type CartUseCase struct {
	engine      *cart.Engine
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewCartUseCase crea el caso de uso del carrito.
func NewCartUseCase(engine *cart.Engine, productRepo repository.ProductRepository, log *logger.Logger) *CartUseCase {
	return &CartUseCase{engine: engine, productRepo: productRepo, log: log}
}

// CartView es el estado del carrito para la pantalla.
type CartView struct {
	Lines  []entity.CartLine
	Totals cart.Totals
}

// AddByCode agrega una venta por unidad digitando el código. Cantidad cero o
// negativa se toma como 1 (el escáner repite el código, no manda cantidad).
// Un producto a granel retorna ErrWeightRequired: por código solo entran
// ventas por unidad. Con confirmMax, si la cantidad excede el stock se
// reintenta con todo el disponible en lugar de fallar.
func (uc *CartUseCase) AddByCode(ctx context.Context, code string, quantity decimal.Decimal, confirmMax bool) (*CartView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		quantity = decimal.NewFromInt(1)
	}

	p, err := uc.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("buscar producto %s: %w", code, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.IsBulk() {
		return nil, domain.ErrWeightRequired
	}

	err = uc.engine.AddProduct(p, quantity)

	var exceeds *domain.QuantityExceedsStockError
	if errors.As(err, &exceeds) && confirmMax {
		if !exceeds.Available.GreaterThan(decimal.Zero) {
			return nil, domain.ErrOutOfStock
		}
		uc.log.Warn().
			Str("code", code).
			Str("requested", quantity.String()).
			Str("available", exceeds.Available.String()).
			Msg("cantidad recortada al stock disponible")
		err = uc.engine.AddProduct(p, exceeds.Available)
	}
	if err != nil {
		return nil, err
	}
	return uc.view(), nil
}

// AddBulk agrega una pesada a granel en gramos.
func (uc *CartUseCase) AddBulk(ctx context.Context, code string, grams decimal.Decimal) (*CartView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("buscar producto %s: %w", code, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.IsBulk() {
		return nil, domain.ErrInvalidInput
	}

	line, err := cart.ResolveBulk(p, grams)
	if err != nil {
		return nil, err
	}
	if err := uc.engine.AddLine(line); err != nil {
		return nil, err
	}
	return uc.view(), nil
}

// SetQuantity fija la cantidad de una línea (recorta al stock capturado).
func (uc *CartUseCase) SetQuantity(code string, quantity decimal.Decimal) (*CartView, error) {
	if err := uc.engine.SetLineQuantity(code, quantity); err != nil {
		return nil, err
	}
	return uc.view(), nil
}

// Remove quita la línea del carrito.
func (uc *CartUseCase) Remove(code string) *CartView {
	uc.engine.RemoveLine(code)
	return uc.view()
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear() *CartView {
	uc.engine.Clear()
	return uc.view()
}

// View devuelve el estado vigente del carrito.
func (uc *CartUseCase) View() *CartView {
	return uc.view()
}

func (uc *CartUseCase) view() *CartView {
	return &CartView{Lines: uc.engine.Lines(), Totals: uc.engine.Totals()}
}
