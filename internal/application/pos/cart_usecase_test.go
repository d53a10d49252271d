package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// catalogoStub implementa repository.ProductRepository sobre un mapa en
// memoria.
type catalogoStub struct {
	products map[string]entity.Product
	findErr  error
}

func (s *catalogoStub) ListAll(ctx context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *catalogoStub) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	p, ok := s.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *catalogoStub) Create(ctx context.Context, p *entity.Product) error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func nuevoCartUC(products ...entity.Product) (*CartUseCase, *catalogoStub) {
	repo := &catalogoStub{products: map[string]entity.Product{}}
	for _, p := range products {
		repo.products[p.Code] = p
	}
	return NewCartUseCase(cart.NewEngine(), repo, testLogger()), repo
}

func unidad(code string, precio, stock int64) entity.Product {
	return entity.Product{
		ID:            "prod-" + code,
		Code:          code,
		Name:          "Producto " + code,
		UnitPrice:     decimal.NewFromInt(precio),
		StockQuantity: decimal.NewFromInt(stock),
		SaleMode:      entity.SaleModeUnit,
	}
}

func granel(code string, precioKg, stockKg int64) entity.Product {
	return entity.Product{
		ID:            "prod-" + code,
		Code:          code,
		Name:          "Granel " + code,
		UnitPrice:     decimal.NewFromInt(precioKg),
		StockQuantity: decimal.NewFromInt(stockKg),
		SaleMode:      entity.SaleModeBulk,
	}
}

// ── AddByCode ────────────────────────────────────────────────────

func TestAddByCode_CantidadPorDefectoUno(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 5))

	view, err := uc.AddByCode(context.Background(), "A1", decimal.Zero, false)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.True(t, view.Lines[0].Quantity.Equal(decimal.NewFromInt(1)),
		"sin cantidad el escáner agrega una unidad")
}

func TestAddByCode_RecortaEspacios(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 5))

	view, err := uc.AddByCode(context.Background(), "  A1  ", decimal.NewFromInt(2), false)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestAddByCode_CodigoVacio(t *testing.T) {
	uc, _ := nuevoCartUC()
	_, err := uc.AddByCode(context.Background(), "   ", decimal.NewFromInt(1), false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddByCode_NoExiste(t *testing.T) {
	uc, _ := nuevoCartUC()
	_, err := uc.AddByCode(context.Background(), "ZZ", decimal.NewFromInt(1), false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddByCode_GranelPideGramos(t *testing.T) {
	uc, _ := nuevoCartUC(granel("GR1", 10, 2))
	_, err := uc.AddByCode(context.Background(), "GR1", decimal.NewFromInt(1), false)
	assert.ErrorIs(t, err, domain.ErrWeightRequired,
		"un producto a granel no entra por código sin pesada")
}

func TestAddByCode_ErrorDelRepositorioSePropaga(t *testing.T) {
	uc, repo := nuevoCartUC(unidad("A1", 10, 5))
	repo.findErr = errors.New("conexión perdida")

	_, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(1), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión perdida", "el error de infraestructura se envuelve, no se reinterpreta")
}

func TestAddByCode_ExcedeSinConfirmar(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 3))

	_, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(5), false)

	var exceeds *domain.QuantityExceedsStockError
	require.ErrorAs(t, err, &exceeds)
	assert.True(t, exceeds.Available.Equal(decimal.NewFromInt(3)))
}

func TestAddByCode_ConfirmMaxRecortaAlDisponible(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 3))

	view, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(5), true)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.True(t, view.Lines[0].Quantity.Equal(decimal.NewFromInt(3)),
		"con confirm_max se lleva todo el disponible")
}

func TestAddByCode_ConfirmMaxSinDisponible(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 2))

	// Primera alta agota el stock capturado; la segunda ya no tiene disponible.
	_, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(2), false)
	require.NoError(t, err)

	_, err = uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(1), true)
	assert.ErrorIs(t, err, domain.ErrOutOfStock,
		"sin disponible el confirm_max no puede recortar a cero")
}

// ── AddBulk ──────────────────────────────────────────────────────

func TestAddBulk(t *testing.T) {
	uc, _ := nuevoCartUC(granel("GR1", 10, 2))

	view, err := uc.AddBulk(context.Background(), "GR1", decimal.NewFromInt(500))
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Granel GR1 (500g)", view.Lines[0].Name)
	assert.True(t, view.Totals.Total.Equal(decimal.NewFromInt(5)))
}

func TestAddBulk_ProductoPorUnidad(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 5))
	_, err := uc.AddBulk(context.Background(), "A1", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la pesada solo aplica a productos a granel")
}

func TestAddBulk_StockInsuficiente(t *testing.T) {
	uc, _ := nuevoCartUC(granel("GR1", 10, 1))

	_, err := uc.AddBulk(context.Background(), "GR1", decimal.NewFromInt(2000))

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.AvailableKg.Equal(decimal.NewFromInt(1)))
}

// ── Edición ──────────────────────────────────────────────────────

func TestSetQuantityYRemove(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 5))
	_, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(2), false)
	require.NoError(t, err)

	view, err := uc.SetQuantity("A1", decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, view.Lines[0].Quantity.Equal(decimal.NewFromInt(4)))

	view = uc.Remove("A1")
	assert.Empty(t, view.Lines)
}

func TestClear(t *testing.T) {
	uc, _ := nuevoCartUC(unidad("A1", 10, 5))
	_, err := uc.AddByCode(context.Background(), "A1", decimal.NewFromInt(2), false)
	require.NoError(t, err)

	view := uc.Clear()
	assert.Empty(t, view.Lines)
	assert.True(t, view.Totals.Total.IsZero())
}
