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
)

// ventasStub implementa repository.SaleRepository contando invocaciones.
type ventasStub struct {
	saveCalls int
	saveErr   error
	saved     *entity.SaleDraft
	entered   chan struct{} // si no es nil, Save avisa que entró
	block     chan struct{} // si no es nil, Save espera hasta que se cierre
}

func (s *ventasStub) Save(ctx context.Context, draft *entity.SaleDraft) (string, error) {
	s.saveCalls++
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = draft
	return "venta-001", nil
}

func (s *ventasStub) GetByID(ctx context.Context, id string) (*entity.Sale, []entity.SaleItem, error) {
	return nil, nil, nil
}

func carritoConLinea(t *testing.T) *cart.Engine {
	t.Helper()
	e := cart.NewEngine()
	p := &entity.Product{
		ID:            "prod-A1",
		Code:          "A1",
		Name:          "Producto A1",
		UnitPrice:     decimal.NewFromInt(10),
		StockQuantity: decimal.NewFromInt(5),
		SaleMode:      entity.SaleModeUnit,
	}
	require.NoError(t, e.AddProduct(p, decimal.NewFromInt(2)))
	return e
}

func TestCheckout_PersisteYVacia(t *testing.T) {
	engine := carritoConLinea(t)
	repo := &ventasStub{}
	coord := NewCheckoutCoordinator(engine, repo, testLogger())

	saleID, err := coord.Checkout(context.Background(), entity.PaymentCard, "APROB-9", "")
	require.NoError(t, err)

	assert.Equal(t, "venta-001", saleID)
	assert.True(t, engine.IsEmpty(), "el carrito se vacía solo tras persistir")
	require.NotNil(t, repo.saved)
	assert.Equal(t, entity.PaymentCard, repo.saved.PaymentMethod)
	assert.True(t, repo.saved.Total.Equal(decimal.NewFromInt(20)))
}

func TestCheckout_MetodoPorDefectoEfectivo(t *testing.T) {
	engine := carritoConLinea(t)
	repo := &ventasStub{}
	coord := NewCheckoutCoordinator(engine, repo, testLogger())

	_, err := coord.Checkout(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, repo.saved.PaymentMethod)
}

func TestCheckout_MetodoInvalido(t *testing.T) {
	engine := carritoConLinea(t)
	repo := &ventasStub{}
	coord := NewCheckoutCoordinator(engine, repo, testLogger())

	_, err := coord.Checkout(context.Background(), "cheque", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, repo.saveCalls, "un método inválido no llega al repositorio")
}

func TestCheckout_CarritoVacioNoPersiste(t *testing.T) {
	repo := &ventasStub{}
	coord := NewCheckoutCoordinator(cart.NewEngine(), repo, testLogger())

	_, err := coord.Checkout(context.Background(), entity.PaymentCash, "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Equal(t, 0, repo.saveCalls, "con carrito vacío no se toca el repositorio")
}

func TestCheckout_FallaConservaCarritoYPermiteReintento(t *testing.T) {
	engine := carritoConLinea(t)
	repo := &ventasStub{saveErr: errors.New("timeout de base de datos")}
	coord := NewCheckoutCoordinator(engine, repo, testLogger())

	_, err := coord.Checkout(context.Background(), entity.PaymentCash, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guardar venta")
	assert.False(t, engine.IsEmpty(), "la falla de persistencia conserva el carrito")

	// El reintento procede una vez resuelta la causa.
	repo.saveErr = nil
	saleID, err := coord.Checkout(context.Background(), entity.PaymentCash, "", "")
	require.NoError(t, err)
	assert.Equal(t, "venta-001", saleID)
	assert.Equal(t, 2, repo.saveCalls)
}

func TestCheckout_RechazaCobroConcurrente(t *testing.T) {
	engine := carritoConLinea(t)
	repo := &ventasStub{entered: make(chan struct{}), block: make(chan struct{})}
	coord := NewCheckoutCoordinator(engine, repo, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := coord.Checkout(context.Background(), entity.PaymentCash, "", "")
		done <- err
	}()

	// Espera a que el primer cobro tome la bandera y quede bloqueado en Save.
	<-repo.entered

	_, err := coord.Checkout(context.Background(), entity.PaymentCash, "", "")
	assert.ErrorIs(t, err, domain.ErrCheckoutInProgress,
		"el segundo Enter se rechaza mientras el primero sigue en vuelo")

	close(repo.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, repo.saveCalls)
}
