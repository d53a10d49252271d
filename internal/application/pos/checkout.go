package pos

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// CheckoutCoordinator ejecuta el cobro del carrito: arma el borrador, lo
// persiste y solo entonces vacía el carrito. La bandera inProgress rechaza
// cobros concurrentes en lugar de encolarlos: dos Enter seguidos del operador
// no deben producir dos ventas.
type CheckoutCoordinator struct {
	engine     *cart.Engine
	saleRepo   repository.SaleRepository
	log        *logger.Logger
	inProgress atomic.Bool
}

// NewCheckoutCoordinator crea el coordinador de cobro.
func NewCheckoutCoordinator(engine *cart.Engine, saleRepo repository.SaleRepository, log *logger.Logger) *CheckoutCoordinator {
	return &CheckoutCoordinator{engine: engine, saleRepo: saleRepo, log: log}
}

// Checkout cobra el carrito vigente y retorna el ID de la venta persistida.
// Método de pago vacío vale efectivo. Si la persistencia falla, el carrito
// queda intacto y el cobro puede reintentarse.
func (c *CheckoutCoordinator) Checkout(ctx context.Context, paymentMethod, paymentRef, notes string) (string, error) {
	if !c.inProgress.CompareAndSwap(false, true) {
		return "", domain.ErrCheckoutInProgress
	}
	defer c.inProgress.Store(false)

	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return "", domain.ErrInvalidInput
	}

	draft, err := c.engine.BuildSaleDraft(paymentMethod, paymentRef, notes)
	if err != nil {
		return "", err
	}

	saleID, err := c.saleRepo.Save(ctx, draft)
	if err != nil {
		c.log.Error().Err(err).Msg("el cobro falló, el carrito se conserva")
		return "", fmt.Errorf("guardar venta: %w", err)
	}

	c.engine.Clear()
	c.log.Info().
		Str("sale_id", saleID).
		Str("total", draft.Total.String()).
		Str("payment_method", paymentMethod).
		Int("items", len(draft.Items)).
		Msg("venta cobrada")
	return saleID, nil
}
