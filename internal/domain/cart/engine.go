// Package cart implementa el motor del carrito del punto de venta: líneas
// mutables contra el stock capturado al agregarlas, totales derivados y el
// armado del borrador de venta para el cobro.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// Engine es el motor del carrito de una sesión de operador. Las líneas se
// indexan por código de producto y conservan el orden de inserción (relevante
// para la pantalla, no para los totales). El mutex hace seguras las
// mutaciones aunque el host HTTP atienda en paralelo; la herramienta sigue
// siendo de un solo operador.
type Engine struct {
	mu    sync.Mutex
	lines []entity.CartLine
}

// NewEngine construye un carrito vacío.
func NewEngine() *Engine {
	return &Engine{}
}

// Totals son los totales derivados del carrito. TotalItems es la suma de
// cantidades (el contador del pie de la pantalla de cobro), no el número de
// líneas.
type Totals struct {
	Total      decimal.Decimal
	TotalItems decimal.Decimal
	LineCount  int
}

// AddProduct agrega una venta por unidad tomando la instantánea del producto.
// Retorna ErrNotFound con producto nil, ErrOutOfStock sin stock y
// QuantityExceedsStockError si la cantidad supera el stock: el motor no
// recorta en el alta, quien llama confirma y reintenta con la cantidad
// disponible.
func (e *Engine) AddProduct(p *entity.Product, quantity decimal.Decimal) error {
	if p == nil {
		return domain.ErrNotFound
	}
	if !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if p.StockQuantity.LessThanOrEqual(decimal.Zero) {
		return domain.ErrOutOfStock
	}
	if quantity.GreaterThan(p.StockQuantity) {
		return &domain.QuantityExceedsStockError{Available: p.StockQuantity}
	}
	return e.AddLine(entity.CartLine{
		ProductID:  p.ID,
		Code:       p.Code,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Quantity:   quantity,
		StockAtAdd: p.StockQuantity,
	})
}

// AddLine inserta o funde una línea ya valorada (la ruta de granel entra por
// aquí con la línea del resolver). Con la misma base de precio la cantidad se
// acumula; con base distinta (otra pesada a granel del mismo código) la línea
// se reemplaza en su posición. Nunca se duplica un código.
func (e *Engine) AddLine(line entity.CartLine) error {
	if !line.UnitPrice.GreaterThan(decimal.Zero) || !line.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if line.Quantity.GreaterThan(line.StockAtAdd) {
		return &domain.QuantityExceedsStockError{Available: line.StockAtAdd}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(line.Code)
	if idx < 0 {
		e.lines = append(e.lines, line)
		return nil
	}

	existing := e.lines[idx]
	if existing.SamePricingBasis(line) {
		newQty := existing.Quantity.Add(line.Quantity)
		if newQty.GreaterThan(existing.StockAtAdd) {
			return &domain.QuantityExceedsStockError{
				Available: existing.StockAtAdd.Sub(existing.Quantity),
			}
		}
		e.lines[idx].Quantity = newQty
		return nil
	}
	// Base de precio distinta: reemplaza conservando la posición.
	e.lines[idx] = line
	return nil
}

// SetLineQuantity fija la cantidad de una línea recortando en silencio a
// [0, StockAtAdd]; a diferencia del alta, aquí el recorte es incondicional y
// la pantalla lo informa. Cantidad cero elimina la línea. Retorna
// ErrLineNotFound si el código no está en el carrito.
func (e *Engine) SetLineQuantity(code string, quantity decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(code)
	if idx < 0 {
		return domain.ErrLineNotFound
	}
	if quantity.LessThan(decimal.Zero) {
		quantity = decimal.Zero
	}
	if quantity.GreaterThan(e.lines[idx].StockAtAdd) {
		quantity = e.lines[idx].StockAtAdd
	}
	if quantity.IsZero() {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
		return nil
	}
	e.lines[idx].Quantity = quantity
	return nil
}

// RemoveLine quita la línea del código indicado. Idempotente: sin línea no es
// error.
func (e *Engine) RemoveLine(code string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(code)
	if idx >= 0 {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	}
}

// Clear vacía el carrito.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
}

// IsEmpty indica si el carrito no tiene líneas.
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines) == 0
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (e *Engine) Lines() []entity.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entity.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Totals recalcula los totales desde las líneas actuales, O(líneas). No hay
// caché que pueda desincronizarse.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := Totals{LineCount: len(e.lines)}
	for _, l := range e.lines {
		t.Total = t.Total.Add(l.Subtotal())
		t.TotalItems = t.TotalItems.Add(l.Quantity)
	}
	return t
}

// BuildSaleDraft arma el borrador de venta con las líneas actuales. Retorna
// ErrEmptyCart sin líneas. No muta el carrito: vaciar es responsabilidad del
// coordinador y solo tras confirmar la persistencia.
func (e *Engine) BuildSaleDraft(paymentMethod, paymentRef, notes string) (*entity.SaleDraft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	draft := &entity.SaleDraft{
		Items:         make([]entity.SaleDraftItem, 0, len(e.lines)),
		PaymentMethod: paymentMethod,
		PaymentRef:    paymentRef,
		Notes:         notes,
	}
	for _, l := range e.lines {
		sub := l.Subtotal()
		draft.Items = append(draft.Items, entity.SaleDraftItem{
			ProductID: l.ProductID,
			Code:      l.Code,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  sub,
		})
		draft.Subtotal = draft.Subtotal.Add(sub)
	}
	draft.Tax = decimal.Zero
	draft.Discount = decimal.Zero
	draft.Total = draft.Subtotal
	return draft, nil
}

// indexOf busca una línea por código. Llamar con el mutex tomado.
func (e *Engine) indexOf(code string) int {
	for i, l := range e.lines {
		if l.Code == code {
			return i
		}
	}
	return -1
}
