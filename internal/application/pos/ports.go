// Package pos orquesta las operaciones de caja: carrito, cobro, verificación
// de precios y comprobantes.
package pos

import (
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el comprobante PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(store StoreInfo, sale *entity.Sale, items []entity.SaleItem) ([]byte, error)
}

// StoreInfo son los datos del comercio que encabezan el comprobante.
type StoreInfo struct {
	Name     string
	Currency string
}
