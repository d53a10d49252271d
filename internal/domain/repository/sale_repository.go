package repository

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// SaleRepository es el contrato de persistencia de ventas.
type SaleRepository interface {
	// Save persiste el borrador completo (encabezado, líneas y descuento de
	// stock) en una sola transacción y retorna el ID de la venta. Un error
	// implica que nada quedó escrito.
	Save(ctx context.Context, draft *entity.SaleDraft) (string, error)
	// GetByID recupera una venta persistida con sus líneas. Retorna
	// (nil, nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, []entity.SaleItem, error)
}
