// Package repository define los contratos de persistencia del dominio.
package repository

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ProductRepository es el contrato de lectura del catálogo.
type ProductRepository interface {
	// ListAll devuelve el catálogo completo ordenado por código.
	ListAll(ctx context.Context) ([]entity.Product, error)
	// FindByCode busca un producto por su código. Retorna (nil, nil) si no
	// existe.
	FindByCode(ctx context.Context, code string) (*entity.Product, error)
	// Create registra un producto nuevo (siembra y administración).
	Create(ctx context.Context, p *entity.Product) error
}
