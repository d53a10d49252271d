package pos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/search"
)

// PriceCheckerUseCase resuelve consultas de precio del checador: por código
// digitado o por texto libre contra el catálogo. Solo lee, nunca toca el
// carrito.
type PriceCheckerUseCase struct {
	productRepo repository.ProductRepository
}

// NewPriceCheckerUseCase crea el verificador de precios.
func NewPriceCheckerUseCase(productRepo repository.ProductRepository) *PriceCheckerUseCase {
	return &PriceCheckerUseCase{productRepo: productRepo}
}

// CheckByCode consulta un producto por código. Retorna ErrNotFound si el
// código no existe.
func (uc *PriceCheckerUseCase) CheckByCode(ctx context.Context, code string) (*entity.Product, error) {
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
	return p, nil
}

// ListAll devuelve el catálogo completo.
func (uc *PriceCheckerUseCase) ListAll(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return products, nil
}

// Search filtra el catálogo por texto libre sobre código y nombre.
func (uc *PriceCheckerUseCase) Search(ctx context.Context, text string) ([]entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return search.Filter(products, text), nil
}
