package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

var thousand = decimal.NewFromInt(1000)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. Save corre sobre
// el TxRunner; las lecturas van directo al pool.
type SaleRepo struct {
	pool   *pgxpool.Pool
	runner *TxRunner
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool, runner: NewTxRunner(pool)}
}

// Save persiste encabezado, líneas y descuento de stock en una sola
// transacción. El stock de productos a granel se lleva en kilogramos y las
// líneas a granel en gramos, por eso el descuento divide entre mil según el
// modo de venta. Un error deja la base como estaba.
func (r *SaleRepo) Save(ctx context.Context, draft *entity.SaleDraft) (string, error) {
	if draft == nil || len(draft.Items) == 0 {
		return "", domain.ErrEmptyCart
	}

	saleID := uuid.New().String()
	err := r.runner.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO sales (id, subtotal, tax, discount, total, payment_method, payment_ref, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
			saleID, draft.Subtotal, draft.Tax, draft.Discount, draft.Total,
			draft.PaymentMethod, nullIfEmpty(draft.PaymentRef), nullIfEmpty(draft.Notes),
		)
		if err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		for _, item := range draft.Items {
			_, err := q.Exec(ctx, `
				INSERT INTO sale_items (id, sale_id, product_id, code, name, unit_price, quantity, subtotal)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				uuid.New().String(), saleID, item.ProductID, item.Code, item.Name,
				item.UnitPrice, item.Quantity, item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("insert sale item %s: %w", item.Code, err)
			}

			// La cantidad vendida a granel está en gramos; el stock en kg.
			cmd, err := q.Exec(ctx, `
				UPDATE products
				SET stock_quantity = stock_quantity - CASE WHEN sale_mode = 'bulk' THEN $2 / $3 ELSE $2 END,
				    updated_at = now()
				WHERE id = $1 AND stock_quantity >= CASE WHEN sale_mode = 'bulk' THEN $2 / $3 ELSE $2 END`,
				item.ProductID, item.Quantity, thousand,
			)
			if err != nil {
				return fmt.Errorf("decrement stock %s: %w", item.Code, err)
			}
			if cmd.RowsAffected() == 0 {
				return fmt.Errorf("decrement stock %s: %w", item.Code, domain.ErrOutOfStock)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}

// GetByID recupera una venta con sus líneas. Retorna (nil, nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, []entity.SaleItem, error) {
	var s entity.Sale
	var paymentRef, notes *string
	err := r.pool.QueryRow(ctx, `
		SELECT id, subtotal, tax, discount, total, payment_method, payment_ref, notes, created_at
		FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.Subtotal, &s.Tax, &s.Discount, &s.Total, &s.PaymentMethod, &paymentRef, &notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get sale: %w", err)
	}
	if paymentRef != nil {
		s.PaymentRef = *paymentRef
	}
	if notes != nil {
		s.Notes = *notes
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, sale_id, product_id, code, name, unit_price, quantity, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Code, &it.Name, &it.UnitPrice, &it.Quantity, &it.Subtotal); err != nil {
			return nil, nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return &s, items, rows.Err()
}
