package pos

import (
	"context"
	"fmt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// ReceiptUseCase genera el comprobante PDF de una venta persistida.
type ReceiptUseCase struct {
	saleRepo repository.SaleRepository
	pdfGen   ReceiptPDFGenerator
	store    StoreInfo
	log      *logger.Logger
}

// NewReceiptUseCase crea el caso de uso de comprobantes.
func NewReceiptUseCase(saleRepo repository.SaleRepository, pdfGen ReceiptPDFGenerator, store StoreInfo, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, pdfGen: pdfGen, store: store, log: log}
}

// DownloadReceiptPDF genera el comprobante de la venta indicada.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, items, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("recuperar venta %s: %w", saleID, err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	pdf, err := uc.pdfGen.GenerateReceiptPDF(uc.store, sale, items)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}

	uc.log.Debug().Str("sale_id", saleID).Int("bytes", len(pdf)).Msg("comprobante generado")
	return pdf, nil
}
