package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta registrada.
type ReceiptUseCase struct {
	repo      repository.SaleRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.SaleRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, generator: generator}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) Download(ctx context.Context, saleID int64) ([]byte, string, error) {
	sale, err := uc.repo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	lines, err := uc.repo.ListLines(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateSaleReceipt(ctx, sale, lines)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante venta %d: %w", saleID, err)
	}
	return pdf, fmt.Sprintf("venta-%d.pdf", saleID), nil
}
