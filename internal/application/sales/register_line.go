package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// RegisterSaleLineUseCase registra una línea de venta y descuenta el inventario
// en una sola transacción: o se aplican las dos escrituras o ninguna.
type RegisterSaleLineUseCase struct {
	txRunner    TxRunner
	invalidator ReportInvalidator
}

// NewRegisterSaleLineUseCase construye el caso de uso. invalidator puede ser nil.
func NewRegisterSaleLineUseCase(txRunner TxRunner, invalidator ReportInvalidator) *RegisterSaleLineUseCase {
	return &RegisterSaleLineUseCase{txRunner: txRunner, invalidator: invalidator}
}

// SaleLineInput entrada del registro. SaleID nil crea una venta nueva.
type SaleLineInput struct {
	SaleID    *int64
	ProductID int64
	Quantity  int
	Subtotal  decimal.Decimal
}

// RegisterSaleLine ejecuta en una transacción:
//  1. add_or_update_venta: crea o actualiza la venta, su total y la línea.
//  2. actualizar_inventario: descuenta Quantity del stock del producto.
//
// Cualquier fallo revierte ambos pasos y se devuelve envuelto en domain.ErrTransactionFailed
// junto con la causa. No se reintenta.
func (uc *RegisterSaleLineUseCase) RegisterSaleLine(ctx context.Context, in SaleLineInput) (int64, error) {
	opID := uuid.New().String()
	start := time.Now()

	var saleID int64
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		id, err := saleRepo.AddOrUpdate(ctx, in.SaleID, in.ProductID, in.Quantity, in.Subtotal)
		if err != nil {
			return fmt.Errorf("paso venta: %w", err)
		}
		if err := inventoryRepo.Decrement(ctx, in.ProductID, in.Quantity); err != nil {
			return fmt.Errorf("paso inventario: %w", err)
		}
		saleID = id
		return nil
	})
	if err != nil {
		log.Error().Err(err).
			Str("op_id", opID).
			Int64("id_producto", in.ProductID).
			Int("cantidad", in.Quantity).
			Msg("registro de venta revertido")
		return 0, fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}

	log.Info().
		Str("op_id", opID).
		Int64("id_venta", saleID).
		Int64("id_producto", in.ProductID).
		Int("cantidad", in.Quantity).
		Str("subtotal", in.Subtotal.StringFixed(2)).
		Dur("duracion", time.Since(start)).
		Msg("detalle de venta registrado")

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx); err != nil {
			// La venta ya está confirmada; los reportes expiran solos por TTL.
			log.Warn().Err(err).Str("op_id", opID).Msg("invalidar caché de reportes")
		}
	}
	return saleID, nil
}

// RegisterSaleLineFromRequest adapta el body HTTP al caso de uso.
func (uc *RegisterSaleLineUseCase) RegisterSaleLineFromRequest(ctx context.Context, in dto.RegisterSaleLineRequest) (*dto.RegisterSaleLineResponse, error) {
	saleID, err := uc.RegisterSaleLine(ctx, SaleLineInput{
		SaleID:    dto.OptionalID(in.SaleID),
		ProductID: in.ProductID.Int64(),
		Quantity:  in.Quantity.Int(),
		Subtotal:  in.Subtotal,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterSaleLineResponse{
		Message: "Detalle de venta e inventario actualizado exitosamente",
		SaleID:  saleID,
	}, nil
}
