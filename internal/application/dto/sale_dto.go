package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleLineRequest body para POST /ventas/detalle.
// SaleID ausente o 0 crea una venta nueva.
type RegisterSaleLineRequest struct {
	SaleID    *FlexInt        `json:"id_venta,omitempty"`
	ProductID FlexInt         `json:"id_producto"`
	Quantity  FlexInt         `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// RegisterSaleLineResponse confirmación del registro de una línea.
type RegisterSaleLineResponse struct {
	Message string `json:"message"`
	SaleID  int64  `json:"id_venta"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID    int64           `json:"id_venta"`
	Date  time.Time       `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

// SaleLineResponse salida de una línea de venta.
type SaleLineResponse struct {
	SaleID      int64           `json:"id_venta"`
	ProductID   int64           `json:"id_producto"`
	ProductName string          `json:"nombre_producto"`
	Quantity    int             `json:"cantidad"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
