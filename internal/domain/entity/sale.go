package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale (venta) agrega una o más líneas; Total es la suma de sus subtotales.
type Sale struct {
	ID    int64
	Date  time.Time
	Total decimal.Decimal
}

// SaleLine (detalle de venta) es una línea producto/cantidad/subtotal dentro de una venta.
// ProductName solo se llena en lecturas.
type SaleLine struct {
	SaleID      int64
	ProductID   int64
	ProductName string
	Quantity    int
	Subtotal    decimal.Decimal
}
