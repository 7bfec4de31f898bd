package entity

import "github.com/shopspring/decimal"

// ProductStats fila de la vista estadisticas_productos.
type ProductStats struct {
	ProductID   int64
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
	SalesCount  int64
}
