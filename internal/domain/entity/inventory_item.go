package entity

import "time"

// InventoryItem fila de Inventario: stock actual de un producto. Una por producto.
type InventoryItem struct {
	ProductID   int64
	ProductName string
	StockActual int
	UpdatedAt   time.Time
}
