package dto

import "time"

// InitializeInventoryRequest body para POST /inventario.
type InitializeInventoryRequest struct {
	ProductID    FlexInt `json:"id_producto"`
	InitialStock FlexInt `json:"stock_inicial"`
}

// InventoryItemResponse fila de GET /inventario (inventario unido a productos).
type InventoryItemResponse struct {
	ProductID   int64     `json:"id_producto"`
	ProductName string    `json:"nombre_producto"`
	StockActual int       `json:"stock_actual"`
	UpdatedAt   time.Time `json:"ultima_actualizacion"`
}
