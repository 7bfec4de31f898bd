package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Stock se replica en Inventario
// (InventoryItem.StockActual), que es la fuente que descuenta el registro de ventas.
type Product struct {
	ID          int64
	SupplierID  *int64 // proveedor opcional
	Name        string
	Description string
	SalePrice   decimal.Decimal
	Stock       int
}
