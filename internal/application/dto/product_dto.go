package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /productos.
type CreateProductRequest struct {
	SupplierID  *FlexInt        `json:"id_proveedor,omitempty"`
	Name        string          `json:"nombre_producto"`
	Description string          `json:"descripcion"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Stock       FlexInt         `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id_producto"`
	SupplierID  *int64          `json:"id_proveedor"`
	Name        string          `json:"nombre_producto"`
	Description string          `json:"descripcion"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
}
