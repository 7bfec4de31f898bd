package dto

import "github.com/shopspring/decimal"

// ProductStatsDTO fila de /estadisticas/productos y /producto-mas-vendido.
type ProductStatsDTO struct {
	ProductID   int64           `json:"id_producto"`
	ProductName string          `json:"nombre_producto"`
	UnitsSold   int64           `json:"unidades_vendidas"`
	Revenue     decimal.Decimal `json:"ingresos"`
	SalesCount  int64           `json:"numero_ventas"`
}
