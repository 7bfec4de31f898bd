package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa de persistencia los produce
// a partir de los códigos del motor y la capa HTTP los traduce una sola vez.
var (
	ErrNotFound                    = errors.New("recurso no encontrado")
	ErrInvalidInput                = errors.New("entrada inválida")
	ErrProductNotFound             = errors.New("el producto especificado no existe")
	ErrInventoryAlreadyInitialized = errors.New("el inventario para este producto ya está inicializado")
	ErrInsufficientStock           = errors.New("stock insuficiente")
	ErrConstraint                  = errors.New("restricción de integridad violada")
	ErrTransactionFailed           = errors.New("error al manejar venta")
)
