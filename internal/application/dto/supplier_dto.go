package dto

// CreateSupplierRequest body para POST /proveedores.
type CreateSupplierRequest struct {
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"id_proveedor"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
}
