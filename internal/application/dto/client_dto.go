package dto

// CreateClientRequest body para POST /clientes.
type CreateClientRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID      int64  `json:"id_cliente"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
}
