package entity

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID      int64
	Name    string
	Contact string
	Phone   string
	Email   string
	Address string
}
