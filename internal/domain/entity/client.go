package entity

// Client representa un cliente de la tienda.
type Client struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string
}
