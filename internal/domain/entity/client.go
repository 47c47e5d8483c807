package entity

import "time"

// Client representa un cliente de la farmacia (requerido en salidas y facturas).
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
