package entity

import "time"

// Category representa una categoría de productos de la farmacia.
type Category struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
