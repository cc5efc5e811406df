// Package models defines server-side data models persisted in the database.
package models

import "time"

// Category groups products.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// Supplier is the vendor a product is bought from.
type Supplier struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" validate:"required,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=50"`
	Address      string `json:"address" validate:"max=500"`
}

// Product is a catalog item. Images holds the bucket path of the product
// image ("" when the product has none).
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	SupplierID  *int64    `json:"supplier_id,omitempty"`
	Images      string    `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Related rows, filled when the read joins them.
	Category *Category `json:"category,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}
