package models

import "time"

// Product is the model for the 'products' table.
// Prices are stored in integer kyat; there are no decimal sub-units.
type Product struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	BasePrice   int64  `json:"basePrice" db:"base_price"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	IsActive    bool   `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Sizes is filled by the product detail handler, not scanned.
	Sizes []ProductSize `json:"sizes,omitempty" db:"-"`
}

// ProductSize is the model for the 'product_sizes' table.
// PriceAdjustment is a signed delta on the product's base price,
// so the effective unit price is base_price + price_adjustment.
type ProductSize struct {
	ID              int64  `json:"id" db:"id"`
	ProductID       int64  `json:"productId" db:"product_id"`
	Label           string `json:"label" db:"label"`
	PriceAdjustment int64  `json:"priceAdjustment" db:"price_adjustment"`
	StockQuantity   int    `json:"stockQuantity" db:"stock_quantity"`
	IsAvailable     bool   `json:"isAvailable" db:"is_available"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
