package models

import "time"

// Cart is the model for the 'carts' table (one cart per user).
type Cart struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem is the model for the 'cart_items' table.
// A cart holds at most one row per product size.
type CartItem struct {
	ID            int64     `json:"id" db:"id"`
	CartID        int64     `json:"cartId" db:"cart_id"`
	ProductID     int64     `json:"productId" db:"product_id"`
	ProductSizeID int64     `json:"productSizeId" db:"product_size_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// CheckoutItem is a cart row joined with the current catalog state,
// as read inside the checkout transaction. UnitPrice already includes
// the size's price adjustment.
type CheckoutItem struct {
	ProductID     int64
	ProductSizeID int64
	ProductName   string
	SizeLabel     string
	Quantity      int
	UnitPrice     int64
	StockQuantity int
	IsAvailable   bool
}
