package models

import "time"

// CustomOrderStatus tracks a quote request through the back office.
type CustomOrderStatus string

const (
	CustomOrderStatusRequested CustomOrderStatus = "requested"
	CustomOrderStatusQuoted    CustomOrderStatus = "quoted"
	CustomOrderStatusConfirmed CustomOrderStatus = "confirmed"
	CustomOrderStatusDeclined  CustomOrderStatus = "declined"
)

// Pricing entry types for the custom-order price table.
const (
	PriceTypeBase   = "base"
	PriceTypeFabric = "fabric"
)

// CustomOrder is the model for the 'custom_orders' table (a bespoke
// uniform quote request). UnitPrice and TotalPrice are snapshots of
// the pricing table at quote time; deactivating a pricing entry later
// never changes them.
type CustomOrder struct {
	ID           int64             `json:"id" db:"id"`
	Reference    string            `json:"reference" db:"reference"`
	UserID       int64             `json:"userId" db:"user_id"`
	CustomerType string            `json:"customerType" db:"customer_type"`
	Fabric       string            `json:"fabric" db:"fabric"`
	Quantity     int               `json:"quantity" db:"quantity"`
	UnitPrice    int64             `json:"unitPrice" db:"unit_price"`
	TotalPrice   int64             `json:"totalPrice" db:"total_price"`
	Notes        string            `json:"notes" db:"notes"`
	Status       CustomOrderStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Sizes is filled by the detail handlers, not scanned.
	Sizes []CustomOrderSize `json:"sizes,omitempty" db:"-"`
}

// CustomOrderSize is the model for the 'custom_order_sizes' table,
// the per-size quantity breakdown of a quote request.
type CustomOrderSize struct {
	ID            int64  `json:"id" db:"id"`
	CustomOrderID int64  `json:"customOrderId" db:"custom_order_id"`
	Label         string `json:"label" db:"label"`
	Quantity      int    `json:"quantity" db:"quantity"`
}

// CustomOrderPricing is the model for the 'custom_order_pricings'
// table: named price components, partitioned by type ('base' keyed by
// customer type, 'fabric' keyed by material), each independently
// activatable. Unique on (price_type, name).
type CustomOrderPricing struct {
	ID        int64  `json:"id" db:"id"`
	PriceType string `json:"priceType" db:"price_type"`
	Name      string `json:"name" db:"name"`
	Price     int64  `json:"price" db:"price"`
	IsActive  bool   `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
