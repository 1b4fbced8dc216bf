package models

import "time"

// OrderStatus is the fulfilment side of the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentState is the payment side of the order lifecycle
// (orders.payment_status). It is always derived from the order's
// latest payment row, never written on its own.
type PaymentState string

const (
	PaymentStateUnpaid   PaymentState = "unpaid"
	PaymentStatePending  PaymentState = "pending"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateFailed   PaymentState = "failed"
	PaymentStateRefunded PaymentState = "refunded"
)

// Order is the model for the 'orders' table.
// TotalAmount is the sum of the item snapshots taken at checkout and
// is never recomputed afterwards.
type Order struct {
	ID            int64        `json:"id" db:"id"`
	OrderNumber   string       `json:"orderNumber" db:"order_number"`
	UserID        int64        `json:"userId" db:"user_id"`
	Status        OrderStatus  `json:"status" db:"status"`
	PaymentStatus PaymentState `json:"paymentStatus" db:"payment_status"`
	TotalAmount   int64        `json:"totalAmount" db:"total_amount"`
	Notes         string       `json:"notes" db:"notes"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem is the model for the 'order_items' table.
// UnitPrice and TotalPrice are snapshots taken at order time, so
// later catalog price changes never alter historical orders.
type OrderItem struct {
	ID            int64     `json:"id" db:"id"`
	OrderID       int64     `json:"orderId" db:"order_id"`
	ProductID     int64     `json:"productId" db:"product_id"`
	ProductSizeID int64     `json:"productSizeId" db:"product_size_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	UnitPrice     int64     `json:"unitPrice" db:"unit_price"`
	TotalPrice    int64     `json:"totalPrice" db:"total_price"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

//
// --- Lifecycle rules ---
//
// These are the single source of truth for which transitions are
// legal. Services consult them before touching the database, and the
// tests exercise them directly.
//

// CanTransitionOrder reports whether an admin may move an order from
// 'current' to 'target', given the order's payment state.
// pending -> processing requires the order to be paid first;
// processing -> delivered is unconditional; cancellation is allowed
// from pending/processing but never after delivery.
func CanTransitionOrder(current OrderStatus, payment PaymentState, target OrderStatus) bool {
	switch current {
	case OrderStatusPending:
		if target == OrderStatusProcessing {
			return payment == PaymentStatePaid
		}
		return target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	default:
		// delivered and cancelled are terminal
		return false
	}
}

// NextOrderStatus computes the one legal forward step for an order,
// or "" when the order can only be cancelled (or is terminal).
func NextOrderStatus(current OrderStatus, payment PaymentState) OrderStatus {
	switch current {
	case OrderStatusPending:
		if payment == PaymentStatePaid {
			return OrderStatusProcessing
		}
	case OrderStatusProcessing:
		return OrderStatusDelivered
	}
	return ""
}

// CanSubmitPayment reports whether a customer may submit a new
// payment for an order in the given payment state. A retry is allowed
// after a rejection, but never while a payment is awaiting
// verification or after the order has been paid.
func CanSubmitPayment(state PaymentState) bool {
	return state == PaymentStateUnpaid || state == PaymentStateFailed
}

// DerivePaymentState maps an order's latest payment row onto the
// order-level payment state. A nil payment means nothing was ever
// submitted.
func DerivePaymentState(latest *Payment) PaymentState {
	if latest == nil {
		return PaymentStateUnpaid
	}
	switch latest.Status {
	case PaymentStatusPaid:
		return PaymentStatePaid
	case PaymentStatusFailed:
		return PaymentStateFailed
	case PaymentStatusRefunded:
		return PaymentStateRefunded
	default:
		return PaymentStatePending
	}
}
