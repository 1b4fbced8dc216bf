package repository

import (
	"context"
	"errors"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
)

// ErrStockConflict is returned by Checkout when a stock decrement
// inside the checkout transaction would go negative or the size was
// deactivated after the cart read. The whole transaction is rolled
// back.
var ErrStockConflict = errors.New("insufficient stock")

// CheckoutFunc builds the order and its item snapshots from the cart
// lines read inside the checkout transaction. Returning an error
// aborts the transaction.
type CheckoutFunc func(cartItems []models.CheckoutItem) (*models.Order, []models.OrderItem, error)

// OrderRepository is the persistence boundary for the order/payment
// lifecycle. Find methods return (nil, nil) when the row does not
// exist so services can distinguish "missing" from a database error.
type OrderRepository interface {
	// Checkout runs the whole checkout in a single transaction: read
	// the cart with the size rows locked, let build validate and
	// snapshot the lines, insert the order and its items, decrement
	// stock and remove the ordered lines from the cart. An empty cart
	// is passed to build as an empty slice.
	Checkout(ctx context.Context, userID int64, build CheckoutFunc) (*models.Order, []models.OrderItem, error)

	FindByID(ctx context.Context, id int64) (*models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
	ListAll(ctx context.Context, status string) ([]models.Order, error)
	Items(ctx context.Context, orderID int64) ([]models.OrderItem, error)

	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error

	// LatestPayment returns the most recent payment row for an order,
	// or (nil, nil) when none was ever submitted.
	LatestPayment(ctx context.Context, orderID int64) (*models.Payment, error)
	FindPayment(ctx context.Context, id int64) (*models.Payment, error)
	ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error)

	// CreatePayment inserts a payment row and re-derives the parent
	// order's payment_status from it, in one transaction.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// UpdatePaymentStatus changes a payment row's status and re-derives
	// the parent order's payment_status, in one transaction.
	UpdatePaymentStatus(ctx context.Context, paymentID int64, status models.PaymentStatus) error

	// ActivePaymentMethod returns the payment method if it exists and
	// is active, or (nil, nil) otherwise.
	ActivePaymentMethod(ctx context.Context, id int64) (*models.PaymentMethod, error)
}
