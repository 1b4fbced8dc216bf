package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository"
	"github.com/google/uuid"
)

// Sentinel errors for the order/payment lifecycle. Handlers map these
// onto HTTP status codes; anything else is a 500.
var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrItemUnavailable    = errors.New("item unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrNotOwner           = errors.New("order belongs to another customer")
	ErrPaymentOutstanding = errors.New("a payment is already awaiting verification")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrOrderCancelled     = errors.New("order has been cancelled")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrBadPaymentMethod   = errors.New("payment method not found or inactive")
	ErrBadTransactionRef  = errors.New("transaction reference must be the last 4 digits")
)

// OrderService owns the order/payment state machine. All lifecycle
// decisions happen here against the pure rules in the models package;
// the repository only persists what the service already validated.
type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// newOrderNumber builds the customer-facing order number, distinct
// from the numeric row id.
func newOrderNumber() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), ref[:8])
}

// Checkout creates an order from the customer's current cart.
// The whole operation runs inside one repository transaction: cart
// read, validation, order + item inserts, stock deduction and cart
// clearing. An empty cart or a single unavailable size fails the
// creation and nothing is persisted.
func (s *OrderService) Checkout(ctx context.Context, userID int64, notes string) (*models.Order, []models.OrderItem, error) {
	order, items, err := s.repo.Checkout(ctx, userID, func(cartItems []models.CheckoutItem) (*models.Order, []models.OrderItem, error) {
		if len(cartItems) == 0 {
			return nil, nil, ErrCartEmpty
		}

		// 1. --- Validate every line before writing anything ---
		var orderItems []models.OrderItem
		var totalAmount int64
		for _, item := range cartItems {
			if !item.IsAvailable {
				return nil, nil, fmt.Errorf("%w: %s (%s) is no longer available",
					ErrItemUnavailable, item.ProductName, item.SizeLabel)
			}
			if item.StockQuantity < item.Quantity {
				return nil, nil, fmt.Errorf("%w: not enough stock for %s (%s)",
					ErrItemUnavailable, item.ProductName, item.SizeLabel)
			}

			// 2. --- Snapshot prices at order time ---
			lineTotal := item.UnitPrice * int64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:     item.ProductID,
				ProductSizeID: item.ProductSizeID,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				TotalPrice:    lineTotal,
			})
			totalAmount += lineTotal
		}

		return &models.Order{
			OrderNumber:   newOrderNumber(),
			UserID:        userID,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStateUnpaid,
			TotalAmount:   totalAmount,
			Notes:         notes,
		}, orderItems, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrStockConflict) {
			return nil, nil, fmt.Errorf("%w: an item sold out during checkout", ErrItemUnavailable)
		}
		return nil, nil, err
	}

	return order, items, nil
}

// ListForCustomer returns the customer's own orders, newest first.
func (s *OrderService) ListForCustomer(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// OrderForCustomer returns an order with its items and payment
// history, enforcing ownership. A wrong owner gets ErrNotOwner, which
// is deliberately distinct from ErrOrderNotFound.
func (s *OrderService) OrderForCustomer(ctx context.Context, userID, orderID int64) (*models.Order, []models.OrderItem, []models.Payment, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if order == nil {
		return nil, nil, nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, nil, nil, ErrNotOwner
	}
	return s.orderDetails(ctx, order)
}

// OrderForAdmin returns any order with its items and payments.
func (s *OrderService) OrderForAdmin(ctx context.Context, orderID int64) (*models.Order, []models.OrderItem, []models.Payment, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if order == nil {
		return nil, nil, nil, ErrOrderNotFound
	}
	return s.orderDetails(ctx, order)
}

func (s *OrderService) orderDetails(ctx context.Context, order *models.Order) (*models.Order, []models.OrderItem, []models.Payment, error) {
	items, err := s.repo.Items(ctx, order.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.repo.ListPayments(ctx, order.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return order, items, payments, nil
}

// ListAll returns every order, optionally filtered by status (admin).
func (s *OrderService) ListAll(ctx context.Context, status string) ([]models.Order, error) {
	return s.repo.ListAll(ctx, status)
}

// SubmitPayment records a bank-transfer claim against an order. At
// most one payment may be outstanding at a time; a retry is only
// allowed after the previous attempt was rejected.
func (s *OrderService) SubmitPayment(ctx context.Context, userID, orderID, methodID int64, transactionRef string) (*models.Payment, error) {
	if len(transactionRef) != 4 {
		return nil, ErrBadTransactionRef
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	if order.Status == models.OrderStatusCancelled {
		return nil, ErrOrderCancelled
	}

	// The payment gate is decided from the latest payment row, not
	// from the stored column, so history and state cannot disagree.
	latest, err := s.repo.LatestPayment(ctx, orderID)
	if err != nil {
		return nil, err
	}
	state := models.DerivePaymentState(latest)
	if !models.CanSubmitPayment(state) {
		if state == models.PaymentStatePending {
			return nil, ErrPaymentOutstanding
		}
		return nil, ErrAlreadyPaid
	}

	method, err := s.repo.ActivePaymentMethod(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrBadPaymentMethod
	}

	payment := &models.Payment{
		OrderID:         orderID,
		PaymentMethodID: methodID,
		TransactionRef:  transactionRef,
		Amount:          order.TotalAmount,
		Status:          models.PaymentStatusPending,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateOrderStatus is the admin action of advancing (or cancelling)
// an order. The target is validated against the computed legal step,
// never trusted: pending can only reach processing once the order is
// paid, and a delivered order can no longer be cancelled.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, target models.OrderStatus) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !models.CanTransitionOrder(order.Status, order.PaymentStatus, target) {
		return nil, fmt.Errorf("%w: %s -> %s (payment %s)",
			ErrInvalidTransition, order.Status, target, order.PaymentStatus)
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, target); err != nil {
		return nil, err
	}
	order.Status = target
	return order, nil
}

// UpdatePaymentStatus is the admin verification action. Marking a
// payment paid also flips the parent order's payment_status to paid,
// because that column is re-derived from the latest payment inside
// the repository transaction.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, paymentID int64, target models.PaymentStatus) (*models.Payment, error) {
	payment, err := s.repo.FindPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if !models.CanTransitionPayment(payment.Status, target) {
		return nil, fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, payment.Status, target)
	}

	if err := s.repo.UpdatePaymentStatus(ctx, paymentID, target); err != nil {
		return nil, err
	}
	payment.Status = target
	return payment, nil
}
