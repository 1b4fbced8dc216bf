package mocks

import (
	"context"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

// Checkout plays the transaction: the expectation's first return value
// is the cart as the locked read would see it, the second is the
// commit error. The build callback runs against those lines exactly
// like the real repository runs it inside the transaction.
func (m *MockOrderRepository) Checkout(ctx context.Context, userID int64, build repository.CheckoutFunc) (*models.Order, []models.OrderItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(1)
	}
	order, items, err := build(args.Get(0).([]models.CheckoutItem))
	if err != nil {
		return nil, nil, err
	}
	if err := args.Error(1); err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context, status string) ([]models.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Items(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) LatestPayment(ctx context.Context, orderID int64) (*models.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockOrderRepository) FindPayment(ctx context.Context, id int64) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockOrderRepository) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockOrderRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, paymentID int64, status models.PaymentStatus) error {
	args := m.Called(ctx, paymentID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ActivePaymentMethod(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) FindActive(ctx context.Context, priceType, name string) (*models.CustomOrderPricing, error) {
	args := m.Called(ctx, priceType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomOrderPricing), args.Error(1)
}

type MockCustomOrderRepository struct {
	mock.Mock
}

func (m *MockCustomOrderRepository) Create(ctx context.Context, order *models.CustomOrder, sizes []models.CustomOrderSize) error {
	args := m.Called(ctx, order, sizes)
	return args.Error(0)
}

func (m *MockCustomOrderRepository) FindByID(ctx context.Context, id int64) (*models.CustomOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) Sizes(ctx context.Context, customOrderID int64) ([]models.CustomOrderSize, error) {
	args := m.Called(ctx, customOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomOrderSize), args.Error(1)
}

func (m *MockCustomOrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.CustomOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) ListAll(ctx context.Context, status string) ([]models.CustomOrder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.CustomOrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
