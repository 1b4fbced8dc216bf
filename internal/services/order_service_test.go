package services_test

import (
	"context"
	"testing"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/mocks"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckout_EmptyCart(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("Checkout", mock.Anything, int64(1)).Return([]models.CheckoutItem{}, nil)

	order, items, err := svc.Checkout(context.Background(), 1, "")

	assert.ErrorIs(t, err, services.ErrCartEmpty)
	assert.Nil(t, order)
	assert.Nil(t, items)
}

func TestCheckout_UnavailableItemAbortsTransaction(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	// One perfectly fine line plus one deactivated size, as seen by
	// the locked read inside the checkout transaction: the whole
	// checkout must fail and nothing may be written.
	repo.On("Checkout", mock.Anything, int64(1)).Return([]models.CheckoutItem{
		{ProductID: 10, ProductSizeID: 100, ProductName: "Primary Shirt", SizeLabel: "M",
			Quantity: 2, UnitPrice: 5000, StockQuantity: 20, IsAvailable: true},
		{ProductID: 11, ProductSizeID: 110, ProductName: "Primary Longyi", SizeLabel: "L",
			Quantity: 1, UnitPrice: 6000, StockQuantity: 20, IsAvailable: false},
	}, nil)

	order, _, err := svc.Checkout(context.Background(), 1, "")

	assert.ErrorIs(t, err, services.ErrItemUnavailable)
	assert.Nil(t, order)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("Checkout", mock.Anything, int64(1)).Return([]models.CheckoutItem{
		{ProductID: 10, ProductSizeID: 100, ProductName: "Primary Shirt", SizeLabel: "M",
			Quantity: 5, UnitPrice: 5000, StockQuantity: 3, IsAvailable: true},
	}, nil)

	order, _, err := svc.Checkout(context.Background(), 1, "")

	assert.ErrorIs(t, err, services.ErrItemUnavailable)
	assert.Nil(t, order)
}

func TestCheckout_SnapshotsPricesAndTotals(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("Checkout", mock.Anything, int64(7)).Return([]models.CheckoutItem{
		{ProductID: 10, ProductSizeID: 100, ProductName: "Primary Shirt", SizeLabel: "M",
			Quantity: 2, UnitPrice: 5500, StockQuantity: 20, IsAvailable: true},
		{ProductID: 11, ProductSizeID: 110, ProductName: "Primary Longyi", SizeLabel: "L",
			Quantity: 3, UnitPrice: 6000, StockQuantity: 20, IsAvailable: true},
	}, nil)

	order, items, err := svc.Checkout(context.Background(), 7, "deliver to school office")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(11000), items[0].TotalPrice)
	assert.Equal(t, int64(18000), items[1].TotalPrice)
	assert.Equal(t, int64(29000), order.TotalAmount, "order total is the sum of the line snapshots")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStateUnpaid, order.PaymentStatus)
	assert.Equal(t, "deliver to school office", order.Notes)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, order.OrderNumber)
	repo.AssertExpectations(t)
}

func TestCheckout_StockConflictDuringCommit(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("Checkout", mock.Anything, int64(1)).Return([]models.CheckoutItem{
		{ProductID: 10, ProductSizeID: 100, ProductName: "Primary Shirt", SizeLabel: "M",
			Quantity: 1, UnitPrice: 5000, StockQuantity: 1, IsAvailable: true},
	}, repository.ErrStockConflict)

	_, _, err := svc.Checkout(context.Background(), 1, "")

	assert.ErrorIs(t, err, services.ErrItemUnavailable)
}

func TestOrderForCustomer_Ownership(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(&models.Order{ID: 42, UserID: 1}, nil)
	repo.On("FindByID", mock.Anything, int64(43)).Return(nil, nil)

	_, _, _, err := svc.OrderForCustomer(context.Background(), 2, 42)
	assert.ErrorIs(t, err, services.ErrNotOwner, "someone else's order is forbidden, not hidden")

	_, _, _, err = svc.OrderForCustomer(context.Background(), 2, 43)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestSubmitPayment_BadTransactionRef(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	_, err := svc.SubmitPayment(context.Background(), 1, 42, 1, "123456")
	assert.ErrorIs(t, err, services.ErrBadTransactionRef)

	_, err = svc.SubmitPayment(context.Background(), 1, 42, 1, "12")
	assert.ErrorIs(t, err, services.ErrBadTransactionRef)
}

func TestSubmitPayment_GateFromLatestPayment(t *testing.T) {
	order := &models.Order{ID: 42, UserID: 1, Status: models.OrderStatusPending, TotalAmount: 29000}

	testCases := []struct {
		name    string
		latest  *models.Payment
		wantErr error
	}{
		{"second payment while one is pending", &models.Payment{Status: models.PaymentStatusPending}, services.ErrPaymentOutstanding},
		{"payment against a paid order", &models.Payment{Status: models.PaymentStatusPaid}, services.ErrAlreadyPaid},
		{"payment against a refunded order", &models.Payment{Status: models.PaymentStatusRefunded}, services.ErrAlreadyPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			svc := services.NewOrderService(repo)

			repo.On("FindByID", mock.Anything, int64(42)).Return(order, nil)
			repo.On("LatestPayment", mock.Anything, int64(42)).Return(tc.latest, nil)

			_, err := svc.SubmitPayment(context.Background(), 1, 42, 1, "1234")

			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitPayment_RetryAfterRejection(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).
		Return(&models.Order{ID: 42, UserID: 1, Status: models.OrderStatusPending, TotalAmount: 29000}, nil)
	repo.On("LatestPayment", mock.Anything, int64(42)).
		Return(&models.Payment{Status: models.PaymentStatusFailed}, nil)
	repo.On("ActivePaymentMethod", mock.Anything, int64(3)).
		Return(&models.PaymentMethod{ID: 3, IsActive: true}, nil)
	repo.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.SubmitPayment(context.Background(), 1, 42, 3, "1234")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, int64(29000), payment.Amount, "payment amount is fixed to the order total")
	assert.Equal(t, "1234", payment.TransactionRef)
	repo.AssertExpectations(t)
}

func TestSubmitPayment_CancelledOrder(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).
		Return(&models.Order{ID: 42, UserID: 1, Status: models.OrderStatusCancelled}, nil)

	_, err := svc.SubmitPayment(context.Background(), 1, 42, 1, "1234")

	assert.ErrorIs(t, err, services.ErrOrderCancelled)
}

func TestSubmitPayment_InactiveMethod(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).
		Return(&models.Order{ID: 42, UserID: 1, Status: models.OrderStatusPending}, nil)
	repo.On("LatestPayment", mock.Anything, int64(42)).Return(nil, nil)
	repo.On("ActivePaymentMethod", mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.SubmitPayment(context.Background(), 1, 42, 9, "1234")

	assert.ErrorIs(t, err, services.ErrBadPaymentMethod)
}

func TestUpdateOrderStatus_RequiresPaymentBeforeProcessing(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(&models.Order{
		ID:            42,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatePending,
	}, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), 42, models.OrderStatusProcessing)

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatus_PaidOrderAdvances(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(&models.Order{
		ID:            42,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatePaid,
	}, nil)
	repo.On("UpdateOrderStatus", mock.Anything, int64(42), models.OrderStatusProcessing).Return(nil)

	order, err := svc.UpdateOrderStatus(context.Background(), 42, models.OrderStatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatus_DeliveredCannotBeCancelled(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(&models.Order{
		ID:            42,
		Status:        models.OrderStatusDelivered,
		PaymentStatus: models.PaymentStatePaid,
	}, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), 42, models.OrderStatusCancelled)

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestUpdatePaymentStatus_Verification(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindPayment", mock.Anything, int64(5)).
		Return(&models.Payment{ID: 5, OrderID: 42, Status: models.PaymentStatusPending}, nil)
	repo.On("UpdatePaymentStatus", mock.Anything, int64(5), models.PaymentStatusPaid).Return(nil)

	payment, err := svc.UpdatePaymentStatus(context.Background(), 5, models.PaymentStatusPaid)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	repo.AssertExpectations(t)
}

func TestUpdatePaymentStatus_RejectedPaymentStaysClosed(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindPayment", mock.Anything, int64(5)).
		Return(&models.Payment{ID: 5, OrderID: 42, Status: models.PaymentStatusFailed}, nil)

	_, err := svc.UpdatePaymentStatus(context.Background(), 5, models.PaymentStatusPaid)

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatus_NotFound(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	svc := services.NewOrderService(repo)

	repo.On("FindPayment", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.UpdatePaymentStatus(context.Background(), 99, models.PaymentStatusPaid)

	assert.ErrorIs(t, err, services.ErrPaymentNotFound)
}
