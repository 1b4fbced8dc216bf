package services_test

import (
	"context"
	"testing"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/mocks"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomOrderService(orderRepo *mocks.MockCustomOrderRepository, pricingRepo *mocks.MockPricingRepository) *services.CustomOrderService {
	return services.NewCustomOrderService(orderRepo, services.NewPricingService(pricingRepo))
}

func stubPricing(repo *mocks.MockPricingRepository) {
	repo.On("FindActive", mock.Anything, models.PriceTypeBase, "child").
		Return(&models.CustomOrderPricing{PriceType: models.PriceTypeBase, Name: "child", Price: 5000, IsActive: true}, nil)
	repo.On("FindActive", mock.Anything, models.PriceTypeFabric, "Cotton").
		Return(&models.CustomOrderPricing{PriceType: models.PriceTypeFabric, Name: "Cotton", Price: 2000, IsActive: true}, nil)
}

func TestRequest_SnapshotsQuote(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	stubPricing(pricingRepo)
	orderRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Request(context.Background(), 1, services.CustomOrderInput{
		CustomerType: "child",
		Fabric:       "Cotton",
		Sizes: []services.CustomOrderSizeInput{
			{Label: "S", Quantity: 1},
			{Label: "M", Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, order.Quantity, "quantity is the sum of the size lines")
	assert.Equal(t, int64(7000), order.UnitPrice)
	assert.Equal(t, int64(21000), order.TotalPrice)
	assert.Equal(t, models.CustomOrderStatusRequested, order.Status)
	assert.Regexp(t, `^CU-\d{8}-[0-9A-F]{8}$`, order.Reference)
	require.Len(t, order.Sizes, 2)
	orderRepo.AssertExpectations(t)
}

func TestRequest_IgnoresBlankSizeLines(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	stubPricing(pricingRepo)
	orderRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Request(context.Background(), 1, services.CustomOrderInput{
		CustomerType: "child",
		Fabric:       "Cotton",
		Sizes: []services.CustomOrderSizeInput{
			{Label: "M", Quantity: 3},
			{Label: "", Quantity: 5},
			{Label: "L", Quantity: 0},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, order.Quantity)
	assert.Len(t, order.Sizes, 1)
}

func TestRequest_NoUsableSizes(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	_, err := svc.Request(context.Background(), 1, services.CustomOrderInput{
		CustomerType: "child",
		Fabric:       "Cotton",
		Sizes:        []services.CustomOrderSizeInput{{Label: "", Quantity: 0}},
	})

	assert.ErrorIs(t, err, services.ErrNoSizes)
	pricingRepo.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequest_FailsWhenPricingMissing(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	pricingRepo.On("FindActive", mock.Anything, models.PriceTypeBase, "adult").Return(nil, nil)

	_, err := svc.Request(context.Background(), 1, services.CustomOrderInput{
		CustomerType: "adult",
		Fabric:       "Cotton",
		Sizes:        []services.CustomOrderSizeInput{{Label: "XL", Quantity: 1}},
	})

	assert.ErrorIs(t, err, services.ErrPricingUnavailable)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestForCustomer_Ownership(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	orderRepo.On("FindByID", mock.Anything, int64(7)).
		Return(&models.CustomOrder{ID: 7, UserID: 1}, nil)
	orderRepo.On("FindByID", mock.Anything, int64(8)).Return(nil, nil)

	_, err := svc.ForCustomer(context.Background(), 2, 7)
	assert.ErrorIs(t, err, services.ErrNotOwner)

	_, err = svc.ForCustomer(context.Background(), 2, 8)
	assert.ErrorIs(t, err, services.ErrCustomOrderNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	testCases := []struct {
		name    string
		current models.CustomOrderStatus
		target  models.CustomOrderStatus
		legal   bool
	}{
		{"requested to quoted", models.CustomOrderStatusRequested, models.CustomOrderStatusQuoted, true},
		{"requested straight to confirmed", models.CustomOrderStatusRequested, models.CustomOrderStatusConfirmed, true},
		{"requested to declined", models.CustomOrderStatusRequested, models.CustomOrderStatusDeclined, true},
		{"quoted to confirmed", models.CustomOrderStatusQuoted, models.CustomOrderStatusConfirmed, true},
		{"quoted to declined", models.CustomOrderStatusQuoted, models.CustomOrderStatusDeclined, true},
		{"quoted back to requested", models.CustomOrderStatusQuoted, models.CustomOrderStatusRequested, false},
		{"confirmed is terminal", models.CustomOrderStatusConfirmed, models.CustomOrderStatusDeclined, false},
		{"declined is terminal", models.CustomOrderStatusDeclined, models.CustomOrderStatusQuoted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := new(mocks.MockCustomOrderRepository)
			pricingRepo := new(mocks.MockPricingRepository)
			svc := newCustomOrderService(orderRepo, pricingRepo)

			orderRepo.On("FindByID", mock.Anything, int64(7)).
				Return(&models.CustomOrder{ID: 7, Status: tc.current}, nil)
			if tc.legal {
				orderRepo.On("UpdateStatus", mock.Anything, int64(7), tc.target).Return(nil)
			}

			order, err := svc.UpdateStatus(context.Background(), 7, tc.target)

			if tc.legal {
				require.NoError(t, err)
				assert.Equal(t, tc.target, order.Status)
			} else {
				assert.ErrorIs(t, err, services.ErrInvalidTransition)
				orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateStatus_SnapshotUnaffectedByPricingChanges(t *testing.T) {
	orderRepo := new(mocks.MockCustomOrderRepository)
	pricingRepo := new(mocks.MockPricingRepository)
	svc := newCustomOrderService(orderRepo, pricingRepo)

	// The stored snapshot is what UpdateStatus returns; the pricing
	// table is never consulted again after the request was created.
	orderRepo.On("FindByID", mock.Anything, int64(7)).Return(&models.CustomOrder{
		ID:         7,
		Status:     models.CustomOrderStatusRequested,
		UnitPrice:  7000,
		TotalPrice: 21000,
	}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(7), models.CustomOrderStatusQuoted).Return(nil)

	order, err := svc.UpdateStatus(context.Background(), 7, models.CustomOrderStatusQuoted)

	require.NoError(t, err)
	assert.Equal(t, int64(7000), order.UnitPrice)
	assert.Equal(t, int64(21000), order.TotalPrice)
	pricingRepo.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
}
