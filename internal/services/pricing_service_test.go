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

func TestQuoteFor_AddsBaseAndFabric(t *testing.T) {
	repo := new(mocks.MockPricingRepository)
	svc := services.NewPricingService(repo)

	repo.On("FindActive", mock.Anything, models.PriceTypeBase, "child").
		Return(&models.CustomOrderPricing{PriceType: models.PriceTypeBase, Name: "child", Price: 5000, IsActive: true}, nil)
	repo.On("FindActive", mock.Anything, models.PriceTypeFabric, "Cotton").
		Return(&models.CustomOrderPricing{PriceType: models.PriceTypeFabric, Name: "Cotton", Price: 2000, IsActive: true}, nil)

	quote, err := svc.QuoteFor(context.Background(), "child", "Cotton", 3)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), quote.BasePrice)
	assert.Equal(t, int64(2000), quote.FabricPrice)
	assert.Equal(t, int64(7000), quote.UnitPrice)
	assert.Equal(t, int64(21000), quote.TotalPrice)
}

func TestQuoteFor_MissingBasePrice(t *testing.T) {
	repo := new(mocks.MockPricingRepository)
	svc := services.NewPricingService(repo)

	repo.On("FindActive", mock.Anything, models.PriceTypeBase, "adult").Return(nil, nil)

	_, err := svc.QuoteFor(context.Background(), "adult", "Cotton", 1)

	assert.ErrorIs(t, err, services.ErrPricingUnavailable)
}

func TestQuoteFor_InactiveFabricFailsQuote(t *testing.T) {
	repo := new(mocks.MockPricingRepository)
	svc := services.NewPricingService(repo)

	repo.On("FindActive", mock.Anything, models.PriceTypeBase, "child").
		Return(&models.CustomOrderPricing{PriceType: models.PriceTypeBase, Name: "child", Price: 5000, IsActive: true}, nil)
	// FindActive only returns active rows, so a deactivated fabric
	// looks like a missing one.
	repo.On("FindActive", mock.Anything, models.PriceTypeFabric, "Silk").Return(nil, nil)

	_, err := svc.QuoteFor(context.Background(), "child", "Silk", 2)

	assert.ErrorIs(t, err, services.ErrPricingUnavailable)
}

func TestQuoteFor_BadQuantity(t *testing.T) {
	repo := new(mocks.MockPricingRepository)
	svc := services.NewPricingService(repo)

	_, err := svc.QuoteFor(context.Background(), "child", "Cotton", 0)
	assert.ErrorIs(t, err, services.ErrBadQuantity)

	_, err = svc.QuoteFor(context.Background(), "child", "Cotton", -3)
	assert.ErrorIs(t, err, services.ErrBadQuantity)

	repo.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
}
