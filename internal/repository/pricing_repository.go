package repository

import (
	"context"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
)

// PricingRepository looks up entries of the custom-order price table.
type PricingRepository interface {
	// FindActive returns the active pricing entry for (priceType, name),
	// or (nil, nil) when the entry is missing or deactivated.
	FindActive(ctx context.Context, priceType, name string) (*models.CustomOrderPricing, error)
}
