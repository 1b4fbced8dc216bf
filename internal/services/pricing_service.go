package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository"
)

// ErrPricingUnavailable means a requested (type, name) pair has no
// active entry in the price table. We fail the quote instead of
// silently defaulting.
var ErrPricingUnavailable = errors.New("pricing unavailable")

// ErrBadQuantity rejects quotes for less than one piece.
var ErrBadQuantity = errors.New("quantity must be at least 1")

// Quote is a priced custom-order request: base price by customer
// type plus fabric surcharge, times quantity.
type Quote struct {
	BasePrice   int64 `json:"basePrice"`
	FabricPrice int64 `json:"fabricPrice"`
	UnitPrice   int64 `json:"unitPrice"`
	TotalPrice  int64 `json:"totalPrice"`
}

// PricingService computes custom-order quotes from the admin-managed
// price table.
type PricingService struct {
	repo repository.PricingRepository
}

func NewPricingService(repo repository.PricingRepository) *PricingService {
	return &PricingService{repo: repo}
}

// QuoteFor prices one unit for (customerType, fabric) and multiplies
// by quantity. Both components must have an active entry; an inactive
// or missing one fails the whole quote.
func (s *PricingService) QuoteFor(ctx context.Context, customerType, fabric string, quantity int) (*Quote, error) {
	if quantity < 1 {
		return nil, ErrBadQuantity
	}

	base, err := s.repo.FindActive(ctx, models.PriceTypeBase, customerType)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%w: no active base price for customer type %q", ErrPricingUnavailable, customerType)
	}

	fabricEntry, err := s.repo.FindActive(ctx, models.PriceTypeFabric, fabric)
	if err != nil {
		return nil, err
	}
	if fabricEntry == nil {
		return nil, fmt.Errorf("%w: no active price for fabric %q", ErrPricingUnavailable, fabric)
	}

	unit := base.Price + fabricEntry.Price
	return &Quote{
		BasePrice:   base.Price,
		FabricPrice: fabricEntry.Price,
		UnitPrice:   unit,
		TotalPrice:  unit * int64(quantity),
	}, nil
}
