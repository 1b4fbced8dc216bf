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

var (
	ErrCustomOrderNotFound = errors.New("custom order not found")
	ErrNoSizes             = errors.New("at least one size with a quantity is required")
)

// CustomOrderSizeInput is one line of the requested size breakdown.
type CustomOrderSizeInput struct {
	Label    string
	Quantity int
}

// CustomOrderInput is a quote request as received from the customer.
type CustomOrderInput struct {
	CustomerType string
	Fabric       string
	Notes        string
	Sizes        []CustomOrderSizeInput
}

// CustomOrderService handles bespoke uniform quote requests. Prices
// come from the pricing calculator and are snapshotted onto the
// order, mirroring how catalog orders snapshot item prices.
type CustomOrderService struct {
	repo    repository.CustomOrderRepository
	pricing *PricingService
}

func NewCustomOrderService(repo repository.CustomOrderRepository, pricing *PricingService) *CustomOrderService {
	return &CustomOrderService{repo: repo, pricing: pricing}
}

func newCustomOrderReference() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("CU-%s-%s", time.Now().Format("20060102"), ref[:8])
}

// Request prices and persists a new quote request. The total quantity
// is the sum of the per-size quantities.
func (s *CustomOrderService) Request(ctx context.Context, userID int64, in CustomOrderInput) (*models.CustomOrder, error) {
	var sizes []models.CustomOrderSize
	quantity := 0
	for _, size := range in.Sizes {
		if size.Quantity < 1 || strings.TrimSpace(size.Label) == "" {
			continue
		}
		quantity += size.Quantity
		sizes = append(sizes, models.CustomOrderSize{
			Label:    size.Label,
			Quantity: size.Quantity,
		})
	}
	if quantity < 1 {
		return nil, ErrNoSizes
	}

	quote, err := s.pricing.QuoteFor(ctx, in.CustomerType, in.Fabric, quantity)
	if err != nil {
		return nil, err
	}

	order := &models.CustomOrder{
		Reference:    newCustomOrderReference(),
		UserID:       userID,
		CustomerType: in.CustomerType,
		Fabric:       in.Fabric,
		Quantity:     quantity,
		UnitPrice:    quote.UnitPrice,
		TotalPrice:   quote.TotalPrice,
		Notes:        in.Notes,
		Status:       models.CustomOrderStatusRequested,
	}
	if err := s.repo.Create(ctx, order, sizes); err != nil {
		return nil, err
	}
	order.Sizes = sizes
	return order, nil
}

// ListForCustomer returns the customer's own quote requests.
func (s *CustomOrderService) ListForCustomer(ctx context.Context, userID int64) ([]models.CustomOrder, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ForCustomer returns one quote request with its size breakdown,
// enforcing ownership.
func (s *CustomOrderService) ForCustomer(ctx context.Context, userID, id int64) (*models.CustomOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrCustomOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	order.Sizes, err = s.repo.Sizes(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListAll returns every quote request, optionally filtered (admin).
func (s *CustomOrderService) ListAll(ctx context.Context, status string) ([]models.CustomOrder, error) {
	return s.repo.ListAll(ctx, status)
}

// ForAdmin returns any quote request with its size breakdown.
func (s *CustomOrderService) ForAdmin(ctx context.Context, id int64) (*models.CustomOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrCustomOrderNotFound
	}
	order.Sizes, err = s.repo.Sizes(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus is the admin action on a quote request. Confirmed and
// declined are terminal.
func (s *CustomOrderService) UpdateStatus(ctx context.Context, id int64, target models.CustomOrderStatus) (*models.CustomOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrCustomOrderNotFound
	}

	legal := false
	switch order.Status {
	case models.CustomOrderStatusRequested:
		legal = target == models.CustomOrderStatusQuoted ||
			target == models.CustomOrderStatusConfirmed ||
			target == models.CustomOrderStatusDeclined
	case models.CustomOrderStatusQuoted:
		legal = target == models.CustomOrderStatusConfirmed ||
			target == models.CustomOrderStatusDeclined
	}
	if !legal {
		return nil, fmt.Errorf("%w: custom order %s -> %s", ErrInvalidTransition, order.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	order.Status = target
	return order, nil
}
