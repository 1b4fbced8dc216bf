package repository

import (
	"context"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
)

// CustomOrderRepository is the persistence boundary for quote
// requests. Find methods return (nil, nil) when the row is missing.
type CustomOrderRepository interface {
	// Create inserts the custom order and its size breakdown in a
	// single transaction.
	Create(ctx context.Context, order *models.CustomOrder, sizes []models.CustomOrderSize) error

	FindByID(ctx context.Context, id int64) (*models.CustomOrder, error)
	Sizes(ctx context.Context, customOrderID int64) ([]models.CustomOrderSize, error)
	ListByUser(ctx context.Context, userID int64) ([]models.CustomOrder, error)
	ListAll(ctx context.Context, status string) ([]models.CustomOrder, error)
	UpdateStatus(ctx context.Context, id int64, status models.CustomOrderStatus) error
}
