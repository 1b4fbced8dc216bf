package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
)

// PricingRepository is the MySQL implementation of
// repository.PricingRepository.
type PricingRepository struct {
	db *sql.DB
}

func NewPricingRepository(db *sql.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// FindActive looks up an active pricing entry. Inactive entries are
// treated the same as missing ones: new quotes must not see them.
func (r *PricingRepository) FindActive(ctx context.Context, priceType, name string) (*models.CustomOrderPricing, error) {
	var p models.CustomOrderPricing
	err := r.db.QueryRowContext(ctx, `
		SELECT id, price_type, name, price, is_active, created_at, updated_at
		FROM custom_order_pricings
		WHERE price_type = ? AND name = ? AND is_active = TRUE`,
		priceType, name).
		Scan(&p.ID, &p.PriceType, &p.Name, &p.Price, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan pricing entry: %w", err)
	}
	return &p, nil
}
