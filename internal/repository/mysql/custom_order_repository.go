package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
)

// CustomOrderRepository is the MySQL implementation of
// repository.CustomOrderRepository.
type CustomOrderRepository struct {
	db *sql.DB
}

func NewCustomOrderRepository(db *sql.DB) *CustomOrderRepository {
	return &CustomOrderRepository{db: db}
}

// Create inserts the quote request and its size breakdown in one
// transaction.
func (r *CustomOrderRepository) Create(ctx context.Context, order *models.CustomOrder, sizes []models.CustomOrderSize) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO custom_orders
		(reference, user_id, customer_type, fabric, quantity, unit_price, total_price, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.Reference, order.UserID, order.CustomerType, order.Fabric,
		order.Quantity, order.UnitPrice, order.TotalPrice, order.Notes,
		order.Status, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert custom order: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get new custom order ID: %w", err)
	}
	order.ID = id
	order.CreatedAt = now
	order.UpdatedAt = now

	for i := range sizes {
		sizes[i].CustomOrderID = id
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO custom_order_sizes (custom_order_id, label, quantity)
			VALUES (?, ?, ?)`,
			id, sizes[i].Label, sizes[i].Quantity); err != nil {
			return fmt.Errorf("failed to insert custom order size: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit custom order: %w", err)
	}
	return nil
}

const customOrderColumns = "id, reference, user_id, customer_type, fabric, quantity, unit_price, total_price, notes, status, created_at, updated_at"

func (r *CustomOrderRepository) FindByID(ctx context.Context, id int64) (*models.CustomOrder, error) {
	var o models.CustomOrder
	err := r.db.QueryRowContext(ctx,
		"SELECT "+customOrderColumns+" FROM custom_orders WHERE id = ?", id).
		Scan(&o.ID, &o.Reference, &o.UserID, &o.CustomerType, &o.Fabric, &o.Quantity,
			&o.UnitPrice, &o.TotalPrice, &o.Notes, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan custom order: %w", err)
	}
	return &o, nil
}

func (r *CustomOrderRepository) Sizes(ctx context.Context, customOrderID int64) ([]models.CustomOrderSize, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, custom_order_id, label, quantity
		FROM custom_order_sizes
		WHERE custom_order_id = ?
		ORDER BY id ASC`, customOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom order sizes: %w", err)
	}
	defer rows.Close()

	var sizes []models.CustomOrderSize
	for rows.Next() {
		var s models.CustomOrderSize
		if err := rows.Scan(&s.ID, &s.CustomOrderID, &s.Label, &s.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan custom order size: %w", err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

func (r *CustomOrderRepository) queryCustomOrders(ctx context.Context, query string, args ...interface{}) ([]models.CustomOrder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom orders: %w", err)
	}
	defer rows.Close()

	var orders []models.CustomOrder
	for rows.Next() {
		var o models.CustomOrder
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.CustomerType, &o.Fabric, &o.Quantity,
			&o.UnitPrice, &o.TotalPrice, &o.Notes, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *CustomOrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.CustomOrder, error) {
	return r.queryCustomOrders(ctx,
		"SELECT "+customOrderColumns+" FROM custom_orders WHERE user_id = ? ORDER BY created_at DESC", userID)
}

func (r *CustomOrderRepository) ListAll(ctx context.Context, status string) ([]models.CustomOrder, error) {
	if status != "" {
		return r.queryCustomOrders(ctx,
			"SELECT "+customOrderColumns+" FROM custom_orders WHERE status = ? ORDER BY created_at DESC", status)
	}
	return r.queryCustomOrders(ctx,
		"SELECT "+customOrderColumns+" FROM custom_orders ORDER BY created_at DESC")
}

func (r *CustomOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.CustomOrderStatus) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE custom_orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update custom order status: %w", err)
	}
	return nil
}
