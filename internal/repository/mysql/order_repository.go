package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository"
)

// OrderRepository is the MySQL implementation of
// repository.OrderRepository.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Checkout performs the whole checkout in one transaction: read the
// cart with the size rows locked, let build validate and snapshot the
// lines, insert the order and its items, deduct stock and remove the
// ordered lines from the cart. A partially-created order is never
// visible and a size deactivated mid-checkout rolls everything back.
func (r *OrderRepository) Checkout(ctx context.Context, userID int64, build repository.CheckoutFunc) (*models.Order, []models.OrderItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() // Safety net

	// 1. --- Read the cart, locking the size rows ---
	// FOR UPDATE holds the locks until commit, so a concurrent
	// checkout or an admin toggling availability waits for us.
	query := `
		SELECT ci.product_id, ci.product_size_id, p.name, ps.label,
		       ci.quantity, p.base_price + ps.price_adjustment,
		       ps.stock_quantity, ps.is_available
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		JOIN products p ON p.id = ci.product_id
		JOIN product_sizes ps ON ps.id = ci.product_size_id
		WHERE c.user_id = ?
		ORDER BY ci.id ASC
		FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query cart items: %w", err)
	}

	var cartItems []models.CheckoutItem
	for rows.Next() {
		var item models.CheckoutItem
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductSizeID,
			&item.ProductName,
			&item.SizeLabel,
			&item.Quantity,
			&item.UnitPrice,
			&item.StockQuantity,
			&item.IsAvailable,
		); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cartItems = append(cartItems, item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, nil, fmt.Errorf("failed to read cart items: %w", err)
	}
	rows.Close()

	// 2. --- Validate and snapshot (service callback) ---
	order, items, err := build(cartItems)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()

	// 3. --- Insert the main order record ---
	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_number, user_id, status, payment_status, total_amount, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderNumber, order.UserID, order.Status, order.PaymentStatus,
		order.TotalAmount, order.Notes, now, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert order: %w", err)
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get new order ID: %w", err)
	}
	order.ID = orderID
	order.CreatedAt = now
	order.UpdatedAt = now

	// 4. --- Insert item snapshots, deduct stock, clear cart lines ---
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_size_id, quantity, unit_price, total_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	// The guards make an oversell (or a size deactivated after the
	// locked read) roll the whole checkout back.
	stockQuery := `
		UPDATE product_sizes
		SET stock_quantity = stock_quantity - ?, updated_at = ?
		WHERE id = ? AND is_available = TRUE AND stock_quantity >= ?`

	// Only the ordered lines leave the cart; anything added
	// concurrently survives for the next checkout.
	cartLineQuery := `
		DELETE ci FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE c.user_id = ? AND ci.product_size_id = ?`

	for i := range items {
		items[i].OrderID = orderID
		items[i].CreatedAt = now
		if _, err := tx.ExecContext(ctx, itemQuery,
			orderID, items[i].ProductID, items[i].ProductSizeID,
			items[i].Quantity, items[i].UnitPrice, items[i].TotalPrice, now); err != nil {
			return nil, nil, fmt.Errorf("failed to save order item: %w", err)
		}

		res, err := tx.ExecContext(ctx, stockQuery,
			items[i].Quantity, now, items[i].ProductSizeID, items[i].Quantity)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to deduct stock: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check stock update: %w", err)
		}
		if affected == 0 {
			return nil, nil, repository.ErrStockConflict
		}

		if _, err := tx.ExecContext(ctx, cartLineQuery, userID, items[i].ProductSizeID); err != nil {
			return nil, nil, fmt.Errorf("failed to clear cart line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit checkout: %w", err)
	}
	return order, items, nil
}

const orderColumns = "id, order_number, user_id, status, payment_status, total_amount, notes, created_at, updated_at"

func scanOrder(row *sql.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus,
		&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = ?", id)
	return scanOrder(row)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus,
			&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	return r.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at DESC", userID)
}

func (r *OrderRepository) ListAll(ctx context.Context, status string) ([]models.Order, error) {
	if status != "" {
		return r.queryOrders(ctx,
			"SELECT "+orderColumns+" FROM orders WHERE status = ? ORDER BY created_at DESC", status)
	}
	return r.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
}

func (r *OrderRepository) Items(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_size_id, quantity, unit_price, total_price, created_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductSizeID,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

const paymentColumns = "id, order_id, payment_method_id, transaction_ref, amount, status, created_at, updated_at"

func scanPayment(row *sql.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.PaymentMethodID, &p.TransactionRef,
		&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return &p, nil
}

func (r *OrderRepository) LatestPayment(ctx context.Context, orderID int64) (*models.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE order_id = ? ORDER BY id DESC LIMIT 1", orderID)
	return scanPayment(row)
}

func (r *OrderRepository) FindPayment(ctx context.Context, id int64) (*models.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)
	return scanPayment(row)
}

func (r *OrderRepository) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE order_id = ? ORDER BY id ASC", orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PaymentMethodID, &p.TransactionRef,
			&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment inserts the payment row and syncs the parent order's
// payment_status from it, all inside one transaction.
func (r *OrderRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, payment_method_id, transaction_ref, amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.OrderID, payment.PaymentMethodID, payment.TransactionRef,
		payment.Amount, payment.Status, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	paymentID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get new payment ID: %w", err)
	}
	payment.ID = paymentID
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := syncOrderPaymentState(ctx, tx, payment.OrderID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	return nil
}

// UpdatePaymentStatus changes a payment row's status and syncs the
// parent order's payment_status in the same transaction.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, paymentID int64, status models.PaymentStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var orderID int64
	if err := tx.QueryRowContext(ctx,
		"SELECT order_id FROM payments WHERE id = ? FOR UPDATE", paymentID).Scan(&orderID); err != nil {
		return fmt.Errorf("failed to lock payment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE payments SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), paymentID); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if err := syncOrderPaymentState(ctx, tx, orderID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment update: %w", err)
	}
	return nil
}

// syncOrderPaymentState re-derives orders.payment_status from the
// order's latest payment row. This is the only place that column is
// written after checkout, so the order can never drift from its
// payment history.
func syncOrderPaymentState(ctx context.Context, tx *sql.Tx, orderID int64) error {
	var latest models.Payment
	state := models.PaymentStateUnpaid

	err := tx.QueryRowContext(ctx,
		"SELECT id, status FROM payments WHERE order_id = ? ORDER BY id DESC LIMIT 1",
		orderID).Scan(&latest.ID, &latest.Status)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read latest payment: %w", err)
	}
	if err == nil {
		state = models.DerivePaymentState(&latest)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE orders SET payment_status = ?, updated_at = ? WHERE id = ?",
		state, time.Now(), orderID); err != nil {
		return fmt.Errorf("failed to sync order payment status: %w", err)
	}
	return nil
}

func (r *OrderRepository) ActivePaymentMethod(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, account_name, account_number, is_active, created_at, updated_at
		FROM payment_methods
		WHERE id = ? AND is_active = TRUE`, id).
		Scan(&m.ID, &m.Name, &m.AccountName, &m.AccountNumber, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment method: %w", err)
	}
	return &m, nil
}
