package handlers

import (
	"database/sql"
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Dashboard Handlers ---
//

// DashboardStats is the response for the admin landing page.
type DashboardStats struct {
	TotalOrders         int64 `json:"totalOrders"`
	PendingOrders       int64 `json:"pendingOrders"`
	PaymentsToVerify    int64 `json:"paymentsToVerify"`
	TotalRevenue        int64 `json:"totalRevenue"`
	TotalCustomers      int64 `json:"totalCustomers"`
	CustomOrderRequests int64 `json:"customOrderRequests"`
}

// GetDashboard is the handler for GET /v1/admin/dashboard.
// Revenue counts delivered and processing orders that are paid; a
// pending payment row is a transfer waiting for verification.
func (h *Handlers) GetDashboard(c *gin.Context) {
	var stats DashboardStats

	queries := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&stats.TotalOrders, "SELECT COUNT(*) FROM orders", nil},
		{&stats.PendingOrders, "SELECT COUNT(*) FROM orders WHERE status = ?",
			[]interface{}{models.OrderStatusPending}},
		{&stats.PaymentsToVerify, "SELECT COUNT(*) FROM payments WHERE status = ?",
			[]interface{}{models.PaymentStatusPending}},
		{&stats.TotalCustomers, "SELECT COUNT(*) FROM users WHERE role = ?",
			[]interface{}{models.RoleCustomer}},
		{&stats.CustomOrderRequests, "SELECT COUNT(*) FROM custom_orders WHERE status = ?",
			[]interface{}{models.CustomOrderStatusRequested}},
	}
	for _, q := range queries {
		if err := h.DB.QueryRow(q.query, q.args...).Scan(q.dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
	}

	var revenue sql.NullInt64
	err := h.DB.QueryRow(
		"SELECT SUM(total_amount) FROM orders WHERE payment_status = ? AND status != ?",
		models.PaymentStatePaid, models.OrderStatusCancelled).Scan(&revenue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	stats.TotalRevenue = revenue.Int64 // 0 when there are no paid orders

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
