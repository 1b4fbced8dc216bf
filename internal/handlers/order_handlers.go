package handlers

import (
	"net/http"
	"strconv"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Order Handlers ---
//
// The lifecycle logic lives in services.OrderService; these handlers
// only bind input, call the service and map errors.
//

// CheckoutInput defines the JSON for POST /v1/checkout.
type CheckoutInput struct {
	Notes string `json:"notes"`
}

// Checkout is the handler for POST /v1/checkout.
// It turns the customer's cart into an order in one transaction.
func (h *Handlers) Checkout(c *gin.Context) {
	userID := currentUserID(c)

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, items, err := h.Orders.Checkout(c, userID, input.Notes)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order created successfully",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"totalAmount": order.TotalAmount,
		"items":       items,
	})
}

// GetMyOrders is the handler for GET /v1/orders.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID := currentUserID(c)

	orders, err := h.Orders.ListForCustomer(c, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// GetOrderDetails is the handler for GET /v1/orders/:id.
func (h *Handlers) GetOrderDetails(c *gin.Context) {
	userID := currentUserID(c)
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, items, payments, err := h.Orders.OrderForCustomer(c, userID, orderID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	// The frontend enables the "pay" button from this flag.
	c.JSON(http.StatusOK, gin.H{
		"order":    order,
		"items":    items,
		"payments": payments,
		"canPay":   models.CanSubmitPayment(order.PaymentStatus) && order.Status != models.OrderStatusCancelled,
	})
}

//
// --- Admin Order Handlers ---
//

// AdminGetOrders is the handler for GET /v1/admin/orders.
// Accepts an optional ?status= filter.
func (h *Handlers) AdminGetOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c, c.Query("status"))
	if err != nil {
		serviceError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// AdminGetOrderDetails is the handler for GET /v1/admin/orders/:id.
func (h *Handlers) AdminGetOrderDetails(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, items, payments, err := h.Orders.OrderForAdmin(c, orderID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	// The admin UI builds its action button from nextStatus; "" means
	// the order can only be cancelled (or is terminal).
	c.JSON(http.StatusOK, gin.H{
		"order":      order,
		"items":      items,
		"payments":   payments,
		"nextStatus": models.NextOrderStatus(order.Status, order.PaymentStatus),
	})
}

// UpdateOrderStatusInput defines the JSON for the admin status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending processing delivered cancelled"`
}

// UpdateOrderStatus is the handler for PATCH /v1/admin/orders/:id/status.
// The target status is validated against the state machine; an
// illegal step (like shipping an unpaid order) comes back as 409.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.UpdateOrderStatus(c, orderID, models.OrderStatus(input.Status))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}
