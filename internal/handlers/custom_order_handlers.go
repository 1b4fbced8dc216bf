package handlers

import (
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

//
// --- Custom Order Handlers ---
//

// CustomOrderSizeInput is one line of the requested size breakdown.
type CustomOrderSizeInput struct {
	Label    string `json:"label" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// CreateCustomOrderInput defines the JSON for a quote request.
type CreateCustomOrderInput struct {
	CustomerType string                 `json:"customerType" binding:"required"`
	Fabric       string                 `json:"fabric" binding:"required"`
	Notes        string                 `json:"notes"`
	Sizes        []CustomOrderSizeInput `json:"sizes" binding:"required,min=1,dive"`
}

// CreateCustomOrder is the handler for POST /v1/custom-orders.
// The quote is priced immediately from the pricing table and the
// result is snapshotted onto the request.
func (h *Handlers) CreateCustomOrder(c *gin.Context) {
	userID := currentUserID(c)

	var input CreateCustomOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceInput := services.CustomOrderInput{
		CustomerType: input.CustomerType,
		Fabric:       input.Fabric,
		Notes:        input.Notes,
	}
	for _, size := range input.Sizes {
		serviceInput.Sizes = append(serviceInput.Sizes, services.CustomOrderSizeInput{
			Label:    size.Label,
			Quantity: size.Quantity,
		})
	}

	order, err := h.CustomOrders.Request(c, userID, serviceInput)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Quote request created",
		"customOrder": order,
	})
}

// GetMyCustomOrders is the handler for GET /v1/custom-orders.
func (h *Handlers) GetMyCustomOrders(c *gin.Context) {
	userID := currentUserID(c)

	orders, err := h.CustomOrders.ListForCustomer(c, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if orders == nil {
		orders = []models.CustomOrder{}
	}

	c.JSON(http.StatusOK, gin.H{"customOrders": orders})
}

// GetCustomOrderDetails is the handler for GET /v1/custom-orders/:id.
func (h *Handlers) GetCustomOrderDetails(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.CustomOrders.ForCustomer(c, userID, id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customOrder": order})
}

// QuotePreview is the handler for POST /v1/custom-orders/quote.
// It prices a (customerType, fabric, quantity) combination without
// creating anything, for the live preview in the request form.
func (h *Handlers) QuotePreview(c *gin.Context) {
	var input struct {
		CustomerType string `json:"customerType" binding:"required"`
		Fabric       string `json:"fabric" binding:"required"`
		Quantity     int    `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.Pricing.QuoteFor(c, input.CustomerType, input.Fabric, input.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

//
// --- Admin Custom Order Handlers ---
//

// AdminGetCustomOrders is the handler for GET /v1/admin/custom-orders.
func (h *Handlers) AdminGetCustomOrders(c *gin.Context) {
	orders, err := h.CustomOrders.ListAll(c, c.Query("status"))
	if err != nil {
		serviceError(c, err)
		return
	}
	if orders == nil {
		orders = []models.CustomOrder{}
	}

	c.JSON(http.StatusOK, gin.H{"customOrders": orders})
}

// AdminGetCustomOrderDetails is the handler for GET /v1/admin/custom-orders/:id.
func (h *Handlers) AdminGetCustomOrderDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.CustomOrders.ForAdmin(c, id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customOrder": order})
}

// UpdateCustomOrderStatusInput defines the JSON for the admin action.
type UpdateCustomOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=requested quoted confirmed declined"`
}

// UpdateCustomOrderStatus is the handler for
// PATCH /v1/admin/custom-orders/:id/status.
func (h *Handlers) UpdateCustomOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCustomOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.CustomOrders.UpdateStatus(c, id, models.CustomOrderStatus(input.Status))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Custom order status updated",
		"customOrder": order,
	})
}
