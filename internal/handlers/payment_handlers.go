package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Payment Handlers ---
//

// SubmitPaymentInput defines the JSON for a bank-transfer claim.
// TransactionRef is the last 4 digits of the transfer reference; we
// never ask for (or store) the full number. PaymentMethodID picks the
// destination bank account, which is the only payment kind we take.
type SubmitPaymentInput struct {
	PaymentMethodID int64  `json:"paymentMethodId" binding:"required"`
	TransactionRef  string `json:"transactionRef" binding:"required,len=4"`
}

// SubmitPayment is the handler for POST /v1/orders/:id/payments.
// The new payment starts as "pending" until an admin verifies the
// transfer. Only one payment may be outstanding at a time.
func (h *Handlers) SubmitPayment(c *gin.Context) {
	userID := currentUserID(c)
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input SubmitPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Orders.SubmitPayment(c, userID, orderID, input.PaymentMethodID, input.TransactionRef)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment submitted. We will verify your transfer shortly.",
		"payment": payment,
	})
}

// UpdatePaymentStatusInput defines the JSON for admin verification.
type UpdatePaymentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed refunded"`
}

// UpdatePaymentStatus is the handler for PATCH /v1/admin/payments/:id/status.
// Marking a payment "paid" also marks the parent order paid.
func (h *Handlers) UpdatePaymentStatus(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.Orders.UpdatePaymentStatus(c, paymentID, models.PaymentStatus(input.Status))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment status updated",
		"payment": payment,
	})
}

//
// --- Payment Method Handlers ---
//

const paymentMethodColumns = "id, name, account_name, account_number, is_active, created_at, updated_at"

func scanPaymentMethods(rows *sql.Rows) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.AccountName, &m.AccountNumber,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// GetPaymentMethods is the handler for GET /v1/payment-methods.
// Customers only see active accounts they can transfer to.
func (h *Handlers) GetPaymentMethods(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + paymentMethodColumns + " FROM payment_methods WHERE is_active = TRUE ORDER BY id ASC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
		return
	}
	defer rows.Close()

	methods, err := scanPaymentMethods(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan payment methods"})
		return
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}

	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

// AdminGetPaymentMethods is the handler for GET /v1/admin/payment-methods.
func (h *Handlers) AdminGetPaymentMethods(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + paymentMethodColumns + " FROM payment_methods ORDER BY id ASC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
		return
	}
	defer rows.Close()

	methods, err := scanPaymentMethods(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan payment methods"})
		return
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}

	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

// PaymentMethodInput defines the JSON for creating/updating a method.
type PaymentMethodInput struct {
	Name          string `json:"name" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IsActive      *bool  `json:"isActive"`
}

// CreatePaymentMethod is the handler for POST /v1/admin/payment-methods.
func (h *Handlers) CreatePaymentMethod(c *gin.Context) {
	var input PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	result, err := h.DB.Exec(`
		INSERT INTO payment_methods (name, account_name, account_number, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.Name, input.AccountName, input.AccountNumber, isActive, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
		return
	}
	methodID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{"message": "Payment method created", "paymentMethodId": methodID})
}

// UpdatePaymentMethod is the handler for PUT /v1/admin/payment-methods/:id.
func (h *Handlers) UpdatePaymentMethod(c *gin.Context) {
	methodID := c.Param("id")

	var input PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	result, err := h.DB.Exec(`
		UPDATE payment_methods
		SET name = ?, account_name = ?, account_number = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		input.Name, input.AccountName, input.AccountNumber, isActive, time.Now(), methodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated"})
}
