package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Pricing Table Handlers ---
//
// The custom-order price table: 'base' entries keyed by customer
// type, 'fabric' entries keyed by material. Deactivating an entry
// only blocks future quotes; existing custom orders keep their
// snapshots.
//

// AdminGetPricings is the handler for GET /v1/admin/pricings.
func (h *Handlers) AdminGetPricings(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, price_type, name, price, is_active, created_at, updated_at
		FROM custom_order_pricings
		ORDER BY price_type ASC, name ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pricing table"})
		return
	}
	defer rows.Close()

	var pricings []models.CustomOrderPricing
	for rows.Next() {
		var p models.CustomOrderPricing
		if err := rows.Scan(&p.ID, &p.PriceType, &p.Name, &p.Price,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan pricing entry"})
			return
		}
		pricings = append(pricings, p)
	}
	if pricings == nil {
		pricings = []models.CustomOrderPricing{}
	}

	c.JSON(http.StatusOK, gin.H{"pricings": pricings})
}

// PricingInput defines the JSON for creating/updating an entry.
type PricingInput struct {
	PriceType string `json:"priceType" binding:"required,oneof=base fabric"`
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"required,gt=0"`
	IsActive  *bool  `json:"isActive"`
}

// CreatePricing is the handler for POST /v1/admin/pricings.
func (h *Handlers) CreatePricing(c *gin.Context) {
	var input PricingInput
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
		INSERT INTO custom_order_pricings (price_type, name, price, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.PriceType, input.Name, input.Price, isActive, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusConflict, gin.H{"error": "A pricing entry with this type and name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pricing entry"})
		return
	}
	pricingID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{"message": "Pricing entry created", "pricingId": pricingID})
}

// UpdatePricing is the handler for PUT /v1/admin/pricings/:id.
func (h *Handlers) UpdatePricing(c *gin.Context) {
	pricingID := c.Param("id")

	var input PricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	result, err := h.DB.Exec(`
		UPDATE custom_order_pricings
		SET price_type = ?, name = ?, price = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		input.PriceType, input.Name, input.Price, isActive, time.Now(), pricingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing entry"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pricing entry updated"})
}

// TogglePricingInput defines the JSON for activating/deactivating.
type TogglePricingInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// TogglePricing is the handler for PATCH /v1/admin/pricings/:id/active.
func (h *Handlers) TogglePricing(c *gin.Context) {
	pricingID := c.Param("id")

	var input TogglePricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Exec(`
		UPDATE custom_order_pricings SET is_active = ?, updated_at = ? WHERE id = ?`,
		*input.IsActive, time.Now(), pricingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing entry"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pricing entry updated"})
}
