package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers (Customer-Only) ---
//

// getOrCreateCartID finds a user's cart or creates one.
// This is a helper function to be used within a transaction.
func (h *Handlers) getOrCreateCartID(tx *sql.Tx, userID int64) (int64, error) {
	var cartID int64
	err := tx.QueryRow("SELECT id FROM carts WHERE user_id = ?", userID).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	now := time.Now()
	result, err := tx.Exec("INSERT INTO carts (user_id, created_at, updated_at) VALUES (?, ?, ?)", userID, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductSizeID int64 `json:"productSizeId" binding:"required"`
	Quantity      int   `json:"quantity" binding:"required,gt=0"`
}

// AddToCart is the handler for POST /v1/cart/items.
func (h *Handlers) AddToCart(c *gin.Context) {
	userID := currentUserID(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction failed"})
		return
	}
	defer tx.Rollback()

	cartID, err := h.getOrCreateCartID(tx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart initialization failed"})
		return
	}

	// The size must belong to an active product and be available.
	var productID int64
	var stock int
	err = tx.QueryRow(`
		SELECT ps.product_id, ps.stock_quantity
		FROM product_sizes ps
		JOIN products p ON p.id = ps.product_id
		WHERE ps.id = ? AND ps.is_available = TRUE AND p.is_active = TRUE`,
		input.ProductSizeID).Scan(&productID, &stock)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Size not found or not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if stock < input.Quantity {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		return
	}

	// Insert or Update logic (Upsert)
	_, err = tx.Exec(`
		INSERT INTO cart_items (cart_id, product_id, product_size_id, quantity, updated_at)
		VALUES (?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			quantity = quantity + VALUES(quantity),
			updated_at = NOW()`,
		cartID, productID, input.ProductSizeID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Commit failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
}

// CartItemResponse is a helper struct for the GetCart handler.
type CartItemResponse struct {
	ProductID     int64  `json:"productId"`
	ProductSizeID int64  `json:"productSizeId"`
	Name          string `json:"name"`
	SizeLabel     string `json:"sizeLabel"`
	UnitPrice     int64  `json:"unitPrice"`
	Quantity      int    `json:"quantity"`
	LineTotal     int64  `json:"lineTotal"`
	Stock         int    `json:"stock"`
	IsAvailable   bool   `json:"isAvailable"`
}

// GetCart is the handler for GET /v1/cart.
// It retrieves the full contents of the user's cart.
func (h *Handlers) GetCart(c *gin.Context) {
	userID := currentUserID(c)

	// 1. --- Find the Cart ---
	var cartID int64
	err := h.DB.QueryRow("SELECT id FROM carts WHERE user_id = ?", userID).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, gin.H{
				"items":      []CartItemResponse{},
				"subtotal":   0,
				"totalItems": 0,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find cart"})
		return
	}

	// 2. --- Query for Cart Items + Product Details ---
	query := `
		SELECT ci.product_id, ci.product_size_id, p.name, ps.label,
		       p.base_price + ps.price_adjustment, ci.quantity,
		       ps.stock_quantity, ps.is_available
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		JOIN product_sizes ps ON ps.id = ci.product_size_id
		WHERE ci.cart_id = ?
		ORDER BY ci.id ASC`

	rows, err := h.DB.Query(query, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query cart items"})
		return
	}
	defer rows.Close()

	// 3. --- Scan Rows and Calculate Totals ---
	var items []CartItemResponse
	var subtotal int64
	totalItems := 0

	for rows.Next() {
		var item CartItemResponse
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductSizeID,
			&item.Name,
			&item.SizeLabel,
			&item.UnitPrice,
			&item.Quantity,
			&item.Stock,
			&item.IsAvailable,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}

		item.LineTotal = item.UnitPrice * int64(item.Quantity)
		subtotal += item.LineTotal
		totalItems += item.Quantity
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating cart items"})
		return
	}

	if items == nil {
		items = []CartItemResponse{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"subtotal":   subtotal,
		"totalItems": totalItems,
	})
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
// gte=0 allows setting quantity to 0, which we treat as a delete.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:size_id.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID := currentUserID(c)
	sizeIDStr := c.Param("size_id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quantity := *input.Quantity

	var cartID int64
	err := h.DB.QueryRow("SELECT id FROM carts WHERE user_id = ?", userID).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find cart"})
		return
	}

	if quantity == 0 {
		h.deleteCartItem(c, cartID, sizeIDStr)
		return
	}

	// Check stock before raising the quantity.
	var stock int
	err = h.DB.QueryRow("SELECT stock_quantity FROM product_sizes WHERE id = ? AND is_available = TRUE", sizeIDStr).Scan(&stock)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Size not found or not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check stock"})
		return
	}
	if stock < quantity {
		c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock available for this quantity"})
		return
	}

	result, err := h.DB.Exec(`
		UPDATE cart_items
		SET quantity = ?, updated_at = ?
		WHERE cart_id = ? AND product_size_id = ?`,
		quantity, time.Now(), cartID, sizeIDStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:size_id.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	userID := currentUserID(c)
	sizeIDStr := c.Param("size_id")

	var cartID int64
	err := h.DB.QueryRow("SELECT id FROM carts WHERE user_id = ?", userID).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find cart"})
		return
	}

	h.deleteCartItem(c, cartID, sizeIDStr)
}

// deleteCartItem is a helper to DRY up the delete logic.
func (h *Handlers) deleteCartItem(c *gin.Context, cartID int64, sizeIDStr string) {
	result, err := h.DB.Exec("DELETE FROM cart_items WHERE cart_id = ? AND product_size_id = ?", cartID, sizeIDStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}
