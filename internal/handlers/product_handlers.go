package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

//
// --- Public Catalog Handlers ---
//

const productColumns = "id, name, slug, description, base_price, image_url, is_active, created_at, updated_at"

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.BasePrice,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (h *Handlers) productSizes(productID int64) ([]models.ProductSize, error) {
	rows, err := h.DB.Query(`
		SELECT id, product_id, label, price_adjustment, stock_quantity, is_available, created_at, updated_at
		FROM product_sizes WHERE product_id = ? ORDER BY id ASC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []models.ProductSize
	for rows.Next() {
		var s models.ProductSize
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Label, &s.PriceAdjustment,
			&s.StockQuantity, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

// GetProducts is the handler for GET /v1/products.
// Customers only see active products.
func (h *Handlers) GetProducts(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + productColumns + " FROM products WHERE is_active = TRUE ORDER BY name ASC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:slug.
// It returns the product with its sizes.
func (h *Handlers) GetProduct(c *gin.Context) {
	productSlug := c.Param("slug")

	var p models.Product
	err := h.DB.QueryRow("SELECT "+productColumns+" FROM products WHERE slug = ? AND is_active = TRUE", productSlug).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.BasePrice,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	p.Sizes, err = h.productSizes(p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product sizes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}

//
// --- Admin Product Handlers ---
//

// ProductInput defines the JSON for creating/updating a product.
type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int64  `json:"basePrice" binding:"required,gt=0"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

// AdminGetProducts is the handler for GET /v1/admin/products.
// Unlike the public listing it includes inactive products.
func (h *Handlers) AdminGetProducts(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + productColumns + " FROM products ORDER BY created_at DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct is the handler for POST /v1/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	productSlug := slug.Make(input.Name)
	result, err := h.DB.Exec(`
		INSERT INTO products (name, slug, description, base_price, image_url, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Name, productSlug, input.Description, input.BasePrice, input.ImageURL, isActive, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	productID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created",
		"product": models.Product{
			ID: productID, Name: input.Name, Slug: productSlug,
			Description: input.Description, BasePrice: input.BasePrice,
			ImageURL: input.ImageURL, IsActive: isActive,
			CreatedAt: now, UpdatedAt: now,
		},
	})
}

// UpdateProduct is the handler for PUT /v1/admin/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	result, err := h.DB.Exec(`
		UPDATE products
		SET name = ?, description = ?, base_price = ?, image_url = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		input.Name, input.Description, input.BasePrice, input.ImageURL, isActive, time.Now(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// ProductSizeInput defines the JSON for creating/updating a size.
type ProductSizeInput struct {
	Label           string `json:"label" binding:"required"`
	PriceAdjustment int64  `json:"priceAdjustment"`
	StockQuantity   int    `json:"stockQuantity" binding:"gte=0"`
	IsAvailable     *bool  `json:"isAvailable"`
}

// CreateProductSize is the handler for POST /v1/admin/products/:id/sizes.
func (h *Handlers) CreateProductSize(c *gin.Context) {
	productID := c.Param("id")

	var input ProductSizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Make sure the parent product exists first.
	var exists int64
	if err := h.DB.QueryRow("SELECT id FROM products WHERE id = ?", productID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product"})
		return
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	now := time.Now()
	result, err := h.DB.Exec(`
		INSERT INTO product_sizes (product_id, label, price_adjustment, stock_quantity, is_available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		productID, input.Label, input.PriceAdjustment, input.StockQuantity, isAvailable, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create size"})
		return
	}
	sizeID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{"message": "Size created", "sizeId": sizeID})
}

// UpdateProductSize is the handler for PUT /v1/admin/sizes/:id.
// Turning is_available off here is what blocks future checkouts for
// this size; existing orders keep their snapshots.
func (h *Handlers) UpdateProductSize(c *gin.Context) {
	sizeID := c.Param("id")

	var input ProductSizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	result, err := h.DB.Exec(`
		UPDATE product_sizes
		SET label = ?, price_adjustment = ?, stock_quantity = ?, is_available = ?, updated_at = ?
		WHERE id = ?`,
		input.Label, input.PriceAdjustment, input.StockQuantity, isAvailable, time.Now(), sizeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update size"})
		return
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Size updated"})
}
