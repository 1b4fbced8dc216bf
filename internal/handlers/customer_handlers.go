package handlers

import (
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Customer Handlers ---
//

// AdminGetCustomers is the handler for GET /v1/admin/customers.
func (h *Handlers) AdminGetCustomers(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, role, email, full_name, phone_number, created_at, updated_at
		FROM users
		WHERE role = ?
		ORDER BY created_at DESC`, models.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	defer rows.Close()

	var customers []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Role, &u.Email, &u.FullName,
			&u.PhoneNumber, &u.CreatedAt, &u.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan customer"})
			return
		}
		customers = append(customers, u)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating customers"})
		return
	}
	if customers == nil {
		customers = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
