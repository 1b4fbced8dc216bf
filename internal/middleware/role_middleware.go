package middleware

import (
	"database/sql"
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Role-Based Middleware ---
//
// These run *after* AuthMiddleware. They read the 'userID' from the
// context, look up the user's role and enforce it. Rejections are a
// generic 403 so we never leak which accounts exist.
//

// queryUserRole is a helper to get the user's role from the DB.
func queryUserRole(db *sql.DB, userID int64) (string, error) {
	var role string
	err := db.QueryRow("SELECT role FROM users WHERE id = ?", userID).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}

// requireRole builds a middleware that only lets the given role pass.
func requireRole(db *sql.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context (AuthMiddleware must run first)"})
			c.Abort()
			return
		}
		userID := userIDRaw.(int64)

		userRole, err := queryUserRole(db, userID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		if userRole != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Set("userRole", userRole)
		c.Next()
	}
}

// AdminMiddleware checks for the 'administrator' role.
func AdminMiddleware(db *sql.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleAdministrator)
}

// CustomerMiddleware checks for the 'customer' role.
func CustomerMiddleware(db *sql.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleCustomer)
}
