package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/auth"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/models"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/settings"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and puts the user ID on
// the context. It also enforces maintenance mode: while the
// maintenance_mode setting is "true", only administrators get in.
func AuthMiddleware(db *sql.DB, store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		// 2. --- Validate Token ---
		userID, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 3. --- Enforce Maintenance Mode ---
		// A failed read defaults to "" and the gate stays open.
		maintenanceMode, _ := store.Get(c, models.SettingMaintenanceMode)
		if maintenanceMode == "true" {
			var role string
			if err := db.QueryRow("SELECT role FROM users WHERE id = ?", userID).Scan(&role); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable (maintenance check failed)"})
				c.Abort()
				return
			}
			if role != models.RoleAdministrator {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "The store is under maintenance. Please try again later."})
				c.Abort()
				return
			}
		}

		// 4. --- Success ---
		c.Set("userID", userID)
		c.Next()
	}
}
