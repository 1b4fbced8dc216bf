package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/settings"
	"github.com/gin-gonic/gin"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB           *sql.DB
	Settings     *settings.Store
	Orders       *services.OrderService
	Pricing      *services.PricingService
	CustomOrders *services.CustomOrderService
}

// serviceError maps the service sentinel errors onto HTTP responses.
// Ownership rejections stay a generic 403 so nothing leaks about
// other customers' orders.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrBadTransactionRef),
		errors.Is(err, services.ErrNoSizes),
		errors.Is(err, services.ErrBadQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrCustomOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrPaymentOutstanding),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrOrderCancelled),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrBadPaymentMethod),
		errors.Is(err, services.ErrPricingUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// currentUserID reads the user ID that AuthMiddleware put on the
// context.
func currentUserID(c *gin.Context) int64 {
	userIDRaw, _ := c.Get("userID")
	userID, _ := userIDRaw.(int64)
	return userID
}
