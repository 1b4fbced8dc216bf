package routes

import (
	"net/http"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/handlers"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint onto a gin engine.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// --- APPLY THE CORS GUARD ---
	// This must be the very first thing the router uses
	router.Use(middleware.CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Public Storefront Routes ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:slug", h.GetProduct)
		v1.GET("/payment-methods", h.GetPaymentMethods)
		v1.GET("/store-info", h.GetStoreInfo)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware(h.DB, h.Settings))
		{
			auth.GET("/me", h.GetMe)

			// --- Customer Routes ---
			customer := auth.Group("/")
			customer.Use(middleware.CustomerMiddleware(h.DB))
			{
				// Cart
				customer.GET("/cart", h.GetCart)
				customer.POST("/cart/items", h.AddToCart)
				customer.PUT("/cart/items/:size_id", h.UpdateCartItem)
				customer.DELETE("/cart/items/:size_id", h.DeleteCartItem)

				// Orders & Payments
				customer.POST("/checkout", h.Checkout)
				customer.GET("/orders", h.GetMyOrders)
				customer.GET("/orders/:id", h.GetOrderDetails)
				customer.POST("/orders/:id/payments", h.SubmitPayment)

				// Custom Orders
				customer.POST("/custom-orders", h.CreateCustomOrder)
				customer.GET("/custom-orders", h.GetMyCustomOrders)
				customer.GET("/custom-orders/:id", h.GetCustomOrderDetails)
				customer.POST("/custom-orders/quote", h.QuotePreview)
			}

			// --- Admin Routes ---
			admin := auth.Group("/admin")
			admin.Use(middleware.AdminMiddleware(h.DB))
			{
				admin.GET("/dashboard", h.GetDashboard)

				// Catalog
				admin.GET("/products", h.AdminGetProducts)
				admin.POST("/products", h.CreateProduct)
				admin.PUT("/products/:id", h.UpdateProduct)
				admin.POST("/products/:id/sizes", h.CreateProductSize)
				admin.PUT("/sizes/:id", h.UpdateProductSize)

				// Orders & Payments
				admin.GET("/orders", h.AdminGetOrders)
				admin.GET("/orders/:id", h.AdminGetOrderDetails)
				admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
				admin.PATCH("/payments/:id/status", h.UpdatePaymentStatus)

				// Custom Orders & Pricing Table
				admin.GET("/custom-orders", h.AdminGetCustomOrders)
				admin.GET("/custom-orders/:id", h.AdminGetCustomOrderDetails)
				admin.PATCH("/custom-orders/:id/status", h.UpdateCustomOrderStatus)
				admin.GET("/pricings", h.AdminGetPricings)
				admin.POST("/pricings", h.CreatePricing)
				admin.PUT("/pricings/:id", h.UpdatePricing)
				admin.PATCH("/pricings/:id/active", h.TogglePricing)

				// Payment Methods
				admin.GET("/payment-methods", h.AdminGetPaymentMethods)
				admin.POST("/payment-methods", h.CreatePaymentMethod)
				admin.PUT("/payment-methods/:id", h.UpdatePaymentMethod)

				// Customers & Settings
				admin.GET("/customers", h.AdminGetCustomers)
				admin.GET("/settings", h.GetSettings)
				admin.PUT("/settings", h.UpdateSettings)
			}
		}
	}

	return router
}
