package main

import (
	"log"
	"os"

	"github.com/MinHtutZaw/e-commerce-sub000/internal/database"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/handlers"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/repository/mysql"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/routes"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/services"
	"github.com/MinHtutZaw/e-commerce-sub000/internal/settings"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Settings Store (with optional Redis cache) ---
	settingsStore := settings.NewStore(db)
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		settingsStore.SetRedisClient(redisClient)
		defer redisClient.Close()
		log.Printf("Settings cache enabled via Redis at %s", redisAddr)
	}

	// 3. --- Repositories & Services ---
	orderRepo := mysql.NewOrderRepository(db)
	pricingRepo := mysql.NewPricingRepository(db)
	customOrderRepo := mysql.NewCustomOrderRepository(db)

	pricingService := services.NewPricingService(pricingRepo)

	// --- Application Setup ---
	// We inject ALL dependencies into the Handlers struct.
	app := &handlers.Handlers{
		DB:           db,
		Settings:     settingsStore,
		Orders:       services.NewOrderService(orderRepo),
		Pricing:      pricingService,
		CustomOrders: services.NewCustomOrderService(customOrderRepo, pricingService),
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
