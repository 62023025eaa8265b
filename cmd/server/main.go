package main

import (
	"log"
	"time"

	"resto_manager/internal/config"
	"resto_manager/internal/database"
	"resto_manager/internal/handlers"
	"resto_manager/internal/middleware"
	"resto_manager/internal/migrations"
	"resto_manager/internal/models"
	"resto_manager/internal/redis"
	"resto_manager/internal/repository"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Ensuring database schema is up to date...")
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userRepo,
		redisClient,
		cfg.JWTSecret,
		time.Duration(cfg.TokenExpiryMin)*time.Minute,
		time.Duration(cfg.RefreshExpiryDays)*24*time.Hour,
	)
	userService := services.NewUserService(userRepo)
	menuService := services.NewMenuService(menuRepo, categoryRepo, redisClient)
	inventoryService := services.NewInventoryService(inventoryRepo)
	tableService := services.NewTableService(tableRepo, cfg.PublicBaseURL)
	orderService := services.NewOrderService(orderRepo, menuRepo, inventoryRepo, tableRepo)
	settingsService := services.NewSettingsService(settingsRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	menuHandler := handlers.NewMenuHandler(menuService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	tableHandler := handlers.NewTableHandler(tableService)
	orderHandler := handlers.NewOrderHandler(orderService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Setup routes
	router := gin.Default()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindow)*time.Minute)
	router.Use(limiter.Middleware())

	requireAuth := middleware.RequireAuth(authService, userService)
	managers := middleware.RequireRoles(models.RoleAdmin, models.RoleManager)
	orderStaff := middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleCashier, models.RoleWaiter)
	cashiers := middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleCashier)
	stockStaff := middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleStockManager)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "OK"})
	})

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/register", authHandler.Register)
	}
	api.GET("/menu/customer", menuHandler.GetCustomerMenu)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(requireAuth)
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/profile", authHandler.GetProfile)
		authed.PUT("/auth/profile", authHandler.UpdateProfile)
		authed.PUT("/auth/change-password", authHandler.ChangePassword)
	}

	menu := api.Group("/menu")
	menu.Use(requireAuth)
	{
		menu.GET("/categories", menuHandler.GetCategories)
		menu.POST("/categories", managers, menuHandler.CreateCategory)
		menu.PUT("/categories/:id", managers, menuHandler.UpdateCategory)
		menu.DELETE("/categories/:id", managers, menuHandler.DeleteCategory)

		menu.GET("/items", menuHandler.ListItems)
		menu.GET("/items/:id", menuHandler.GetItemByID)
		menu.POST("/items", managers, menuHandler.CreateItem)
		menu.PUT("/items/:id", managers, menuHandler.UpdateItem)
		menu.DELETE("/items/:id", managers, menuHandler.DeleteItem)
		menu.PATCH("/items/:id/toggle-availability", managers, menuHandler.ToggleAvailability)
	}

	inventory := api.Group("/inventory")
	inventory.Use(requireAuth, stockStaff)
	{
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/low-stock", inventoryHandler.GetLowStock)
		inventory.GET("/out-of-stock", inventoryHandler.GetOutOfStock)
		inventory.GET("/expiring", inventoryHandler.GetExpiring)
		inventory.GET("/summary", inventoryHandler.GetSummary)
		inventory.GET("/:id", inventoryHandler.GetByID)
		inventory.POST("", inventoryHandler.Create)
		inventory.PUT("/:id", inventoryHandler.Update)
		inventory.PATCH("/:id/stock", inventoryHandler.UpdateStock)
		inventory.POST("/bulk-stock-update", inventoryHandler.BulkUpdateStock)
		inventory.DELETE("/:id", managers, inventoryHandler.Delete)
	}

	tables := api.Group("/tables")
	tables.Use(requireAuth)
	{
		tables.GET("", orderStaff, tableHandler.List)
		tables.GET("/available", orderStaff, tableHandler.GetAvailable)
		tables.GET("/summary", orderStaff, tableHandler.GetSummary)
		tables.GET("/:id", orderStaff, tableHandler.GetByID)
		tables.GET("/:id/qrcode", orderStaff, tableHandler.GetQRCode)
		tables.PATCH("/:id/status", orderStaff, tableHandler.UpdateStatus)
		tables.POST("", managers, tableHandler.Create)
		tables.PUT("/:id", managers, tableHandler.Update)
		tables.DELETE("/:id", managers, tableHandler.Delete)
	}

	orders := api.Group("/orders")
	orders.Use(requireAuth, orderStaff)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/active", orderHandler.GetActive)
		orders.GET("/today", orderHandler.GetToday)
		orders.GET("/:id", orderHandler.GetByID)
		orders.POST("", orderHandler.Create)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PATCH("/:id/items/:itemId/status", orderHandler.UpdateItemStatus)
		orders.POST("/:id/payment", cashiers, orderHandler.ProcessPayment)
	}

	users := api.Group("/users")
	users.Use(requireAuth, managers)
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.PATCH("/:id/status", userHandler.ToggleStatus)
		users.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), userHandler.Delete)
	}

	settings := api.Group("/settings")
	settings.Use(requireAuth)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", managers, settingsHandler.Update)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
