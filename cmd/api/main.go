package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetbook/internal/config"
	"budgetbook/internal/database"
	"budgetbook/internal/handlers"
	"budgetbook/internal/logger"
	"budgetbook/internal/middleware"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"
)

// @title           Budgetbook API
// @version         1.0
// @description     Budgetbook lets users create budgets composed of categorized items and track income against them.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/authenticated", authHandler.Authenticated)

	protected.GET("/budgets", budgetHandler.GetBudgets)
	protected.GET("/budget/:id", budgetHandler.GetBudget)
	protected.POST("/budget/create", budgetHandler.CreateBudget)
	protected.POST("/budget/edit", budgetHandler.EditBudget)
	protected.POST("/budget/delete", budgetHandler.DeleteBudget)
	protected.GET("/budget/item/categories", budgetHandler.GetItemCategories)
	protected.POST("/budget/item/create", budgetHandler.CreateBudgetItem)
	protected.POST("/budget/item/edit", budgetHandler.EditBudgetItem)
	protected.POST("/budget/item/delete", budgetHandler.DeleteBudgetItem)

	log.Infof("Starting Budgetbook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
