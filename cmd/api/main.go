package main

import (
	"budgety/internal/config"
	"budgety/internal/database"
	"budgety/internal/events"
	"budgety/internal/handlers"
	"budgety/internal/logger"
	"budgety/internal/middleware"
	"budgety/internal/services"
	"budgety/internal/validator"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgety/internal/docs" // Import swagger docs
)

// @title           Budgety API
// @version         1.0
// @description     Budgety is a personal budgeting application that lets users plan monthly budget periods, allocate spending by category, and track expenses and earnings.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	bus := events.NewBus()
	userService := services.NewUserService(db)
	refreshTokenService := services.NewRefreshTokenService(db)
	budgetPeriodService := services.NewBudgetPeriodService(db)
	categoryService := services.NewCategoryService(db, bus)
	budgetedCategoryService := services.NewBudgetedCategoryService(db, bus)
	expenseService := services.NewExpenseService(db)
	earningService := services.NewEarningService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, refreshTokenService)
	budgetPeriodHandler := handlers.NewBudgetPeriodHandler(budgetPeriodService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetedCategoryHandler := handlers.NewBudgetedCategoryHandler(budgetedCategoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	earningHandler := handlers.NewEarningHandler(earningService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
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

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/revoke", authHandler.Revoke)

	// Budget period routes
	budgetPeriods := protected.Group("/budgetperiods")
	budgetPeriods.POST("", budgetPeriodHandler.RegisterBudgetPeriod)
	budgetPeriods.GET("", budgetPeriodHandler.GetBudgetPeriods)
	budgetPeriods.GET("/:id", budgetPeriodHandler.GetBudgetPeriod)
	budgetPeriods.PATCH("/:id/activate", budgetPeriodHandler.ActivateBudgetPeriod)
	budgetPeriods.PATCH("/:id/deactivate", budgetPeriodHandler.DeactivateBudgetPeriod)
	budgetPeriods.DELETE("/:id", budgetPeriodHandler.DeleteBudgetPeriod)
	budgetPeriods.GET("/:id/budgetedcategories", budgetedCategoryHandler.GetPeriodBudgetedCategories)
	budgetPeriods.GET("/:id/expenses", expenseHandler.GetPeriodExpenses)
	budgetPeriods.GET("/:id/earnings", earningHandler.GetPeriodEarnings)

	// Category catalog routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PATCH("/:id/rename", categoryHandler.RenameCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Budgeted category routes
	budgetedCategories := protected.Group("/budgetedcategories")
	budgetedCategories.POST("", budgetedCategoryHandler.CreateBudgetedCategory)
	budgetedCategories.GET("/:id", budgetedCategoryHandler.GetBudgetedCategory)
	budgetedCategories.PATCH("/:id/amount", budgetedCategoryHandler.ChangeAmount)
	budgetedCategories.DELETE("/:id", budgetedCategoryHandler.DeleteBudgetedCategory)
	budgetedCategories.GET("/:id/expenses", expenseHandler.GetBudgetedCategoryExpenses)
	budgetedCategories.GET("/:id/earnings", earningHandler.GetBudgetedCategoryEarnings)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PATCH("/:id/amount", expenseHandler.ChangeAmount)
	expenses.PATCH("/:id/name", expenseHandler.ChangeName)
	expenses.PATCH("/:id/category", expenseHandler.ChangeCategory)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Earning routes
	earnings := protected.Group("/earnings")
	earnings.POST("", earningHandler.CreateEarning)
	earnings.GET("/:id", earningHandler.GetEarning)
	earnings.PATCH("/:id/amount", earningHandler.ChangeAmount)
	earnings.PATCH("/:id/name", earningHandler.ChangeName)
	earnings.PATCH("/:id/category", earningHandler.ChangeCategory)
	earnings.DELETE("/:id", earningHandler.DeleteEarning)

	log.Infof("Starting Budgety backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
