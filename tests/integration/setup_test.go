package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"budgety/internal/events"
	"budgety/internal/handlers"
	"budgety/internal/logger"
	"budgety/internal/middleware"
	"budgety/internal/models"
	"budgety/internal/services"
	"budgety/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.RefreshToken{},
		&models.BudgetPeriod{},
		&models.Category{},
		&models.BudgetedCategory{},
		&models.Expense{},
		&models.Earning{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	bus := events.NewBus()
	userService := services.NewUserService(db)
	refreshTokenService := services.NewRefreshTokenService(db)
	budgetPeriodService := services.NewBudgetPeriodService(db)
	categoryService := services.NewCategoryService(db, bus)
	budgetedCategoryService := services.NewBudgetedCategoryService(db, bus)
	expenseService := services.NewExpenseService(db)
	earningService := services.NewEarningService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, refreshTokenService)
	budgetPeriodHandler := handlers.NewBudgetPeriodHandler(budgetPeriodService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetedCategoryHandler := handlers.NewBudgetedCategoryHandler(budgetedCategoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	earningHandler := handlers.NewEarningHandler(earningService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/revoke", authHandler.Revoke)

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

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PATCH("/:id/rename", categoryHandler.RenameCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	budgetedCategories := protected.Group("/budgetedcategories")
	budgetedCategories.POST("", budgetedCategoryHandler.CreateBudgetedCategory)
	budgetedCategories.GET("/:id", budgetedCategoryHandler.GetBudgetedCategory)
	budgetedCategories.PATCH("/:id/amount", budgetedCategoryHandler.ChangeAmount)
	budgetedCategories.DELETE("/:id", budgetedCategoryHandler.DeleteBudgetedCategory)
	budgetedCategories.GET("/:id/expenses", expenseHandler.GetBudgetedCategoryExpenses)
	budgetedCategories.GET("/:id/earnings", earningHandler.GetBudgetedCategoryEarnings)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PATCH("/:id/amount", expenseHandler.ChangeAmount)
	expenses.PATCH("/:id/name", expenseHandler.ChangeName)
	expenses.PATCH("/:id/category", expenseHandler.ChangeCategory)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	earnings := protected.Group("/earnings")
	earnings.POST("", earningHandler.CreateEarning)
	earnings.GET("/:id", earningHandler.GetEarning)
	earnings.PATCH("/:id/amount", earningHandler.ChangeAmount)
	earnings.PATCH("/:id/name", earningHandler.ChangeName)
	earnings.PATCH("/:id/category", earningHandler.ChangeCategory)
	earnings.DELETE("/:id", earningHandler.DeleteEarning)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user, logs in, and returns the access token,
// refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	access, refresh, user := app.loginUser(t, email, password)
	return access, refresh, user["id"].(string)
}

// loginUser logs in and returns the tokens plus the user payload.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string, user map[string]interface{}) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string), result["user"].(map[string]interface{})
}

// registerPeriod registers a budget period over HTTP and returns its ID.
func (app *testApp) registerPeriod(t *testing.T, token, date string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/budgetperiods", fmt.Sprintf(`{"date":%q}`, date), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register period failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	period := result["budget_period"].(map[string]interface{})
	return period["id"].(string)
}

// errorCode extracts the error code from an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error payload, got: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
