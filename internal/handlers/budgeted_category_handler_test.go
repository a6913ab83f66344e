package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
	"budgety/internal/services"
)

const testBudgetedCategoryID = "0190a1b2-c3d4-7e5f-8a6b-7c8d9e0f1a2d"

// --- mock budgeted category service ---

type mockBudgetedCategoryService struct {
	createBudgetedCategoryFn  func(userID, budgetPeriodID, categoryName string, amount decimal.Decimal) (*models.BudgetedCategory, error)
	getBudgetedCategoryByIDFn func(userID, id string) (*models.BudgetedCategory, error)
	getBudgetedCategoriesFn   func(userID, budgetPeriodID string) ([]models.BudgetedCategory, error)
	changeAmountFn            func(id, userID string, amount decimal.Decimal) (*models.BudgetedCategory, error)
	deleteBudgetedCategoryFn  func(id, userID string) error
}

func (m *mockBudgetedCategoryService) CreateBudgetedCategory(userID, budgetPeriodID, categoryName string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
	if m.createBudgetedCategoryFn != nil {
		return m.createBudgetedCategoryFn(userID, budgetPeriodID, categoryName, amount)
	}
	return &models.BudgetedCategory{}, nil
}

func (m *mockBudgetedCategoryService) GetBudgetedCategoryByID(userID, id string) (*models.BudgetedCategory, error) {
	if m.getBudgetedCategoryByIDFn != nil {
		return m.getBudgetedCategoryByIDFn(userID, id)
	}
	return &models.BudgetedCategory{}, nil
}

func (m *mockBudgetedCategoryService) GetBudgetedCategories(userID, budgetPeriodID string) ([]models.BudgetedCategory, error) {
	if m.getBudgetedCategoriesFn != nil {
		return m.getBudgetedCategoriesFn(userID, budgetPeriodID)
	}
	return []models.BudgetedCategory{}, nil
}

func (m *mockBudgetedCategoryService) ChangeAmount(id, userID string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
	if m.changeAmountFn != nil {
		return m.changeAmountFn(id, userID, amount)
	}
	return &models.BudgetedCategory{}, nil
}

func (m *mockBudgetedCategoryService) DeleteBudgetedCategory(id, userID string) error {
	if m.deleteBudgetedCategoryFn != nil {
		return m.deleteBudgetedCategoryFn(id, userID)
	}
	return nil
}

var _ services.BudgetedCategoryServicer = (*mockBudgetedCategoryService)(nil)

func setupBudgetedCategoryRouter(handler *BudgetedCategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/budgetedcategories", handler.CreateBudgetedCategory)
	auth.GET("/budgetedcategories/:id", handler.GetBudgetedCategory)
	auth.PATCH("/budgetedcategories/:id/amount", handler.ChangeAmount)
	auth.DELETE("/budgetedcategories/:id", handler.DeleteBudgetedCategory)
	auth.GET("/budgetperiods/:id/budgetedcategories", handler.GetPeriodBudgetedCategories)
	return r
}

func TestBudgetedCategoryHandler_CreateBudgetedCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBudgetedCategoryService{
			createBudgetedCategoryFn: func(userID, periodID, name string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
				return &models.BudgetedCategory{
					Base:           models.Base{ID: testBudgetedCategoryID},
					UserID:         userID,
					BudgetPeriodID: periodID,
					CategoryName:   name,
					Amount:         amount,
				}, nil
			},
		}
		r := setupBudgetedCategoryRouter(NewBudgetedCategoryHandler(svc))

		rec := doRequest(r, http.MethodPost, "/budgetedcategories",
			`{"budget_period_id":"`+testPeriodID+`","category_name":"Groceries","amount":"250.00"}`)

		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed period id", func(t *testing.T) {
		r := setupBudgetedCategoryRouter(NewBudgetedCategoryHandler(&mockBudgetedCategoryService{}))

		rec := doRequest(r, http.MethodPost, "/budgetedcategories",
			`{"budget_period_id":"nope","category_name":"Groceries","amount":"250.00"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestBudgetedCategoryHandler_ChangeAmount(t *testing.T) {
	t.Run("passes decimal amount through", func(t *testing.T) {
		var captured decimal.Decimal
		svc := &mockBudgetedCategoryService{
			changeAmountFn: func(id, userID string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
				captured = amount
				return &models.BudgetedCategory{Amount: amount}, nil
			},
		}
		r := setupBudgetedCategoryRouter(NewBudgetedCategoryHandler(svc))

		rec := doRequest(r, http.MethodPatch, "/budgetedcategories/"+testBudgetedCategoryID+"/amount",
			`{"amount":"425.50"}`)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if !captured.Equal(decimal.RequireFromString("425.50")) {
			t.Errorf("expected amount 425.50, got %s", captured)
		}
	})

	t.Run("returns 403 on foreign allocation", func(t *testing.T) {
		svc := &mockBudgetedCategoryService{
			changeAmountFn: func(_, _ string, _ decimal.Decimal) (*models.BudgetedCategory, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupBudgetedCategoryRouter(NewBudgetedCategoryHandler(svc))

		rec := doRequest(r, http.MethodPatch, "/budgetedcategories/"+testBudgetedCategoryID+"/amount",
			`{"amount":"425.50"}`)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", rec.Code)
		}
	})
}

func TestBudgetedCategoryHandler_GetPeriodBudgetedCategories(t *testing.T) {
	t.Run("returns the period's allocations", func(t *testing.T) {
		svc := &mockBudgetedCategoryService{
			getBudgetedCategoriesFn: func(userID, periodID string) ([]models.BudgetedCategory, error) {
				return []models.BudgetedCategory{
					{CategoryName: "Groceries"},
					{CategoryName: "Rent"},
				}, nil
			},
		}
		r := setupBudgetedCategoryRouter(NewBudgetedCategoryHandler(svc))

		rec := doRequest(r, http.MethodGet, "/budgetperiods/"+testPeriodID+"/budgetedcategories", "")

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		categories, ok := result["budgeted_categories"].([]interface{})
		if !ok {
			t.Fatalf("expected budgeted_categories array, got: %v", result)
		}
		if len(categories) != 2 {
			t.Errorf("expected 2 allocations, got %d", len(categories))
		}
	})
}
