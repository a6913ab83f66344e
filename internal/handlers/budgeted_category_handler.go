package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgety/internal/errors"
	"budgety/internal/services"
)

// BudgetedCategoryHandler handles budgeted category requests.
type BudgetedCategoryHandler struct {
	budgetedCategoryService services.BudgetedCategoryServicer
}

// NewBudgetedCategoryHandler creates a new BudgetedCategoryHandler.
func NewBudgetedCategoryHandler(budgetedCategoryService services.BudgetedCategoryServicer) *BudgetedCategoryHandler {
	return &BudgetedCategoryHandler{budgetedCategoryService: budgetedCategoryService}
}

// CreateBudgetedCategoryRequest represents the request payload for creating
// a budgeted category.
type CreateBudgetedCategoryRequest struct {
	BudgetPeriodID string          `json:"budget_period_id" binding:"required,uuid"`
	CategoryName   string          `json:"category_name" binding:"required,min=2,max=50"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// ChangeAmountRequest represents the request payload for changing an amount.
type ChangeAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateBudgetedCategory handles creating a planned spending allocation.
// @Summary     Create a budgeted category
// @Description Allocate a planned amount to a category name within a budget period
// @Tags        budgetedcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetedCategoryRequest true "Allocation details"
// @Success     201 {object} models.BudgetedCategory "Allocation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetedcategories [post]
func (h *BudgetedCategoryHandler) CreateBudgetedCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetedCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bc, err := h.budgetedCategoryService.CreateBudgetedCategory(userID, req.BudgetPeriodID, req.CategoryName, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budgeted_category": bc})
}

// GetBudgetedCategory handles fetching a single allocation.
// @Summary     Get a budgeted category
// @Description Get a single budgeted category by ID
// @Tags        budgetedcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budgeted category ID"
// @Success     200 {object} models.BudgetedCategory "Budgeted category"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetedcategories/{id} [get]
func (h *BudgetedCategoryHandler) GetBudgetedCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bc, err := h.budgetedCategoryService.GetBudgetedCategoryByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgeted_category": bc})
}

// GetPeriodBudgetedCategories handles listing the allocations of a period.
// @Summary     Get a period's budgeted categories
// @Description Get every budgeted category within a budget period
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget period ID"
// @Success     200 {array} models.BudgetedCategory "Budgeted categories"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id}/budgetedcategories [get]
func (h *BudgetedCategoryHandler) GetPeriodBudgetedCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.budgetedCategoryService.GetBudgetedCategories(userID, periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgeted_categories": categories})
}

// ChangeAmount handles changing the planned amount of an allocation.
// @Summary     Change a budgeted category's amount
// @Description Update the planned amount on a budgeted category
// @Tags        budgetedcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budgeted category ID"
// @Param       request body ChangeAmountRequest true "New amount"
// @Success     200 {object} models.BudgetedCategory "Allocation updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetedcategories/{id}/amount [patch]
func (h *BudgetedCategoryHandler) ChangeAmount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangeAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bc, err := h.budgetedCategoryService.ChangeAmount(id, userID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgeted_category": bc})
}

// DeleteBudgetedCategory handles deleting an allocation.
// @Summary     Delete a budgeted category
// @Description Delete a budgeted category; its expenses and earnings remain
// @Tags        budgetedcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budgeted category ID"
// @Success     200 {object} MessageResponse "Allocation deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetedcategories/{id} [delete]
func (h *BudgetedCategoryHandler) DeleteBudgetedCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetedCategoryService.DeleteBudgetedCategory(id, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budgeted category deleted"})
}
