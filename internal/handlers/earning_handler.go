package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgety/internal/errors"
	"budgety/internal/pagination"
	"budgety/internal/services"
)

// EarningHandler handles earning requests.
type EarningHandler struct {
	earningService services.EarningServicer
}

// NewEarningHandler creates a new EarningHandler.
func NewEarningHandler(earningService services.EarningServicer) *EarningHandler {
	return &EarningHandler{earningService: earningService}
}

// CreateEarningRequest represents the request payload for creating an earning.
type CreateEarningRequest struct {
	BudgetPeriodID     string          `json:"budget_period_id" binding:"required,uuid"`
	BudgetedCategoryID string          `json:"budgeted_category_id" binding:"required,uuid"`
	Name               string          `json:"name" binding:"required,min=1,max=100"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
}

// CreateEarning handles recording a new earning.
// @Summary     Create an earning
// @Description Record an earning against a budget period and budgeted category
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEarningRequest true "Earning details"
// @Success     201 {object} models.Earning "Earning created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings [post]
func (h *EarningHandler) CreateEarning(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEarningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	earning, err := h.earningService.CreateEarning(userID, req.BudgetPeriodID, req.BudgetedCategoryID, req.Name, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"earning": earning})
}

// GetEarning handles fetching a single earning.
// @Summary     Get an earning
// @Description Get a single earning by ID
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Earning ID"
// @Success     200 {object} models.Earning "Earning"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings/{id} [get]
func (h *EarningHandler) GetEarning(c *gin.Context) {
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

	earning, err := h.earningService.GetEarningByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"earning": earning})
}

// GetPeriodEarnings handles listing a period's earnings.
// @Summary     Get a period's earnings
// @Description Get a paginated list of the earnings recorded in a budget period
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id             path  string true  "Budget period ID"
// @Param       currentPage    query int    false "Zero-based page index (default 0)"
// @Param       resultsPerPage query int    false "Items per page (default 50)"
// @Success     200 {object} pagination.PagedResult[models.Earning] "Paginated earnings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id}/earnings [get]
func (h *EarningHandler) GetPeriodEarnings(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.earningService.GetPeriodEarnings(userID, periodID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetedCategoryEarnings handles listing an allocation's earnings.
// @Summary     Get a budgeted category's earnings
// @Description Get a paginated list of the earnings filed under a budgeted category
// @Tags        budgetedcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id             path  string true  "Budgeted category ID"
// @Param       currentPage    query int    false "Zero-based page index (default 0)"
// @Param       resultsPerPage query int    false "Items per page (default 32)"
// @Success     200 {object} pagination.PagedResult[models.Earning] "Paginated earnings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetedcategories/{id}/earnings [get]
func (h *EarningHandler) GetBudgetedCategoryEarnings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bcID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.earningService.GetBudgetedCategoryEarnings(userID, bcID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ChangeAmount handles changing an earning's amount.
// @Summary     Change an earning's amount
// @Description Update the amount on an earning
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Earning ID"
// @Param       request body ChangeAmountRequest true "New amount"
// @Success     200 {object} MessageResponse "Earning updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings/{id}/amount [patch]
func (h *EarningHandler) ChangeAmount(c *gin.Context) {
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

	if err := h.earningService.ChangeEarningAmount(id, userID, req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Earning amount updated"})
}

// ChangeName handles renaming an earning.
// @Summary     Change an earning's name
// @Description Update the display name on an earning
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Earning ID"
// @Param       request body ChangeNameRequest true "New name"
// @Success     200 {object} MessageResponse "Earning updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings/{id}/name [patch]
func (h *EarningHandler) ChangeName(c *gin.Context) {
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

	var req ChangeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.earningService.ChangeEarningName(id, userID, req.Name); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Earning name updated"})
}

// ChangeCategory handles moving an earning to another budgeted category.
// @Summary     Change an earning's budgeted category
// @Description Move an earning under another budgeted category
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Earning ID"
// @Param       request body ChangeCategoryRequest true "Target budgeted category"
// @Success     200 {object} MessageResponse "Earning updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings/{id}/category [patch]
func (h *EarningHandler) ChangeCategory(c *gin.Context) {
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

	var req ChangeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.earningService.ChangeEarningCategory(id, userID, req.BudgetedCategoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Earning category updated"})
}

// DeleteEarning handles deleting an earning.
// @Summary     Delete an earning
// @Description Delete an earning by ID
// @Tags        earnings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Earning ID"
// @Success     200 {object} MessageResponse "Earning deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /earnings/{id} [delete]
func (h *EarningHandler) DeleteEarning(c *gin.Context) {
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

	if err := h.earningService.DeleteEarning(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Earning deleted"})
}
