package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgety/internal/errors"
	"budgety/internal/pagination"
	"budgety/internal/services"
)

// BudgetPeriodHandler handles budget period requests.
type BudgetPeriodHandler struct {
	periodService services.BudgetPeriodServicer
}

// NewBudgetPeriodHandler creates a new BudgetPeriodHandler.
func NewBudgetPeriodHandler(periodService services.BudgetPeriodServicer) *BudgetPeriodHandler {
	return &BudgetPeriodHandler{periodService: periodService}
}

// RegisterBudgetPeriodRequest represents the request payload for registering
// a budget period. Date carries the human-readable "Month - Year" token.
type RegisterBudgetPeriodRequest struct {
	Date string `json:"date" binding:"required"`
}

// RegisterBudgetPeriod handles the registration of a new budget period.
// @Summary     Register a budget period
// @Description Register a new PENDING budget period for a "Month - Year" token
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RegisterBudgetPeriodRequest true "Period month and year"
// @Success     201 {object} models.BudgetPeriod "Period registered"
// @Failure     400 {object} ErrorResponse "Invalid month - year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Period already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods [post]
func (h *BudgetPeriodHandler) RegisterBudgetPeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RegisterBudgetPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := h.periodService.RegisterBudgetPeriod(userID, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget_period": period})
}

// GetBudgetPeriods handles listing the authenticated user's budget periods.
// @Summary     Get budget periods
// @Description Get a paginated list of the authenticated user's budget periods
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       currentPage    query int false "Zero-based page index (default 0)"
// @Param       resultsPerPage query int false "Items per page (default 10)"
// @Success     200 {object} pagination.PagedResult[models.BudgetPeriod] "Paginated periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods [get]
func (h *BudgetPeriodHandler) GetBudgetPeriods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.periodService.GetUserBudgetPeriods(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetPeriod handles fetching a single budget period.
// @Summary     Get a budget period
// @Description Get a single budget period by ID
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget period ID"
// @Success     200 {object} models.BudgetPeriod "Budget period"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id} [get]
func (h *BudgetPeriodHandler) GetBudgetPeriod(c *gin.Context) {
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

	period, err := h.periodService.GetBudgetPeriodByID(userID, periodID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_period": period})
}

// ActivateBudgetPeriod handles activating a budget period.
// @Summary     Activate a budget period
// @Description Mark a budget period ACTIVE; fails while any other period is ACTIVE
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget period ID"
// @Success     200 {object} MessageResponse "Period activated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Another period is active"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id}/activate [patch]
func (h *BudgetPeriodHandler) ActivateBudgetPeriod(c *gin.Context) {
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

	if err := h.periodService.ActivateBudgetPeriod(userID, periodID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget period activated"})
}

// DeactivateBudgetPeriod handles deactivating a budget period.
// @Summary     Deactivate a budget period
// @Description Mark a budget period INACTIVE regardless of its current status
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget period ID"
// @Success     200 {object} MessageResponse "Period deactivated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id}/deactivate [patch]
func (h *BudgetPeriodHandler) DeactivateBudgetPeriod(c *gin.Context) {
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

	if err := h.periodService.DeactivateBudgetPeriod(userID, periodID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget period deactivated"})
}

// DeleteBudgetPeriod handles deleting a budget period.
// @Summary     Delete a budget period
// @Description Delete a budget period; its allocations and entries are kept
// @Tags        budgetperiods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget period ID"
// @Success     200 {object} MessageResponse "Period deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgetperiods/{id} [delete]
func (h *BudgetPeriodHandler) DeleteBudgetPeriod(c *gin.Context) {
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

	if err := h.periodService.DeleteBudgetPeriod(userID, periodID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget period deleted"})
}
