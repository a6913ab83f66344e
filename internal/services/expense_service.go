package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
	"budgety/internal/ownership"
	"budgety/internal/pagination"
)

// expenseService records money leaving a budget period.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense against a period and budgeted
// category. Parent rows are not checked for existence.
func (s *expenseService) CreateExpense(userID, budgetPeriodID, budgetedCategoryID, name string, amount decimal.Decimal) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:             userID,
		BudgetPeriodID:     budgetPeriodID,
		BudgetedCategoryID: budgetedCategoryID,
		Name:               name,
		Amount:             amount,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenseByID returns a single expense owned by the user.
func (s *expenseService) GetExpenseByID(userID, id string) (*models.Expense, error) {
	return ownership.FetchOwned[models.Expense](s.db, id, userID, apperrors.ErrExpenseNotFound)
}

// GetPeriodExpenses returns a page of the expenses recorded against a
// budget period, oldest first.
func (s *expenseService) GetPeriodExpenses(userID, budgetPeriodID string, page pagination.PageRequest) (*pagination.PagedResult[models.Expense], error) {
	page.Defaults(pagination.PeriodEntriesPageSize)
	return s.pagedExpenses(page, "budget_period_id = ?", budgetPeriodID, userID)
}

// GetBudgetedCategoryExpenses returns a page of the expenses filed under
// a budgeted category, oldest first.
func (s *expenseService) GetBudgetedCategoryExpenses(userID, budgetedCategoryID string, page pagination.PageRequest) (*pagination.PagedResult[models.Expense], error) {
	page.Defaults(pagination.CategoryEntriesPageSize)
	return s.pagedExpenses(page, "budgeted_category_id = ?", budgetedCategoryID, userID)
}

func (s *expenseService) pagedExpenses(page pagination.PageRequest, cond, parentID, userID string) (*pagination.PagedResult[models.Expense], error) {
	query := s.db.Model(&models.Expense{}).Where("user_id = ?", userID).Where(cond, parentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := query.Order("created_at").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPagedResult(expenses, page, total)
	return &result, nil
}

// ChangeExpenseAmount updates the amount on an owned expense.
func (s *expenseService) ChangeExpenseAmount(id, userID string, amount decimal.Decimal) error {
	expense, err := ownership.FetchOwned[models.Expense](s.db, id, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(expense).Update("amount", amount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ChangeExpenseName updates the display name on an owned expense.
func (s *expenseService) ChangeExpenseName(id, userID, name string) error {
	expense, err := ownership.FetchOwned[models.Expense](s.db, id, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(expense).Update("name", name).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ChangeExpenseCategory moves an owned expense to another budgeted
// category. The target is not checked for existence.
func (s *expenseService) ChangeExpenseCategory(id, userID, budgetedCategoryID string) error {
	expense, err := ownership.FetchOwned[models.Expense](s.db, id, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(expense).Update("budgeted_category_id", budgetedCategoryID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpense removes an owned expense.
func (s *expenseService) DeleteExpense(userID, id string) error {
	expense, err := ownership.FetchOwned[models.Expense](s.db, id, userID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
