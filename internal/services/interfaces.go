package services

import (
	"github.com/shopspring/decimal"

	"budgety/internal/models"
	"budgety/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	RegisterUser(name, email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// RefreshTokenServicer defines the contract for the durable session anchors
// that authorize issuance of short-lived access tokens.
type RefreshTokenServicer interface {
	AddRefreshToken(userID, email string) (*models.RefreshToken, error)
	GetRefreshToken(token string) (*models.RefreshToken, error)
	ValidateForAccess(token string) (*models.RefreshToken, error)
	RevokeRefreshToken(token, userID string) error
}

// BudgetPeriodServicer defines the contract for the budget period
// lifecycle: register, activate, deactivate, delete.
type BudgetPeriodServicer interface {
	RegisterBudgetPeriod(userID, dateText string) (*models.BudgetPeriod, error)
	GetBudgetPeriodByID(userID, periodID string) (*models.BudgetPeriod, error)
	GetUserBudgetPeriods(userID string, page pagination.PageRequest) (*pagination.PagedResult[models.BudgetPeriod], error)
	ActivateBudgetPeriod(userID, periodID string) error
	DeactivateBudgetPeriod(userID, periodID string) error
	DeleteBudgetPeriod(userID, periodID string) error
}

// CategoryServicer defines the contract for the global category catalog.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	RenameCategory(id, newName string) (*models.Category, error)
	DeleteCategory(id string) error
}

// BudgetedCategoryServicer defines the contract for planned spending
// allocations within a period.
type BudgetedCategoryServicer interface {
	CreateBudgetedCategory(userID, budgetPeriodID, categoryName string, amount decimal.Decimal) (*models.BudgetedCategory, error)
	GetBudgetedCategoryByID(userID, id string) (*models.BudgetedCategory, error)
	GetBudgetedCategories(userID, budgetPeriodID string) ([]models.BudgetedCategory, error)
	ChangeAmount(id, userID string, amount decimal.Decimal) (*models.BudgetedCategory, error)
	DeleteBudgetedCategory(id, userID string) error
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	CreateExpense(userID, budgetPeriodID, budgetedCategoryID, name string, amount decimal.Decimal) (*models.Expense, error)
	GetExpenseByID(userID, id string) (*models.Expense, error)
	GetPeriodExpenses(userID, budgetPeriodID string, page pagination.PageRequest) (*pagination.PagedResult[models.Expense], error)
	GetBudgetedCategoryExpenses(userID, budgetedCategoryID string, page pagination.PageRequest) (*pagination.PagedResult[models.Expense], error)
	ChangeExpenseAmount(id, userID string, amount decimal.Decimal) error
	ChangeExpenseName(id, userID, name string) error
	ChangeExpenseCategory(id, userID, budgetedCategoryID string) error
	DeleteExpense(userID, id string) error
}

// EarningServicer defines the contract for earning records.
type EarningServicer interface {
	CreateEarning(userID, budgetPeriodID, budgetedCategoryID, name string, amount decimal.Decimal) (*models.Earning, error)
	GetEarningByID(userID, id string) (*models.Earning, error)
	GetPeriodEarnings(userID, budgetPeriodID string, page pagination.PageRequest) (*pagination.PagedResult[models.Earning], error)
	GetBudgetedCategoryEarnings(userID, budgetedCategoryID string, page pagination.PageRequest) (*pagination.PagedResult[models.Earning], error)
	ChangeEarningAmount(id, userID string, amount decimal.Decimal) error
	ChangeEarningName(id, userID, name string) error
	ChangeEarningCategory(id, userID, budgetedCategoryID string) error
	DeleteEarning(userID, id string) error
}
