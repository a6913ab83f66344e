package models

import "github.com/shopspring/decimal"

// Earning records income received against a budgeted category. It mirrors
// Expense exactly; only the semantic sign differs.
type Earning struct {
	Base
	UserID             string          `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetPeriodID     string          `gorm:"type:uuid;not null;index" json:"budget_period_id"`
	BudgetedCategoryID string          `gorm:"type:uuid;not null;index" json:"budgeted_category_id"`
	Name               string          `gorm:"not null" json:"name"`
	Amount             decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
}

// OwnerID returns the owning user's ID.
func (e *Earning) OwnerID() string { return e.UserID }
