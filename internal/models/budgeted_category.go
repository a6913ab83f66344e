package models

import "github.com/shopspring/decimal"

// BudgetedCategory is a planned spending allocation for a named category
// within a budget period. CategoryName is a denormalized copy of
// Category.Name, kept in sync by the category rename event; the period and
// name references are not validated at creation time.
type BudgetedCategory struct {
	Base
	UserID         string          `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetPeriodID string          `gorm:"type:uuid;not null;index" json:"budget_period_id"`
	CategoryName   string          `gorm:"index;not null" json:"category_name"`
	Amount         decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
}

// OwnerID returns the owning user's ID.
func (b *BudgetedCategory) OwnerID() string { return b.UserID }
