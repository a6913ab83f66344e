package models

// PeriodStatus represents the lifecycle state of a budget period.
type PeriodStatus string

const (
	PeriodStatusPending  PeriodStatus = "PENDING"
	PeriodStatusActive   PeriodStatus = "ACTIVE"
	PeriodStatusInactive PeriodStatus = "INACTIVE"
)

// BudgetPeriod is a user's monthly budgeting cycle, anchored to the first
// of a calendar month. Date is that anchor as Unix seconds. At most one
// period across the whole installation may be ACTIVE at a time.
type BudgetPeriod struct {
	Base
	UserID string       `gorm:"type:uuid;not null;index:idx_period_user_date" json:"user_id"`
	Date   int64        `gorm:"not null;index:idx_period_user_date" json:"date"`
	Status PeriodStatus `gorm:"not null;default:PENDING;index" json:"status"`
}

// OwnerID returns the owning user's ID.
func (p *BudgetPeriod) OwnerID() string { return p.UserID }
