package services

import (
	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
	"budgety/internal/monthyear"
	"budgety/internal/ownership"
	"budgety/internal/pagination"
)

// budgetPeriodService handles the budget period lifecycle.
type budgetPeriodService struct {
	db *gorm.DB
}

// NewBudgetPeriodService creates a new BudgetPeriodServicer.
func NewBudgetPeriodService(db *gorm.DB) BudgetPeriodServicer {
	return &budgetPeriodService{db: db}
}

// RegisterBudgetPeriod parses a "Month - Year" token and creates a PENDING
// period for that month. A user cannot register the same month twice.
func (s *budgetPeriodService) RegisterBudgetPeriod(userID, dateText string) (*models.BudgetPeriod, error) {
	date, err := monthyear.Parse(dateText)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.BudgetPeriod{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicatePeriod
	}

	period := &models.BudgetPeriod{
		UserID: userID,
		Date:   date,
		Status: models.PeriodStatusPending,
	}
	if err := s.db.Create(period).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return period, nil
}

// GetBudgetPeriodByID returns a period by ID if it belongs to the user.
func (s *budgetPeriodService) GetBudgetPeriodByID(userID, periodID string) (*models.BudgetPeriod, error) {
	return ownership.FetchOwned[models.BudgetPeriod](s.db, periodID, userID, apperrors.ErrBudgetPeriodNotFound)
}

// GetUserBudgetPeriods returns a paginated list of the user's periods.
func (s *budgetPeriodService) GetUserBudgetPeriods(userID string, page pagination.PageRequest) (*pagination.PagedResult[models.BudgetPeriod], error) {
	page.Defaults(pagination.PeriodPageSize)

	base := s.db.Model(&models.BudgetPeriod{}).Where("user_id = ?", userID)

	var totalResults int64
	if err := base.Count(&totalResults).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var periods []models.BudgetPeriod
	if err := base.Order("date").Scopes(pagination.Paginate(page)).Find(&periods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPagedResult(periods, page, totalResults)
	return &result, nil
}

// ActivateBudgetPeriod marks a period ACTIVE. At most one period across the
// whole installation may be ACTIVE, regardless of owner; the caller must
// deactivate the current one first. The status write is guarded by the same
// condition so two racing activations cannot both succeed.
func (s *budgetPeriodService) ActivateBudgetPeriod(userID, periodID string) error {
	var active int64
	if err := s.db.Model(&models.BudgetPeriod{}).
		Where("status = ?", models.PeriodStatusActive).
		Count(&active).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if active > 0 {
		return apperrors.ErrActivePeriodExists
	}

	if _, err := ownership.FetchOwned[models.BudgetPeriod](s.db, periodID, userID, apperrors.ErrBudgetPeriodNotFound); err != nil {
		return err
	}

	// Conditional write: only flips the status while no ACTIVE row exists
	// anywhere, closing the gap between the check above and the update.
	res := s.db.Model(&models.BudgetPeriod{}).
		Where("id = ?", periodID).
		Where("NOT EXISTS (SELECT 1 FROM budget_periods other WHERE other.status = ? AND other.deleted_at IS NULL)",
			models.PeriodStatusActive).
		Update("status", models.PeriodStatusActive)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrActivePeriodExists
	}

	return nil
}

// DeactivateBudgetPeriod marks a period INACTIVE. There is no precondition
// that it was ACTIVE; deactivating a PENDING period is allowed.
func (s *budgetPeriodService) DeactivateBudgetPeriod(userID, periodID string) error {
	period, err := ownership.FetchOwned[models.BudgetPeriod](s.db, periodID, userID, apperrors.ErrBudgetPeriodNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Model(period).Update("status", models.PeriodStatusInactive).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteBudgetPeriod removes a period at any status. Budgeted categories,
// expenses, and earnings that reference it are left in place.
func (s *budgetPeriodService) DeleteBudgetPeriod(userID, periodID string) error {
	period, err := ownership.FetchOwned[models.BudgetPeriod](s.db, periodID, userID, apperrors.ErrBudgetPeriodNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(period).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
