package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
	"budgety/internal/ownership"
	"budgety/internal/pagination"
)

// earningService records money entering a budget period.
type earningService struct {
	db *gorm.DB
}

// NewEarningService creates a new EarningServicer.
func NewEarningService(db *gorm.DB) EarningServicer {
	return &earningService{db: db}
}

// CreateEarning records a new earning against a period and budgeted
// category. Parent rows are not checked for existence.
func (s *earningService) CreateEarning(userID, budgetPeriodID, budgetedCategoryID, name string, amount decimal.Decimal) (*models.Earning, error) {
	earning := &models.Earning{
		UserID:             userID,
		BudgetPeriodID:     budgetPeriodID,
		BudgetedCategoryID: budgetedCategoryID,
		Name:               name,
		Amount:             amount,
	}
	if err := s.db.Create(earning).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return earning, nil
}

// GetEarningByID returns a single earning owned by the user.
func (s *earningService) GetEarningByID(userID, id string) (*models.Earning, error) {
	return ownership.FetchOwned[models.Earning](s.db, id, userID, apperrors.ErrEarningNotFound)
}

// GetPeriodEarnings returns a page of the earnings recorded against a
// budget period, oldest first.
func (s *earningService) GetPeriodEarnings(userID, budgetPeriodID string, page pagination.PageRequest) (*pagination.PagedResult[models.Earning], error) {
	page.Defaults(pagination.PeriodEntriesPageSize)
	return s.pagedEarnings(page, "budget_period_id = ?", budgetPeriodID, userID)
}

// GetBudgetedCategoryEarnings returns a page of the earnings filed under
// a budgeted category, oldest first.
func (s *earningService) GetBudgetedCategoryEarnings(userID, budgetedCategoryID string, page pagination.PageRequest) (*pagination.PagedResult[models.Earning], error) {
	page.Defaults(pagination.CategoryEntriesPageSize)
	return s.pagedEarnings(page, "budgeted_category_id = ?", budgetedCategoryID, userID)
}

func (s *earningService) pagedEarnings(page pagination.PageRequest, cond, parentID, userID string) (*pagination.PagedResult[models.Earning], error) {
	query := s.db.Model(&models.Earning{}).Where("user_id = ?", userID).Where(cond, parentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var earnings []models.Earning
	if err := query.Order("created_at").Scopes(pagination.Paginate(page)).Find(&earnings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPagedResult(earnings, page, total)
	return &result, nil
}

// ChangeEarningAmount updates the amount on an owned earning.
func (s *earningService) ChangeEarningAmount(id, userID string, amount decimal.Decimal) error {
	earning, err := ownership.FetchOwned[models.Earning](s.db, id, userID, apperrors.ErrEarningNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(earning).Update("amount", amount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ChangeEarningName updates the display name on an owned earning.
func (s *earningService) ChangeEarningName(id, userID, name string) error {
	earning, err := ownership.FetchOwned[models.Earning](s.db, id, userID, apperrors.ErrEarningNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(earning).Update("name", name).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ChangeEarningCategory moves an owned earning to another budgeted
// category. The target is not checked for existence.
func (s *earningService) ChangeEarningCategory(id, userID, budgetedCategoryID string) error {
	earning, err := ownership.FetchOwned[models.Earning](s.db, id, userID, apperrors.ErrEarningNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Model(earning).Update("budgeted_category_id", budgetedCategoryID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteEarning removes an owned earning.
func (s *earningService) DeleteEarning(userID, id string) error {
	earning, err := ownership.FetchOwned[models.Earning](s.db, id, userID, apperrors.ErrEarningNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Delete(earning).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
