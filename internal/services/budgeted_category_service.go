package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/events"
	"budgety/internal/logger"
	"budgety/internal/models"
	"budgety/internal/ownership"
)

// budgetedCategoryService handles planned spending allocations. It owns
// the denormalized category name copies and patches them when the catalog
// renames a category.
type budgetedCategoryService struct {
	db *gorm.DB
}

// NewBudgetedCategoryService creates a new BudgetedCategoryServicer and
// subscribes it to category rename events on the bus.
func NewBudgetedCategoryService(db *gorm.DB, bus *events.Bus) BudgetedCategoryServicer {
	s := &budgetedCategoryService{db: db}
	bus.SubscribeCategoryRenamed(s.applyCategoryRename)
	return s
}

// CreateBudgetedCategory inserts an allocation. Neither the period ID nor
// the category name is validated against its source table; dangling
// references are accepted and clients rely on that.
func (s *budgetedCategoryService) CreateBudgetedCategory(userID, budgetPeriodID, categoryName string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
	bc := &models.BudgetedCategory{
		UserID:         userID,
		BudgetPeriodID: budgetPeriodID,
		CategoryName:   categoryName,
		Amount:         amount,
	}
	if err := s.db.Create(bc).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bc, nil
}

// GetBudgetedCategoryByID returns an allocation if it belongs to the user.
func (s *budgetedCategoryService) GetBudgetedCategoryByID(userID, id string) (*models.BudgetedCategory, error) {
	return ownership.FetchOwned[models.BudgetedCategory](s.db, id, userID, apperrors.ErrBudgetedCategoryNotFound)
}

// GetBudgetedCategories returns every allocation for a period, unpaginated.
func (s *budgetedCategoryService) GetBudgetedCategories(userID, budgetPeriodID string) ([]models.BudgetedCategory, error) {
	var categories []models.BudgetedCategory
	if err := s.db.
		Where("user_id = ? AND budget_period_id = ?", userID, budgetPeriodID).
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ChangeAmount updates the planned spend on an allocation.
func (s *budgetedCategoryService) ChangeAmount(id, userID string, amount decimal.Decimal) (*models.BudgetedCategory, error) {
	bc, err := ownership.FetchOwned[models.BudgetedCategory](s.db, id, userID, apperrors.ErrBudgetedCategoryNotFound)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(bc).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bc.Amount = amount
	return bc, nil
}

// DeleteBudgetedCategory removes an allocation. Expenses and earnings that
// reference it are left in place.
func (s *budgetedCategoryService) DeleteBudgetedCategory(id, userID string) error {
	bc, err := ownership.FetchOwned[models.BudgetedCategory](s.db, id, userID, apperrors.ErrBudgetedCategoryNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(bc).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyCategoryRename patches every allocation carrying the old name,
// across all users; category names are global. Re-delivery is a no-op
// since no rows match the old name anymore.
func (s *budgetedCategoryService) applyCategoryRename(ev events.CategoryRenamed) {
	res := s.db.Model(&models.BudgetedCategory{}).
		Where("category_name = ?", ev.OldName).
		Update("category_name", ev.NewName)
	if res.Error != nil {
		logger.Get().Errorw("failed to apply category rename",
			"old_name", ev.OldName,
			"new_name", ev.NewName,
			"error", res.Error.Error(),
		)
		return
	}
	logger.Get().Infow("applied category rename",
		"old_name", ev.OldName,
		"new_name", ev.NewName,
		"updated", res.RowsAffected,
	)
}
