package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/events"
	"budgety/internal/models"
)

// categoryService manages the global category catalog.
type categoryService struct {
	db  *gorm.DB
	bus *events.Bus
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, bus *events.Bus) CategoryServicer {
	return &categoryService{db: db, bus: bus}
}

// CreateCategory adds a category to the catalog.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	if len(name) < 2 || len(name) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be between 2 and 50 characters")
	}

	category := &models.Category{Name: name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetCategoryByID returns a category from the catalog. The catalog is not
// user-scoped, so there is no ownership check.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategories returns the full catalog.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// RenameCategory changes a category's display name and publishes the
// rename after the write commits so the denormalized copies get patched.
func (s *categoryService) RenameCategory(id, newName string) (*models.Category, error) {
	if len(newName) < 2 || len(newName) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be between 2 and 50 characters")
	}

	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	oldName := category.Name

	if err := s.db.Model(category).Update("name", newName).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.bus.PublishCategoryRenamed(events.CategoryRenamed{OldName: oldName, NewName: newName})

	category.Name = newName
	return category, nil
}

// DeleteCategory removes a category from the catalog. Budgeted categories
// still carrying its name are left untouched.
func (s *categoryService) DeleteCategory(id string) error {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
