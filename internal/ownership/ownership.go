// Package ownership enforces the owner-scoped access check that precedes
// every single-entity read and mutation.
package ownership

import (
	"errors"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"

	"gorm.io/gorm"
)

// FetchOwned loads an entity by primary key and verifies it belongs to the
// requesting user. A missing row fails with the caller's notFound sentinel;
// a row owned by someone else fails with ErrForbidden and never returns
// data. List queries do not use this helper; they filter by user_id in the
// query instead.
func FetchOwned[T any, P interface {
	*T
	models.Owned
}](db *gorm.DB, id, userID string, notFound *apperrors.AppError) (*T, error) {
	var entity T
	if err := db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if P(&entity).OwnerID() != userID {
		return nil, apperrors.ErrForbidden
	}
	return &entity, nil
}
