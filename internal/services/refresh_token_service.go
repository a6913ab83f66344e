package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	apperrors "budgety/internal/errors"
	"budgety/internal/models"
)

// tokenBytes yields a 128-character hex token.
const tokenBytes = 64

// refreshTokenService manages the opaque refresh tokens that anchor
// long-lived sessions.
type refreshTokenService struct {
	db *gorm.DB
}

// NewRefreshTokenService creates a new RefreshTokenServicer.
func NewRefreshTokenService(db *gorm.DB) RefreshTokenServicer {
	return &refreshTokenService{db: db}
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// AddRefreshToken issues a refresh token for the user. At most one token
// row exists per email: a repeat login rotates the stored token value and
// clears any revocation instead of inserting a second row.
func (s *refreshTokenService) AddRefreshToken(userID, email string) (*models.RefreshToken, error) {
	token, err := generateToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var existing models.RefreshToken
	err = s.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		existing.Token = token
		existing.UserID = userID
		existing.IsRevoked = false
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		created := &models.RefreshToken{
			Token:  token,
			UserID: userID,
			Email:  email,
		}
		if err := s.db.Create(created).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return created, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetRefreshToken looks up a token row by its opaque value.
func (s *refreshTokenService) GetRefreshToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := s.db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefreshTokenNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rt, nil
}

// ValidateForAccess checks that a token exists and has not been revoked.
// It is the gate in front of access token issuance.
func (s *refreshTokenService) ValidateForAccess(token string) (*models.RefreshToken, error) {
	rt, err := s.GetRefreshToken(token)
	if err != nil {
		return nil, err
	}
	if rt.IsRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	return rt, nil
}

// RevokeRefreshToken marks the caller's token as revoked. Revoking an
// already-revoked token is a conflict, so clients can detect replays.
func (s *refreshTokenService) RevokeRefreshToken(token, userID string) error {
	var rt models.RefreshToken
	if err := s.db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRefreshTokenNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if rt.UserID != userID {
		return apperrors.ErrForbidden
	}
	if rt.IsRevoked {
		return apperrors.ErrTokenAlreadyRevoked
	}

	rt.IsRevoked = true
	if err := s.db.Save(&rt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
